package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

type stubBookingService struct {
	submitResult *ports.SubmitBookingResult
	submitErr    error
	submitInput  *ports.SubmitBookingInput
	listResult   []*domain.Booking
	listErr      error
	archiveErr   error
	csvData      []byte
	csvErr       error
}

func (s *stubBookingService) Submit(_ context.Context, in ports.SubmitBookingInput) (*ports.SubmitBookingResult, error) {
	s.submitInput = &in
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	return s.submitResult, nil
}

func (s *stubBookingService) ListActive(_ context.Context) ([]*domain.Booking, error) {
	return s.listResult, s.listErr
}

func (s *stubBookingService) Archive(_ context.Context, _ string) error {
	return s.archiveErr
}

func (s *stubBookingService) ExportCSV(_ context.Context) ([]byte, error) {
	return s.csvData, s.csvErr
}

func newBookingEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:        "bk-1",
		Name:      "A",
		Email:     "a@b.com",
		Date:      "2024-01-01",
		Time:      "10:00",
		Service:   "Haircut",
		CreatedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

const submitBody = `{"name":"A","email":"a@b.com","date":"2024-01-01","time":"10:00","service":"Haircut"}`

func TestBookingHandler_Submit_Created(t *testing.T) {
	e := newBookingEcho()
	svc := &stubBookingService{submitResult: &ports.SubmitBookingResult{Booking: sampleBooking()}}
	h := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(submitBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp submitBookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Booking.ID != "bk-1" || resp.Booking.Archived {
		t.Fatalf("unexpected booking in response: %+v", resp.Booking)
	}
	if svc.submitInput == nil || svc.submitInput.Email != "a@b.com" {
		t.Fatalf("service did not receive submission input")
	}
}

func TestBookingHandler_Submit_MalformedPayload(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookingHandler_Submit_MissingFields(t *testing.T) {
	e := newBookingEcho()
	svc := &stubBookingService{}
	h := NewBookingHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"email":"a@b.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if svc.submitInput != nil {
		t.Fatalf("service must not be called on invalid input")
	}
}

// Email format is the booking service's call; the boundary must pass
// through addresses that stricter grammars would reject.
func TestBookingHandler_Submit_UnusualEmailReachesService(t *testing.T) {
	e := newBookingEcho()
	svc := &stubBookingService{submitResult: &ports.SubmitBookingResult{Booking: sampleBooking()}}
	h := NewBookingHandler(svc)

	body := `{"name":"A","email":"a@b..com","date":"2024-01-01","time":"10:00","service":"Haircut"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.submitInput == nil || svc.submitInput.Email != "a@b..com" {
		t.Fatalf("service did not receive the submission")
	}
}

func TestBookingHandler_Submit_ServiceValidationError(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{submitErr: &domain.ValidationError{InvalidEmail: true}})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(submitBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestBookingHandler_Submit_DeliveryFailure(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{submitErr: domain.ErrDeliveryFailed})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(submitBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "booking saved but confirmation email failed") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestBookingHandler_List(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{listResult: []*domain.Booking{sampleBooking()}})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []bookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "bk-1" {
		t.Fatalf("unexpected list: %+v", resp)
	}
}

func TestBookingHandler_Archive(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/bk-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("bk-1")

	if err := h.Archive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_Archive_NotFound(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{archiveErr: domain.ErrBookingNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Archive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestBookingHandler_Export(t *testing.T) {
	e := newBookingEcho()
	h := NewBookingHandler(&stubBookingService{csvData: []byte("id,name\nbk-1,A\n")})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Export(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv, got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "bk-1") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
