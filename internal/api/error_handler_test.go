package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/whelansws/booking-system/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound, "booking not found"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"missing credentials", domain.ErrMissingCredentials, http.StatusBadRequest, "missing credentials"},
		{"admin exists", domain.ErrAdminExists, http.StatusConflict, "admin already exists"},
		{"delivery failed", domain.ErrDeliveryFailed, http.StatusInternalServerError, "booking saved but confirmation email failed"},
		{"wrapped delivery failed", fmt.Errorf("%w: relay down", domain.ErrDeliveryFailed), http.StatusInternalServerError, "booking saved but confirmation email failed"},
		{"unexpected", errors.New("store down"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := renderError(t, tt.err)
			if code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", code, tt.wantStatus)
			}
			if msg != tt.wantBody {
				t.Fatalf("body = %q, want %q", msg, tt.wantBody)
			}
		})
	}
}

// Token failures from the auth middleware all render the same 401 body so
// the response does not reveal why verification failed.
func TestHTTPErrorHandler_TokenErrorsAreUniform(t *testing.T) {
	for _, err := range []error{
		domain.ErrTokenMissing,
		domain.ErrTokenExpired,
		domain.ErrTokenInvalid,
	} {
		code, msg := renderError(t, err)
		if code != http.StatusUnauthorized {
			t.Fatalf("%v: status = %d, want 401", err, code)
		}
		if msg != "invalid token" {
			t.Fatalf("%v: body = %q, want %q", err, msg, "invalid token")
		}
	}
}

func TestHTTPErrorHandler_ValidationError(t *testing.T) {
	code, msg := renderError(t, &domain.ValidationError{Missing: []string{"name"}})
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if msg != "missing required fields: name" {
		t.Fatalf("body = %q", msg)
	}
}
