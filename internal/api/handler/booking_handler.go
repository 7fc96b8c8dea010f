package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/whelansws/booking-system/internal/api/metrics"
	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Submit handles POST /api/bookings.
//
// @Summary      Submit a new booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      submitBookingRequest  true  "Booking details"
// @Success      201   {object}  submitBookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Submit(c echo.Context) error {
	var req submitBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.Submit(c.Request().Context(), ports.SubmitBookingInput{
		Name:    req.Name,
		Email:   req.Email,
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
		Notes:   req.Notes,
	})
	if err != nil {
		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: ve.Error()})
		case errors.Is(err, domain.ErrDeliveryFailed):
			// The booking was persisted; only the email failed.
			metrics.SubmissionsTotal.WithLabelValues("created").Inc()
			metrics.ConfirmationsTotal.WithLabelValues("failed").Inc()
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "booking saved but confirmation email failed"})
		default:
			metrics.SubmissionsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to save booking"})
		}
	}

	msg := "booking saved and email sent"
	if result.AlreadyExisted {
		msg = "booking already received"
		metrics.SubmissionsTotal.WithLabelValues("replayed").Inc()
	} else {
		metrics.SubmissionsTotal.WithLabelValues("created").Inc()
		metrics.ConfirmationsTotal.WithLabelValues("sent").Inc()
	}

	return c.JSON(http.StatusCreated, submitBookingResponse{
		Message: msg,
		Booking: toBookingResponse(result.Booking),
	})
}

// List handles GET /api/bookings.
//
// @Summary      List active bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "error fetching bookings"})
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, toBookingResponse(b))
	}
	return c.JSON(http.StatusOK, resp)
}

// Export handles GET /api/bookings/export.
//
// @Summary      Export active bookings as CSV
// @Tags         bookings
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings/export [get]
func (h *BookingHandler) Export(c echo.Context) error {
	data, err := h.service.ExportCSV(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "error exporting bookings"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bookings.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

// Archive handles DELETE /api/bookings/:id.
//
// @Summary      Archive a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Archive(c echo.Context) error {
	id := c.Param("id")

	if err := h.service.Archive(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to archive booking"})
	}

	metrics.ArchivedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "booking archived"})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date,
		Time:      b.Time,
		Service:   b.Service,
		Notes:     b.Notes,
		Archived:  b.Archived,
		CreatedAt: b.CreatedAt,
	}
}
