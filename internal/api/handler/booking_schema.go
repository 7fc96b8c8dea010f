package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

// submitBookingRequest only checks presence at the boundary; email format
// is the booking service's call.
type submitBookingRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Date    string `json:"date"    validate:"required"`
	Time    string `json:"time"    validate:"required"`
	Service string `json:"service" validate:"required"`
	Notes   string `json:"notes"`
}

type submitBookingResponse struct {
	Message string          `json:"message"`
	Booking bookingResponse `json:"booking"`
}

// bookingResponse is the transport view of a booking. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type bookingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	Notes     string    `json:"notes,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
}
