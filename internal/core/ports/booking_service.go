package ports

import (
	"context"

	"github.com/whelansws/booking-system/internal/core/domain"
)

// SubmitBookingInput carries all data needed to submit a new booking.
type SubmitBookingInput struct {
	Name    string
	Email   string
	Date    string
	Time    string
	Service string
	Notes   string
}

// SubmitBookingResult is returned by the service after a submission.
type SubmitBookingResult struct {
	Booking *domain.Booking
	// AlreadyExisted is true when an identical recent submission was
	// replayed instead of creating a new record.
	AlreadyExisted bool
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	Submit(ctx context.Context, input SubmitBookingInput) (*SubmitBookingResult, error)
	ListActive(ctx context.Context) ([]*domain.Booking, error)
	Archive(ctx context.Context, id string) error
	// ExportCSV renders all active bookings as a CSV document.
	ExportCSV(ctx context.Context) ([]byte, error)
}
