package ports

import (
	"context"

	"github.com/whelansws/booking-system/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Create inserts a new booking and returns it with the store-assigned ID.
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindActive returns all bookings with archived=false, store order.
	FindActive(ctx context.Context) ([]*domain.Booking, error)
	// Archive sets archived=true on the booking with the given ID.
	// Archiving an already-archived booking is a no-op success.
	Archive(ctx context.Context, id string) error
}
