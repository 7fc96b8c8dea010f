package ports

import (
	"context"

	"github.com/whelansws/booking-system/internal/core/domain"
)

// AdminRepository defines the interface for admin credential persistence.
type AdminRepository interface {
	// Create persists a new admin. Returns domain.ErrAdminExists when the
	// username is already taken.
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
}
