package ports

import (
	"context"

	"github.com/whelansws/booking-system/internal/core/domain"
)

// AdminService defines registration and login use-cases.
type AdminService interface {
	Register(ctx context.Context, username, password string) (*domain.Admin, error)
	// Login returns a signed session token. Unknown usernames and wrong
	// passwords fail identically with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// SeedInitial creates the first admin from configuration when the
	// credential store is empty. Returns true when an admin was created.
	SeedInitial(ctx context.Context, username, password string) (bool, error)
}
