package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

// AdminService implements admin registration and login.
type AdminService struct {
	repo   ports.AdminRepository
	issuer ports.TokenIssuer
	logger zerolog.Logger
}

func NewAdminService(repo ports.AdminRepository, issuer ports.TokenIssuer, logger zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, issuer: issuer, logger: logger}
}

// Register creates a new admin credential. The password is bcrypt-hashed
// with a per-password salt; the plaintext never reaches the store or logs.
func (s *AdminService) Register(ctx context.Context, username, password string) (*domain.Admin, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("admin registered")
	return created, nil
}

// Login authenticates an admin and issues a session token. Unknown
// usernames and wrong passwords fail identically.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.IssueToken(admin.Username)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("username", admin.Username).Msg("admin logged in")
	return token, nil
}

// SeedInitial creates the first admin from configuration. Registration is
// token-gated, so without a seed there would be no path to the first
// credential. The seed only runs against an empty store.
func (s *AdminService) SeedInitial(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	if _, err := s.Register(ctx, username, password); err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Str("username", username).Msg("initial admin seeded")
	return true, nil
}
