package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whelansws/booking-system/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies stateless HS256 session tokens. The
// signing secret is process-wide configuration; nothing is persisted.
type TokenService struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{secret: secret, tokenTTL: tokenTTL}
}

// IssueToken mints a token embedding the username and an expiry tokenTTL
// from now.
func (s *TokenService) IssueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// VerifyToken checks signature and expiry and returns the embedded
// username. Expired tokens fail with domain.ErrTokenExpired; any other
// defect fails with domain.ErrTokenInvalid.
func (s *TokenService) VerifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return "", domain.ErrTokenInvalid
	}
	return username, nil
}
