package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCredentials = errors.New("missing credentials")
var ErrAdminExists = errors.New("admin already exists")
var ErrAdminNotFound = errors.New("admin not found")

var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenMissing = errors.New("token missing")

// Admin models an operator credential. PasswordHash holds a bcrypt
// digest; the raw password is never stored or logged.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
