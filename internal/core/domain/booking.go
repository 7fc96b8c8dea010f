package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrDeliveryFailed = errors.New("confirmation delivery failed")

// Booking is the core aggregate: one service appointment request.
// Archived is a one-way soft-deletion flag; records are never removed.
type Booking struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Service   string    `json:"service" bson:"service"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Archived  bool      `json:"archived" bson:"archived"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ValidationError reports why a booking submission was rejected.
// Completeness is checked before format: when any required field is
// missing, Missing lists them and InvalidEmail is always false.
type ValidationError struct {
	Missing      []string
	InvalidEmail bool
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	if e.InvalidEmail {
		return "invalid email address"
	}
	return "invalid booking"
}
