package service

import (
	"regexp"

	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateSubmission checks a booking submission for completeness, then
// email format. Pure function, no side effects.
func validateSubmission(in ports.SubmitBookingInput) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"date", in.Date},
		{"service", in.Service},
		{"time", in.Time},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}

	if !emailPattern.MatchString(in.Email) {
		return &domain.ValidationError{InvalidEmail: true}
	}
	return nil
}
