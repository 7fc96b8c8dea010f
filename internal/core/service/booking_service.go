package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/whelansws/booking-system/internal/core/domain"
	"github.com/whelansws/booking-system/internal/core/ports"
)

// SubmissionChecker abstracts the recent-submission store (Redis). Lookup
// returns the booking ID recorded for an identical recent submission, or
// "" when none is known.
type SubmissionChecker interface {
	Lookup(ctx context.Context, email, date, timeOfDay string) (string, error)
	Mark(ctx context.Context, email, date, timeOfDay, bookingID string) error
}

// BookingService orchestrates validation, persistence, and notification
// for new bookings, and archival for existing ones.
type BookingService struct {
	repo     ports.BookingRepository
	notifier ports.Notifier
	checker  SubmissionChecker
	logger   zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, notifier ports.Notifier, checker SubmissionChecker, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, notifier: notifier, checker: checker, logger: logger}
}

// Submit validates a booking request, persists it with archived=false, and
// sends the confirmation email. A delivery failure after a successful save
// is returned to the caller; the persisted record is not rolled back. An
// identical submission seen recently is replayed without a second insert
// or email.
func (s *BookingService) Submit(ctx context.Context, input ports.SubmitBookingInput) (*ports.SubmitBookingResult, error) {
	if err := validateSubmission(input); err != nil {
		return nil, err
	}

	if s.checker != nil {
		id, err := s.checker.Lookup(ctx, input.Email, input.Date, input.Time)
		if err != nil {
			s.logger.Warn().Err(err).Str("email", input.Email).Msg("submission check failed, processing anyway")
		} else if id != "" {
			if existing, findErr := s.repo.FindByID(ctx, id); findErr == nil {
				s.logger.Info().Str("booking_id", id).Msg("idempotent replay")
				return &ports.SubmitBookingResult{Booking: existing, AlreadyExisted: true}, nil
			}
		}
	}

	booking := &domain.Booking{
		Name:      input.Name,
		Email:     input.Email,
		Date:      input.Date,
		Time:      input.Time,
		Service:   input.Service,
		Notes:     input.Notes,
		Archived:  false,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to save booking")
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.logger.Info().Str("booking_id", created.ID).Str("service", created.Service).Msg("booking saved")

	if err := s.notifier.SendConfirmation(ctx, ports.ConfirmationInput{
		To:      created.Email,
		Name:    created.Name,
		Service: created.Service,
		Date:    created.Date,
		Time:    created.Time,
	}); err != nil {
		// The booking stays persisted; the caller is told delivery failed.
		s.logger.Error().Err(err).Str("booking_id", created.ID).Msg("confirmation delivery failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	// Marked only after delivery: a submission whose email failed stays
	// resubmittable.
	if s.checker != nil {
		if markErr := s.checker.Mark(ctx, input.Email, input.Date, input.Time, created.ID); markErr != nil {
			s.logger.Warn().Err(markErr).Str("booking_id", created.ID).Msg("failed to mark submission")
		}
	}

	return &ports.SubmitBookingResult{Booking: created}, nil
}

// ListActive returns all bookings that have not been archived.
func (s *BookingService) ListActive(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.repo.FindActive(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list bookings")
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Archive flips the booking's archived flag to true. The transition is
// one-way and idempotent: archiving an archived booking succeeds.
func (s *BookingService) Archive(ctx context.Context, id string) error {
	if err := s.repo.Archive(ctx, id); err != nil {
		return fmt.Errorf("archive booking: %w", err)
	}
	s.logger.Info().Str("booking_id", id).Msg("booking archived")
	return nil
}

var csvHeader = []string{"id", "name", "email", "date", "time", "service", "notes", "created_at"}

// ExportCSV renders all active bookings as a CSV document.
func (s *BookingService) ExportCSV(ctx context.Context) ([]byte, error) {
	bookings, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("export bookings: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("export bookings: %w", err)
	}
	for _, b := range bookings {
		row := []string{b.ID, b.Name, b.Email, b.Date, b.Time, b.Service, b.Notes, b.CreatedAt.UTC().Format(time.RFC3339)}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export bookings: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export bookings: %w", err)
	}
	return buf.Bytes(), nil
}
