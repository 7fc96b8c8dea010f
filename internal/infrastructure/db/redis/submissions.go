package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const submissionTTL = time.Hour

// SubmissionChecker records recently accepted booking submissions in Redis
// so an identical resubmission within the TTL replays the saved booking
// instead of creating a duplicate.
// Key format: submission:<email>:<date>:<time> -> booking ID
type SubmissionChecker struct {
	client *redis.Client
}

// NewSubmissionChecker creates a SubmissionChecker wrapping the given
// Redis client.
func NewSubmissionChecker(client *redis.Client) *SubmissionChecker {
	return &SubmissionChecker{client: client}
}

// Lookup returns the booking ID stored for an identical recent submission,
// or "" when none is known.
func (s *SubmissionChecker) Lookup(ctx context.Context, email, date, timeOfDay string) (string, error) {
	id, err := s.client.Get(ctx, s.key(email, date, timeOfDay)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("submission lookup: %w", err)
	}
	return id, nil
}

// Mark records an accepted submission (expires after submissionTTL).
func (s *SubmissionChecker) Mark(ctx context.Context, email, date, timeOfDay, bookingID string) error {
	return s.client.Set(ctx, s.key(email, date, timeOfDay), bookingID, submissionTTL).Err()
}

func (s *SubmissionChecker) key(email, date, timeOfDay string) string {
	return fmt.Sprintf("submission:%s:%s:%s", email, date, timeOfDay)
}
