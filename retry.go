package huddle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// retryPolicy controls backoff for rate-limited model calls.
type retryPolicy struct {
	baseDelay   time.Duration
	maxDelay    time.Duration
	maxAttempts int
}

// defaultRetryPolicy: 1s base, doubling, capped at 60s, five attempts total.
var defaultRetryPolicy = retryPolicy{
	baseDelay:   1 * time.Second,
	maxDelay:    60 * time.Second,
	maxAttempts: 5,
}

// do runs fn, retrying with exponential backoff while it fails with
// ErrRateLimited. Any other error, including success, is returned as-is.
// Exhausting every attempt escalates to ErrExtractionUnavailable with the
// last failure attached.
func (p retryPolicy) do(ctx context.Context, logger *slog.Logger, label string, fn func() error) error {
	delay := p.baseDelay
	var err error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, ErrRateLimited) {
			return err
		}
		if attempt == p.maxAttempts {
			break
		}
		logger.Warn("rate limited, backing off",
			"call", label, "attempt", attempt, "delay", delay.String())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
		if delay > p.maxDelay {
			delay = p.maxDelay
		}
	}
	return fmt.Errorf("%w: %s still rate limited after %d attempts: %w",
		ErrExtractionUnavailable, label, p.maxAttempts, err)
}
