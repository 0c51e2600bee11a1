// Package retry provides generic retry logic with exponential backoff and
// jitter for transient gateway failures. It uses Go generics for type-safe
// retry operations and respects context cancellation.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// Config holds retry configuration.
type Config struct {
	MaxAttempts  int           // Maximum number of attempts (including initial attempt)
	InitialDelay time.Duration // Initial delay between retries
	MaxDelay     time.Duration // Maximum delay between retries
	Multiplier   float64       // Multiplier for exponential backoff
	Jitter       float64       // Fraction of the delay randomized per attempt (0 disables)
}

// DefaultConfig provides sensible defaults for gateway calls.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	Jitter:       0.2,
}

// IsRetryable determines if an error should trigger a retry.
type IsRetryable func(error) bool

// RetryableStatus reports whether an HTTP status code indicates a transient
// failure worth retrying: 429 and all 5xx except 501 Not Implemented.
func RetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	return status >= 500 && status != http.StatusNotImplemented
}

// Do executes fn with retry logic. It applies exponential backoff with
// jitter between attempts and stops early when the context is cancelled or
// isRetryable rejects the error.
func Do[T any](
	ctx context.Context,
	config Config,
	isRetryable IsRetryable,
	fn func() (T, error),
) (T, error) {
	var zero T
	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt < config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, fmt.Errorf("context cancelled: %w", err)
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < config.MaxAttempts-1 {
			select {
			case <-time.After(withJitter(delay, config.Jitter)):
				delay = time.Duration(float64(delay) * config.Multiplier)
				if delay > config.MaxDelay {
					delay = config.MaxDelay
				}
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}
	}

	return zero, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// withJitter randomizes a delay by up to +/- fraction/2 to avoid retry
// stampedes against the gateway.
func withJitter(delay time.Duration, fraction float64) time.Duration {
	if fraction <= 0 {
		return delay
	}
	spread := float64(delay) * fraction
	return time.Duration(float64(delay) + spread*(rand.Float64()-0.5))
}
