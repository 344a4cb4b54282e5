package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by backend operations invoked after Close.
// Callers check it with errors.Is to tell a shut-down cache apart from a
// backend failure. Misses are never errors; Get signals them with its
// bool result.
var ErrClosed = errors.New("cache closed")

// RetryableError marks a backend failure as transient. The Redis backend
// wraps network errors with it so RetryWithBackoff can tell them apart
// from permanent failures; the file backend never produces one.
type RetryableError struct{ Err error }

// Retryable wraps an error as a RetryableError.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// Error returns the error message of the wrapped error.
func (e *RetryableError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped error.
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is wrapped with RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to 3 times with exponential backoff,
// retrying only errors marked Retryable. The pipeline runs its cache
// writes through it so a dropped Redis connection does not cost a
// freshly computed report.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
