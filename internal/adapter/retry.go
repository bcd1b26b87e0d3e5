package adapter

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryRequest runs fn with exponential backoff. The first retry waits
// baseDelay, each subsequent retry doubles it, and attempts bounds the number
// of retries after the initial call (attempts=3 means at most four calls).
//
// Every failure is retried except deterministic 4xx outcomes, which will not
// change on a replay and fail immediately.
func RetryRequest(ctx context.Context, attempts uint64, baseDelay time.Duration, fn func(ctx context.Context) error) error {
	if attempts == 0 {
		attempts = 3
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	backoff := retry.WithMaxRetries(attempts, retry.NewExponential(baseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && !isDeterministic(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

func isDeterministic(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrMalformedResponse)
}
