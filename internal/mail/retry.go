package mail

import (
	"context"
	"log"
	"time"
)

// backoff retries a dispatch with exponential delays: initialDelay × 2^n
// after the n-th failed attempt. Attempts are strictly sequential; parallel
// attempts against a non-idempotent relay could duplicate sends.
type backoff struct {
	maxRetries   int
	initialDelay time.Duration
	sleep        func(time.Duration)
	logger       *log.Logger
}

func (b backoff) do(ctx context.Context, channel string, fn func(context.Context) (*Response, error)) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < b.maxRetries; attempt++ {
		resp, err := fn(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !Retryable(err) || attempt == b.maxRetries-1 {
			break
		}

		delay := b.initialDelay * (1 << attempt)
		b.logger.Printf("%s: attempt %d failed, retrying in %s: %v", channel, attempt+1, delay, err)
		b.sleep(delay)
	}

	return nil, lastErr
}
