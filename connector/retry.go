package connector

import (
	"context"
	"time"
)

// retry calls fn until it succeeds, giving up after opts.MaxRetries extra
// attempts. The delay starts at BaseDelay and grows by Backoff (default 2),
// capped at MaxDelay. A nil opts means a single attempt.
func retry(ctx context.Context, opts *RetryConfig, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil || opts == nil {
		return err
	}

	delay := opts.BaseDelay
	if delay <= 0 {
		delay = time.Second
	}
	factor := opts.Backoff
	if factor < 1 {
		factor = 2
	}

	for i := 0; i < opts.MaxRetries; i++ {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if err = fn(ctx); err == nil {
			return nil
		}

		delay = time.Duration(float64(delay) * factor)
		if opts.MaxDelay > 0 && delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
	}
	return err
}
