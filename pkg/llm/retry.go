package llm

import (
	"context"
	"errors"
	"time"
)

var _ Completer = (*RetryCompleter)(nil)

// RetryCompleter wraps a Completer with a bounded retry on rate limiting.
// Only *RateLimitError triggers a retry; every other failure is surfaced
// immediately. The default budget is a single retry, waiting Retry-After
// when the provider sent one and BaseDelay otherwise.
type RetryCompleter struct {
	inner      Completer
	maxRetries int
	baseDelay  time.Duration

	// sleepFunc is used for testing; defaults to a context-aware sleep.
	sleepFunc func(ctx context.Context, d time.Duration) error
}

// RetryOpts configures the RetryCompleter.
type RetryOpts struct {
	MaxRetries int           // Max retries on rate limiting (default 1).
	BaseDelay  time.Duration // Delay when no Retry-After is given (default 2s).
}

// NewRetryCompleter wraps a Completer with rate-limit retry.
func NewRetryCompleter(inner Completer, opts RetryOpts) *RetryCompleter {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 1
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = 2 * time.Second
	}
	return &RetryCompleter{
		inner:      inner,
		maxRetries: opts.MaxRetries,
		baseDelay:  opts.BaseDelay,
		sleepFunc:  contextSleep,
	}
}

// SetSleepFunc overrides the sleep function (for testing).
func (r *RetryCompleter) SetSleepFunc(fn func(ctx context.Context, d time.Duration) error) {
	r.sleepFunc = fn
}

func contextSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Complete implements Completer.
func (r *RetryCompleter) Complete(ctx context.Context, req Request) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		text, err := r.inner.Complete(ctx, req)
		if err == nil {
			return text, nil
		}

		var rle *RateLimitError
		if !errors.As(err, &rle) {
			return "", err
		}
		lastErr = err

		if attempt >= r.maxRetries {
			break
		}

		delay := r.baseDelay
		if rle.RetryAfter > delay {
			delay = rle.RetryAfter
		}
		if err := r.sleepFunc(ctx, delay); err != nil {
			return "", err
		}
	}
	return "", lastErr
}
