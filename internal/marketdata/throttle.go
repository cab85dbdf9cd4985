package marketdata

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
)

// Default throttle parameters for the public price APIs.
const (
	DefaultMinInterval = 100 * time.Millisecond
	DefaultMaxRetries  = 3
	DefaultBackoffBase = 200 * time.Millisecond
)

// Throttle serializes outbound quote fetches and retries failures.
//
// Issuance of requests is spaced by a minimum interval: callers that arrive
// early block in place on the limiter rather than being rejected. Failed
// attempts are retried with exponential backoff up to a fixed count, after
// which the failure surfaces to the caller. Completion order is not
// serialized: only start times are spaced.
type Throttle struct {
	limiter     *rate.Limiter
	maxRetries  uint64
	backoffBase time.Duration
}

// NewThrottle creates a throttle with the given minimum interval between
// request starts. A zero interval disables spacing, which tests use to stay
// deterministic.
func NewThrottle(minInterval time.Duration) *Throttle {
	limit := rate.Inf
	if minInterval > 0 {
		limit = rate.Every(minInterval)
	}
	return &Throttle{
		limiter:     rate.NewLimiter(limit, 1),
		maxRetries:  DefaultMaxRetries,
		backoffBase: DefaultBackoffBase,
	}
}

// Do runs op under the throttle. Each attempt, including retries, waits for
// a limiter slot first so retry bursts respect the inter-request spacing.
func (t *Throttle) Do(ctx context.Context, op func(context.Context) error) error {
	backoff := retry.WithMaxRetries(t.maxRetries, retry.NewExponential(t.backoffBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := t.limiter.Wait(ctx); err != nil {
			// Context cancellation is not retryable.
			return err
		}
		if err := op(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
