package llm

import (
	"context"
	"math/rand/v2"
	"time"
)

// Retry retries transient failures with exponential backoff and ±20%
// jitter. A rate limit with a RetryAfter waits exactly that long. Invalid
// output is retried once; rejected and truncated requests are not retried.
func Retry(cfg RetryConfig) Middleware {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = 1
	}
	return func(next Provider) Provider {
		return &retrying{next: next, cfg: cfg}
	}
}

type retrying struct {
	next Provider
	cfg  RetryConfig
}

func (r *retrying) Model() string { return r.next.Model() }

func (r *retrying) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	delay := r.cfg.InitialWait
	invalidSeen := false
	for attempt := 1; ; attempt++ {
		c, err := r.next.Complete(ctx, p)
		if err == nil {
			return c, nil
		}
		if attempt >= r.cfg.MaxAttempts || ctx.Err() != nil {
			return nil, err
		}

		wait := jitter(delay)
		if kind, ok := KindOf(err); ok {
			switch kind {
			case KindRejected, KindTruncated:
				return nil, err
			case KindInvalidOutput:
				if invalidSeen {
					return nil, err
				}
				invalidSeen = true
			case KindRateLimited:
				if e := asError(err); e.RetryAfter > 0 {
					wait = e.RetryAfter
				}
			}
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
		delay = min(time.Duration(float64(delay)*r.cfg.Multiplier), r.cfg.MaxWait)
	}
}

func jitter(d time.Duration) time.Duration {
	f := 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(float64(d) * f)
}
