package usecase

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// LimiterPacer spaces out consecutive records by a fixed interval. It is a
// courtesy toward the external APIs, not a correctness requirement.
type LimiterPacer struct {
	limiter *rate.Limiter
}

// NewLimiterPacer creates a pacer that permits one record per interval.
// A zero or negative interval produces a pacer that never blocks.
func NewLimiterPacer(interval time.Duration) *LimiterPacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &LimiterPacer{
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the next record may be processed or the context is done.
func (p *LimiterPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
