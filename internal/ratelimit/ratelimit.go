// Package ratelimit paces document processing for streaming input.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter caps how many documents per second a stream consumer handles.
type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter for the given documents-per-second rate. A zero
// or negative rate disables limiting.
func New(documentsPerSecond float64) *Limiter {
	if documentsPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	// Burst of one: the first document goes through immediately, the rest
	// wait their turn.
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(documentsPerSecond), 1)}
}

// Wait blocks until the next document may be processed or the context is
// canceled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a document may be processed right now without
// blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Limit returns the configured documents-per-second rate, with 0 meaning
// unlimited.
func (l *Limiter) Limit() float64 {
	if l.limiter.Limit() == rate.Inf {
		return 0
	}
	return float64(l.limiter.Limit())
}
