package ratelimiter

import "golang.org/x/time/rate"

// WriteLimiter is a single token bucket shared by all write requests.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
type WriteLimiter struct {
	limiter *rate.Limiter
}

// New creates a WriteLimiter allowing ratePerSec requests per second.
// A ratePerSec of 0 or less returns nil, which allows everything.
func New(ratePerSec int) *WriteLimiter {
	if ratePerSec <= 0 {
		return nil
	}
	return &WriteLimiter{limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Allow reports whether a request may proceed now. It never blocks:
// request handlers reject instead of queueing.
func (wl *WriteLimiter) Allow() bool {
	if wl == nil {
		return true
	}
	return wl.limiter.Allow()
}
