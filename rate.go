package main

import (
	"context"

	"golang.org/x/time/rate"
)

// defaultFetchRPS caps how fast the fetcher walks the mirror list
const defaultFetchRPS = 1

// RateLimiter paces requests against the GFWList mirrors so that a
// failing run does not hammer every endpoint back to back
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a rate limiter allowing rps requests per second
func NewRateLimiter(rps float64) *RateLimiter {
	if rps <= 0 {
		rps = defaultFetchRPS
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Wait blocks until the rate limiter allows another request
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
