// Package ratelimit paces outbound calls to the flight-data provider. A
// range sweep issues one provider call per date pair, so this is what keeps
// an n-day sweep from hammering the upstream API.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 2,
		BurstSize:         4,
	}
}

// Limiter wraps a token bucket shared by all searches in the process.
type Limiter struct {
	limiter *rate.Limiter
}

func New(config Config) *Limiter {
	if config.RequestsPerSecond <= 0 {
		config = DefaultConfig()
	}
	if config.BurstSize <= 0 {
		config.BurstSize = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.BurstSize),
	}
}

// Wait blocks until the next call is allowed or ctx is done. A nil Limiter
// never blocks.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.limiter == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
