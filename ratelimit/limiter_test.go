package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_NilNeverBlocks(t *testing.T) {
	var l *Limiter
	assert.NoError(t, l.Wait(context.Background()))
}

func TestLimiter_AllowsBurst(t *testing.T) {
	l := New(Config{RequestsPerSecond: 1, BurstSize: 3})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	for i := 0; i < 3; i++ {
		assert.NoError(t, l.Wait(ctx), "burst call %d", i)
	}
}

func TestLimiter_RespectsCancellation(t *testing.T) {
	l := New(Config{RequestsPerSecond: 0.01, BurstSize: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.NoError(t, l.Wait(ctx))
	assert.Error(t, l.Wait(ctx), "second call must wait past the deadline")
}

func TestNew_InvalidConfigFallsBack(t *testing.T) {
	l := New(Config{})
	assert.NotNil(t, l)
	assert.NoError(t, l.Wait(context.Background()))
}
