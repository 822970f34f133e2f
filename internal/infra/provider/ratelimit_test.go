//go:build unit

package provider_test

import (
	"context"
	"testing"
	"time"

	"flightclaims/internal/infra/provider"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterBoundedQueue(t *testing.T) {
	limiter := provider.NewLimiter(config.RateLimitConfig{
		MaxInFlight:   1,
		MinInterval:   0,
		MaxQueueDepth: 1,
	}, nil)

	// Occupy the only slot.
	require.NoError(t, limiter.Acquire(context.Background()))

	// One caller may wait in the queue.
	waiterDone := make(chan error, 1)
	go func() {
		waiterDone <- limiter.Acquire(context.Background())
	}()
	time.Sleep(20 * time.Millisecond)

	// The queue is full; the next caller is rejected immediately.
	err := limiter.Acquire(context.Background())
	require.ErrorIs(t, err, errs.ErrRateLimitExceeded)

	// Releasing the slot lets the queued caller through.
	limiter.Release()
	select {
	case err := <-waiterDone:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("queued caller never acquired the released slot")
	}
	limiter.Release()
}

func TestLimiterIdleSlotsBypassQueueLimit(t *testing.T) {
	limiter := provider.NewLimiter(config.RateLimitConfig{
		MaxInFlight:   2,
		MinInterval:   0,
		MaxQueueDepth: 0,
	}, nil)

	// Idle slots must be granted even when no queueing is allowed at all.
	require.NoError(t, limiter.Acquire(context.Background()))
	require.NoError(t, limiter.Acquire(context.Background()))

	// Both slots busy and a zero-depth queue: reject immediately.
	err := limiter.Acquire(context.Background())
	require.ErrorIs(t, err, errs.ErrRateLimitExceeded)

	limiter.Release()
	limiter.Release()
}

func TestLimiterContextCancellation(t *testing.T) {
	limiter := provider.NewLimiter(config.RateLimitConfig{
		MaxInFlight:   1,
		MinInterval:   0,
		MaxQueueDepth: 4,
	}, nil)

	require.NoError(t, limiter.Acquire(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	waiterDone := make(chan error, 1)
	go func() {
		waiterDone <- limiter.Acquire(ctx)
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	select {
	case err := <-waiterDone:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled waiter never returned")
	}

	// The slot freed by Release must still be usable afterwards.
	limiter.Release()
	require.NoError(t, limiter.Acquire(context.Background()))
	limiter.Release()
}

func TestLimiterMinimumInterval(t *testing.T) {
	interval := 60 * time.Millisecond
	limiter := provider.NewLimiter(config.RateLimitConfig{
		MaxInFlight:   2,
		MinInterval:   interval,
		MaxQueueDepth: 4,
	}, nil)

	start := time.Now()
	require.NoError(t, limiter.Acquire(context.Background()))
	require.NoError(t, limiter.Acquire(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, interval,
		"second acquire should have waited out the inter-request interval")

	limiter.Release()
	limiter.Release()
}
