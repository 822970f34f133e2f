package provider

import (
	"context"
	"sync"
	"time"

	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"
)

// Limiter enforces the provider budget: a fixed maximum in-flight request
// count plus a minimum inter-request interval. When the budget is exhausted
// callers block cooperatively, up to a bounded queue depth, after which they
// fail with ErrRateLimitExceeded.
type Limiter struct {
	slots    chan struct{}
	interval time.Duration
	maxQueue int
	metrics  *Metrics

	queueMu sync.Mutex
	waiting int

	gateMu   sync.Mutex
	lastCall time.Time
}

func NewLimiter(cfg config.RateLimitConfig, metrics *Metrics) *Limiter {
	maxInFlight := cfg.MaxInFlight
	if maxInFlight < 1 {
		maxInFlight = 1
	}
	return &Limiter{
		slots:    make(chan struct{}, maxInFlight),
		interval: cfg.MinInterval,
		maxQueue: cfg.MaxQueueDepth,
		metrics:  metrics,
	}
}

// Acquire blocks until a slot and the inter-request gate are free, or the
// context is cancelled. Every successful Acquire must be paired with Release.
func (l *Limiter) Acquire(ctx context.Context) error {
	start := time.Now()

	select {
	case l.slots <- struct{}{}:
		// An idle slot is never charged against the queue.
	default:
		if err := l.waitForSlot(ctx); err != nil {
			return err
		}
	}

	if err := l.waitInterval(ctx); err != nil {
		// Cancellation releases the slot promptly.
		<-l.slots
		return err
	}

	l.metrics.observeWait(time.Since(start))
	return nil
}

// waitForSlot joins the bounded queue behind the in-flight slots. Only
// callers actually blocked here count toward the queue depth.
func (l *Limiter) waitForSlot(ctx context.Context) error {
	l.queueMu.Lock()
	if l.waiting >= l.maxQueue {
		l.queueMu.Unlock()
		l.metrics.observeRejection()
		return errs.ErrRateLimitExceeded
	}
	l.waiting++
	l.queueMu.Unlock()

	defer func() {
		l.queueMu.Lock()
		l.waiting--
		l.queueMu.Unlock()
	}()

	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) Release() {
	<-l.slots
}

// waitInterval serializes request starts so consecutive provider calls are
// at least interval apart.
func (l *Limiter) waitInterval(ctx context.Context) error {
	if l.interval <= 0 {
		return nil
	}

	l.gateMu.Lock()
	defer l.gateMu.Unlock()

	if !l.lastCall.IsZero() {
		if elapsed := time.Since(l.lastCall); elapsed < l.interval {
			select {
			case <-time.After(l.interval - elapsed):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	l.lastCall = time.Now()
	return nil
}
