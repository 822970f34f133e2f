package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"flightclaims/internal/domain/flight"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

// ProviderClient is the transport the fetcher drives; *Client satisfies it.
type ProviderClient interface {
	FetchMovements(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error)
}

// Fetcher is the engine's view of the aviation-data source. It splits wide
// windows into provider-sized sub-windows, retries transient failures with
// exponential backoff, single-flights identical in-flight requests, and
// funnels everything through the rate limiter.
type Fetcher struct {
	client         ProviderClient
	limiter        *Limiter
	maxWindow      time.Duration
	requestTimeout time.Duration
	maxRetries     int
	baseBackoff    time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
	metrics        *Metrics

	group singleflight.Group
}

func NewFetcher(client ProviderClient, limiter *Limiter, cfg config.ProviderConfig, logger *slog.Logger, metrics *Metrics) *Fetcher {
	maxWindow := cfg.MaxWindow
	if maxWindow <= 0 {
		maxWindow = 12 * time.Hour
	}
	return &Fetcher{
		client:         client,
		limiter:        limiter,
		maxWindow:      maxWindow,
		requestTimeout: cfg.RequestTimeout,
		maxRetries:     cfg.MaxRetries,
		baseBackoff:    cfg.BaseBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger,
		metrics:        metrics,
	}
}

// Fetch returns all movements at the airport within [from, to), merged across
// as many provider calls as the window requires, preserving arrival order.
// Records duplicated at sub-window boundaries are collapsed.
func (f *Fetcher) Fetch(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error) {
	if !from.Before(to) {
		return nil, errs.Mark(errs.New("fetch window start must precede end"), errs.ErrProviderRequest)
	}

	var merged []flight.MovementRecord
	for _, w := range splitWindow(from, to, f.maxWindow) {
		records, err := f.fetchWindow(ctx, airport, direction, w.start, w.end)
		if err != nil {
			return nil, err
		}
		merged = mergeRecords(merged, records)
	}
	return merged, nil
}

type window struct {
	start, end time.Time
}

// splitWindow cuts [from, to) into consecutive non-overlapping sub-windows
// no wider than max. Half-open bounds mean boundaries neither duplicate nor
// gap.
func splitWindow(from, to time.Time, max time.Duration) []window {
	var windows []window
	for cur := from; cur.Before(to); cur = cur.Add(max) {
		end := cur.Add(max)
		if end.After(to) {
			end = to
		}
		windows = append(windows, window{start: cur, end: end})
	}
	return windows
}

func mergeRecords(merged, incoming []flight.MovementRecord) []flight.MovementRecord {
	for _, rec := range incoming {
		duplicate := false
		for _, existing := range merged {
			if existing.SameMovement(rec) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			merged = append(merged, rec)
		}
	}
	return merged
}

// fetchWindow single-flights one provider-sized sub-window: concurrent
// callers for the same airport/window await the first caller's result rather
// than issuing duplicate provider requests.
func (f *Fetcher) fetchWindow(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error) {
	key := fmt.Sprintf("%s|%s|%d|%d", airport, direction, from.Unix(), to.Unix())

	v, err, _ := f.group.Do(key, func() (any, error) {
		return f.fetchWithRetry(ctx, airport, direction, from, to)
	})
	if err != nil {
		return nil, err
	}
	return v.([]flight.MovementRecord), nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error) {
	backoff := f.baseBackoff
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			f.metrics.observeRetry()
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
			if backoff > f.maxBackoff {
				backoff = f.maxBackoff
			}
		}

		records, err := f.fetchOnce(ctx, airport, direction, from, to)
		if err == nil {
			return records, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Only transient provider failures are retried; request and
		// data-quality errors surface immediately.
		if !errors.Is(err, errs.ErrProviderUnavailable) {
			return nil, err
		}

		f.logger.Warn("provider fetch failed, retrying",
			"airport", airport, "attempt", attempt+1, "error", err)
	}

	return nil, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error) {
	if err := f.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer f.limiter.Release()

	// The per-call timeout guarantees a cancelled or hung call releases its
	// rate-limiter slot; a timed-out partial response is discarded, never
	// treated as complete.
	callCtx, cancel := context.WithTimeout(ctx, f.requestTimeout)
	defer cancel()

	start := time.Now()
	records, err := f.client.FetchMovements(callCtx, airport, direction, from, to)
	if err != nil {
		f.metrics.observeRequest("error", time.Since(start))
		return nil, err
	}
	f.metrics.observeRequest("ok", time.Since(start))
	return records, nil
}
