//go:build unit

package provider_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flightclaims/internal/domain/flight"
	"flightclaims/internal/infra/provider"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu      sync.Mutex
	calls   []fetchCall
	respond func(call fetchCall, attempt int) ([]flight.MovementRecord, error)
	delay   time.Duration
}

type fetchCall struct {
	airport   string
	direction flight.Direction
	from, to  time.Time
}

func (f *fakeClient) FetchMovements(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	call := fetchCall{airport: airport, direction: direction, from: from, to: to}
	f.calls = append(f.calls, call)
	attempt := len(f.calls)
	f.mu.Unlock()

	return f.respond(call, attempt)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newFetcher(t *testing.T, client provider.ProviderClient) *provider.Fetcher {
	t.Helper()
	cfg := config.NewTestConfig()
	limiter := provider.NewLimiter(cfg.RateLimit, nil)
	return provider.NewFetcher(client, limiter, cfg.Provider, testLogger(), nil)
}

func departureAt(number string, at time.Time) flight.MovementRecord {
	return flight.NewMovementRecord(number, "LIS", "Lisbon", flight.NewTimestamp(at, 0), nil, flight.StatusScheduled)
}

func TestFetchSplitsWideWindows(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	morning := departureAt("LH1234", dayStart.Add(9*time.Hour))
	evening := departureAt("LH5678", dayStart.Add(18*time.Hour))

	client := &fakeClient{
		respond: func(call fetchCall, _ int) ([]flight.MovementRecord, error) {
			if call.from.Equal(dayStart) {
				// Boundary record shows up in both sub-windows.
				return []flight.MovementRecord{morning, evening}, nil
			}
			return []flight.MovementRecord{evening}, nil
		},
	}
	fetcher := newFetcher(t, client)

	records, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(24*time.Hour))
	require.NoError(t, err)

	require.Equal(t, 2, client.callCount(), "24h window should take exactly two provider calls")

	first, second := client.calls[0], client.calls[1]
	assert.Equal(t, dayStart, first.from)
	assert.Equal(t, dayStart.Add(12*time.Hour), first.to)
	assert.Equal(t, dayStart.Add(12*time.Hour), second.from)
	assert.Equal(t, dayStart.Add(24*time.Hour), second.to)

	// Duplicate at the boundary collapsed.
	require.Len(t, records, 2)
	assert.Equal(t, "LH1234", records[0].Number())
	assert.Equal(t, "LH5678", records[1].Number())
}

func TestFetchNarrowWindowSingleCall(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	client := &fakeClient{
		respond: func(_ fetchCall, _ int) ([]flight.MovementRecord, error) {
			return nil, nil
		},
	}
	fetcher := newFetcher(t, client)

	_, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, client.callCount())
}

func TestFetchInvalidWindow(t *testing.T) {
	now := time.Now()
	fetcher := newFetcher(t, &fakeClient{})

	_, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, now, now)
	require.ErrorIs(t, err, errs.ErrProviderRequest)
}

func TestFetchRetriesTransientFailures(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	record := departureAt("LH1234", dayStart.Add(9*time.Hour))

	client := &fakeClient{
		respond: func(_ fetchCall, attempt int) ([]flight.MovementRecord, error) {
			if attempt < 3 {
				return nil, errs.Mark(errs.New("upstream 502"), errs.ErrProviderUnavailable)
			}
			return []flight.MovementRecord{record}, nil
		},
	}
	fetcher := newFetcher(t, client)

	records, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 3, client.callCount())
}

func TestFetchExhaustsRetries(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	client := &fakeClient{
		respond: func(_ fetchCall, _ int) ([]flight.MovementRecord, error) {
			return nil, errs.Mark(errs.New("upstream 502"), errs.ErrProviderUnavailable)
		},
	}
	fetcher := newFetcher(t, client)

	_, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
	require.ErrorIs(t, err, errs.ErrProviderUnavailable)

	cfg := config.NewTestConfig().Provider
	assert.Equal(t, cfg.MaxRetries+1, client.callCount())
}

func TestFetchDoesNotRetryRequestErrors(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	client := &fakeClient{
		respond: func(_ fetchCall, _ int) ([]flight.MovementRecord, error) {
			return nil, errs.Mark(errs.New("bad airport"), errs.ErrProviderRequest)
		},
	}
	fetcher := newFetcher(t, client)

	_, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
	require.ErrorIs(t, err, errs.ErrProviderRequest)
	assert.Equal(t, 1, client.callCount())
}

func TestFetchDoesNotRetryMalformedData(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	client := &fakeClient{
		respond: func(_ fetchCall, _ int) ([]flight.MovementRecord, error) {
			return nil, errs.ErrMalformedTimestamp
		},
	}
	fetcher := newFetcher(t, client)

	_, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
	require.ErrorIs(t, err, errs.ErrMalformedTimestamp)
	assert.Equal(t, 1, client.callCount())
}

func TestFetchSingleFlightsConcurrentIdenticalRequests(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	record := departureAt("LH1234", dayStart.Add(9*time.Hour))

	client := &fakeClient{
		delay: 50 * time.Millisecond,
		respond: func(_ fetchCall, _ int) ([]flight.MovementRecord, error) {
			return []flight.MovementRecord{record}, nil
		},
	}
	fetcher := newFetcher(t, client)

	const concurrency = 8
	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := fetcher.Fetch(context.Background(), "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
			if err != nil || len(records) != 1 {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, failures.Load())
	assert.Equal(t, 1, client.callCount(), "identical concurrent windows should share one provider call")
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	client := &fakeClient{
		respond: func(_ fetchCall, _ int) ([]flight.MovementRecord, error) {
			return nil, errs.Mark(errs.New("upstream 502"), errs.ErrProviderUnavailable)
		},
	}
	fetcher := newFetcher(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, "FRA", flight.DirectionDeparture, dayStart, dayStart.Add(6*time.Hour))
	require.Error(t, err)
}
