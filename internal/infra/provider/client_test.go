//go:build unit

package provider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightclaims/internal/domain/flight"
	"flightclaims/internal/infra/provider"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *provider.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.NewTestConfig().Provider
	cfg.BaseURL = server.URL
	return provider.NewClient(cfg, testLogger())
}

func window() (time.Time, time.Time) {
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	return from, from.Add(12 * time.Hour)
}

func TestFetchMovements(t *testing.T) {
	t.Run("request shape and parsing", func(t *testing.T) {
		var gotPath, gotKey, gotDirection string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("X-Api-Key")
			gotDirection = r.URL.Query().Get("direction")
			assert.Equal(t, "true", r.URL.Query().Get("withCancelled"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"departures": [
					{
						"number": "LH 1234",
						"status": "departed",
						"movement": {
							"airport": {"iata": "LIS", "name": "Lisbon Humberto Delgado"},
							"scheduledTime": {"utc": "2026-03-14 09:00Z", "local": "2026-03-14 10:00+01:00"},
							"revisedTime": {"utc": "2026-03-14 12:30Z", "local": "2026-03-14 13:30+01:00"}
						}
					}
				],
				"arrivals": []
			}`))
		})

		from, to := window()
		records, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.NoError(t, err)

		assert.Equal(t, "/flights/airports/iata/FRA/2026-03-14T00:00:00Z/2026-03-14T12:00:00Z", gotPath)
		assert.Equal(t, "test-key", gotKey)
		assert.Equal(t, "departure", gotDirection)

		require.Len(t, records, 1)
		rec := records[0]
		assert.Equal(t, "LH1234", rec.Number())
		assert.Equal(t, "LIS", rec.AirportCode())
		assert.Equal(t, flight.StatusActive, rec.Status())

		scheduled := rec.Scheduled()
		assert.True(t, scheduled.Instant().Equal(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
		assert.Equal(t, 3600, scheduled.OffsetSeconds())

		delay, known := rec.Delay()
		require.True(t, known)
		assert.Equal(t, 3*time.Hour+30*time.Minute, delay)
	})

	t.Run("bare local time anchored by the utc form", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"departures": [
					{
						"number": "TP447",
						"status": "scheduled",
						"movement": {
							"airport": {"iata": "OPO", "name": "Porto"},
							"scheduledTime": {"utc": "2026-03-14 09:00Z", "local": "2026-03-14 10:00"}
						}
					}
				]
			}`))
		})

		from, to := window()
		records, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.NoError(t, err)

		require.Len(t, records, 1)
		scheduled := records[0].Scheduled()
		assert.True(t, scheduled.Instant().Equal(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))
		assert.Equal(t, 3600, scheduled.OffsetSeconds())

		_, known := records[0].Actual()
		assert.False(t, known)
	})

	t.Run("arrival direction reads the arrivals array", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"departures": [],
				"arrivals": [
					{
						"number": "LH1234",
						"status": "landed",
						"movement": {
							"airport": {"iata": "FRA", "name": "Frankfurt am Main"},
							"scheduledTime": {"utc": "2026-03-14 11:30Z"}
						}
					}
				]
			}`))
		})

		from, to := window()
		records, err := client.FetchMovements(context.Background(), "LIS", flight.DirectionArrival, from, to)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, flight.StatusLanded, records[0].Status())
		assert.Zero(t, records[0].Scheduled().OffsetSeconds())
	})

	t.Run("empty result set is valid", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"departures": [], "arrivals": []}`))
		})

		from, to := window()
		records, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("4xx is a request error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		from, to := window()
		_, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.ErrorIs(t, err, errs.ErrProviderRequest)
	})

	t.Run("5xx is unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		from, to := window()
		_, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.ErrorIs(t, err, errs.ErrProviderUnavailable)
	})

	t.Run("undecodable body is unavailable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"departures": [`))
		})

		from, to := window()
		_, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.ErrorIs(t, err, errs.ErrProviderUnavailable)
	})

	t.Run("malformed timestamp rejects the whole fetch", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"departures": [
					{
						"number": "LH1234",
						"status": "scheduled",
						"movement": {
							"airport": {"iata": "LIS", "name": "Lisbon"},
							"scheduledTime": {"local": "14/03/2026 10am"}
						}
					}
				]
			}`))
		})

		from, to := window()
		_, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.ErrorIs(t, err, errs.ErrMalformedTimestamp)
	})

	t.Run("missing scheduled time rejects the record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"departures": [
					{
						"number": "LH1234",
						"status": "scheduled",
						"movement": {"airport": {"iata": "LIS", "name": "Lisbon"}}
					}
				]
			}`))
		})

		from, to := window()
		_, err := client.FetchMovements(context.Background(), "FRA", flight.DirectionDeparture, from, to)
		require.ErrorIs(t, err, errs.ErrMalformedTimestamp)
	})
}
