//go:build unit

package flight_test

import (
	"testing"
	"time"

	"flightclaims/internal/domain/flight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	date := time.Date(2026, 3, 14, 18, 30, 0, 0, time.FixedZone("CET", 3600))

	t.Run("normalizes number and codes", func(t *testing.T) {
		q, err := flight.NewQuery(" lh 1234 ", "fra", " lis", date)
		require.NoError(t, err)

		assert.Equal(t, "LH1234", q.Number())
		assert.Equal(t, "FRA", q.Origin())
		assert.Equal(t, "LIS", q.Destination())
	})

	t.Run("truncates date to midnight UTC", func(t *testing.T) {
		q, err := flight.NewQuery("LH1234", "FRA", "LIS", date)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), q.Date())
		assert.Equal(t, "2026-03-14", q.DateString())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name        string
			number      string
			origin      string
			destination string
			date        time.Time
			errIs       error
		}{
			{name: "valid with suffix letter", number: "U24567A", origin: "FRA", destination: "LIS", date: date},
			{name: "empty number", number: "", origin: "FRA", destination: "LIS", date: date, errIs: flight.ErrInvalidFlightNumber},
			{name: "number without digits", number: "LHAB", origin: "FRA", destination: "LIS", date: date, errIs: flight.ErrInvalidFlightNumber},
			{name: "number too long", number: "LH123456", origin: "FRA", destination: "LIS", date: date, errIs: flight.ErrInvalidFlightNumber},
			{name: "two letter origin", number: "LH1234", origin: "FR", destination: "LIS", date: date, errIs: flight.ErrInvalidAirportCode},
			{name: "numeric destination", number: "LH1234", origin: "FRA", destination: "L1S", date: date, errIs: flight.ErrInvalidAirportCode},
			{name: "zero date", number: "LH1234", origin: "FRA", destination: "LIS", date: time.Time{}, errIs: flight.ErrInvalidFlightDate},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := flight.NewQuery(tc.number, tc.origin, tc.destination, tc.date)
				if tc.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})

	t.Run("window covers the scheduled local day at the origin", func(t *testing.T) {
		q, err := flight.NewQuery("LH1234", "FRA", "LIS", date)
		require.NoError(t, err)

		cases := []struct {
			name          string
			offsetSeconds int
			start         time.Time
		}{
			{name: "UTC origin", offsetSeconds: 0, start: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
			{name: "east of UTC starts earlier", offsetSeconds: 3600, start: time.Date(2026, 3, 13, 23, 0, 0, 0, time.UTC)},
			{name: "west of UTC starts later", offsetSeconds: -18000, start: time.Date(2026, 3, 14, 5, 0, 0, 0, time.UTC)},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				start, end := q.WindowAt(tc.offsetSeconds)
				assert.Equal(t, tc.start, start)
				assert.Equal(t, 24*time.Hour, end.Sub(start), "half open day window")
			})
		}
	})
}
