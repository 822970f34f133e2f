//go:build unit

package flight_test

import (
	"testing"
	"time"

	"flightclaims/internal/domain/flight"
	"flightclaims/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssess(t *testing.T) {
	scheduled := flight.NewTimestamp(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), 3600)

	withDelay := func(d time.Duration, status flight.Status) flight.MovementRecord {
		actual := flight.NewTimestamp(scheduled.Instant().Add(d), 3600)
		return flight.NewMovementRecord("LH1234", "LIS", "", scheduled, &actual, status)
	}

	t.Run("cancelled regardless of times", func(t *testing.T) {
		rec := flight.NewMovementRecord("LH1234", "LIS", "", scheduled, nil, flight.StatusCancelled)

		a, err := flight.Assess(rec, flight.ConfidenceExact, flight.AssessmentHint{})
		require.NoError(t, err)
		assert.Equal(t, flight.KindCancelled, a.Kind)
		assert.Equal(t, flight.ConfidenceExact, a.Confidence)
	})

	t.Run("diverted regardless of times", func(t *testing.T) {
		rec := flight.NewMovementRecord("LH1234", "LIS", "", scheduled, nil, flight.StatusDiverted)

		a, err := flight.Assess(rec, flight.ConfidenceExact, flight.AssessmentHint{})
		require.NoError(t, err)
		assert.Equal(t, flight.KindDiverted, a.Kind)
	})

	t.Run("denied boarding is always inferred", func(t *testing.T) {
		rec := withDelay(0, flight.StatusLanded)

		a, err := flight.Assess(rec, flight.ConfidenceExact, flight.AssessmentHint{DeniedBoarding: true})
		require.NoError(t, err)
		assert.Equal(t, flight.KindDeniedBoarding, a.Kind)
		assert.Equal(t, flight.ConfidenceInferred, a.Confidence)
	})

	t.Run("missing actual time is delay unknown, not zero delay", func(t *testing.T) {
		rec := flight.NewMovementRecord("LH1234", "LIS", "", scheduled, nil, flight.StatusScheduled)

		_, err := flight.Assess(rec, flight.ConfidenceExact, flight.AssessmentHint{})
		require.ErrorIs(t, err, errs.ErrDelayUnknown)
	})

	t.Run("positive delay is delayed", func(t *testing.T) {
		a, err := flight.Assess(withDelay(45*time.Minute, flight.StatusLanded), flight.ConfidenceExact, flight.AssessmentHint{})
		require.NoError(t, err)
		assert.Equal(t, flight.KindDelayed, a.Kind)
		assert.Equal(t, 45*time.Minute, a.Delay)
	})

	t.Run("zero or early departure is on time", func(t *testing.T) {
		for _, d := range []time.Duration{0, -5 * time.Minute} {
			a, err := flight.Assess(withDelay(d, flight.StatusLanded), flight.ConfidenceExact, flight.AssessmentHint{})
			require.NoError(t, err)
			assert.Equal(t, flight.KindOnTime, a.Kind)
		}
	})

	t.Run("extraordinary hint carries through", func(t *testing.T) {
		a, err := flight.Assess(withDelay(4*time.Hour, flight.StatusLanded), flight.ConfidenceInferred, flight.AssessmentHint{Extraordinary: true})
		require.NoError(t, err)
		assert.True(t, a.Extraordinary)
		assert.Equal(t, flight.ConfidenceInferred, a.Confidence)
	})
}
