package provider

import (
	"strings"
	"time"

	"flightclaims/internal/domain/flight"
	"flightclaims/internal/pkg/errs"
)

// Wire DTOs for the aviation-data API. The provider reports each movement
// with the counterpart airport (code and/or display name), scheduled and
// revised local times, and a free-form status string.

type movementsResponse struct {
	Departures []movementEntry `json:"departures"`
	Arrivals   []movementEntry `json:"arrivals"`
}

type movementEntry struct {
	Number   string        `json:"number"`
	Status   string        `json:"status"`
	Movement movementTimes `json:"movement"`
}

type movementTimes struct {
	Airport       airportRef `json:"airport"`
	ScheduledTime *timeForms `json:"scheduledTime"`
	RevisedTime   *timeForms `json:"revisedTime"`
}

type airportRef struct {
	IATA string `json:"iata"`
	Name string `json:"name"`
}

// timeForms carries the provider's heterogeneous renderings of one moment:
// a UTC form, a local form with explicit offset, or a bare local form.
type timeForms struct {
	UTC   string `json:"utc"`
	Local string `json:"local"`
}

const (
	utcLayout         = "2006-01-02 15:04Z"
	localOffsetLayout = "2006-01-02 15:04-07:00"
	localBareLayout   = "2006-01-02 15:04"
)

// normalizeTimestamp collapses whichever forms are present into a single
// (instant, origin-UTC-offset) pair. A record missing every usable form is
// rejected with ErrMalformedTimestamp — never silently defaulted.
func normalizeTimestamp(forms *timeForms) (flight.Timestamp, error) {
	if forms == nil || (forms.UTC == "" && forms.Local == "") {
		return flight.Timestamp{}, errs.ErrMalformedTimestamp
	}

	if forms.Local != "" {
		if local, err := time.Parse(localOffsetLayout, forms.Local); err == nil {
			_, offset := local.Zone()
			return flight.NewTimestamp(local, offset), nil
		}
		// Bare local time is only usable alongside the UTC form, which
		// pins the instant and lets the offset fall out of the difference.
		if forms.UTC != "" {
			localNaive, localErr := time.Parse(localBareLayout, forms.Local)
			utc, utcErr := time.Parse(utcLayout, forms.UTC)
			if localErr == nil && utcErr == nil {
				offset := int(localNaive.Sub(utc).Seconds())
				return flight.NewTimestamp(utc, offset), nil
			}
		}
	}

	if forms.UTC != "" {
		if utc, err := time.Parse(utcLayout, forms.UTC); err == nil {
			return flight.NewTimestamp(utc, 0), nil
		}
	}

	return flight.Timestamp{}, errs.ErrMalformedTimestamp
}

func mapStatus(s string) flight.Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scheduled", "expected", "checkin", "boarding", "gateclosed", "delayed":
		return flight.StatusScheduled
	case "departed", "enroute", "approaching", "active":
		return flight.StatusActive
	case "arrived", "landed":
		return flight.StatusLanded
	case "cancelled", "canceled", "canceleduncertain":
		return flight.StatusCancelled
	case "diverted":
		return flight.StatusDiverted
	default:
		return flight.StatusUnknown
	}
}

func toMovementRecord(e movementEntry) (flight.MovementRecord, error) {
	scheduled, err := normalizeTimestamp(e.Movement.ScheduledTime)
	if err != nil {
		return flight.MovementRecord{}, err
	}

	// Revised time is optional: the flight may simply not have moved yet.
	var actual *flight.Timestamp
	if e.Movement.RevisedTime != nil && (e.Movement.RevisedTime.UTC != "" || e.Movement.RevisedTime.Local != "") {
		ts, err := normalizeTimestamp(e.Movement.RevisedTime)
		if err != nil {
			return flight.MovementRecord{}, err
		}
		actual = &ts
	}

	return flight.NewMovementRecord(
		e.Number,
		e.Movement.Airport.IATA,
		e.Movement.Airport.Name,
		scheduled,
		actual,
		mapStatus(e.Status),
	), nil
}
