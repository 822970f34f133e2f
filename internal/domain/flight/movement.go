package flight

import (
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusLanded    Status = "landed"
	StatusCancelled Status = "cancelled"
	StatusDiverted  Status = "diverted"
	StatusUnknown   Status = "unknown"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusActive, StatusLanded, StatusCancelled, StatusDiverted, StatusUnknown:
		return true
	default:
		return false
	}
}

type Direction string

const (
	DirectionDeparture Direction = "departure"
	DirectionArrival   Direction = "arrival"
)

// Timestamp pairs an instant with the UTC offset of the airport that
// reported it. Two Timestamps built from different local renderings of the
// same moment compare equal on Instant.
type Timestamp struct {
	instant time.Time
	offset  int // seconds east of UTC
}

func NewTimestamp(instant time.Time, offsetSeconds int) Timestamp {
	return Timestamp{instant: instant.UTC(), offset: offsetSeconds}
}

func (t Timestamp) Instant() time.Time { return t.instant }
func (t Timestamp) OffsetSeconds() int { return t.offset }

// Local renders the instant in the reporting airport's zone.
func (t Timestamp) Local() time.Time {
	return t.instant.In(time.FixedZone("", t.offset))
}

func (t Timestamp) IsZero() bool { return t.instant.IsZero() }

// MovementRecord is one provider-reported instance of a flight's scheduled
// and actual operational times. Never mutated after creation; a correction
// arrives as a new record for the same query.
type MovementRecord struct {
	number      string
	airportCode string // counterpart airport, may be empty when provider only names it
	airportName string
	scheduled   Timestamp
	actual      *Timestamp // nil until the flight departs/lands
	status      Status
}

func NewMovementRecord(number, airportCode, airportName string, scheduled Timestamp, actual *Timestamp, status Status) MovementRecord {
	if !status.IsValid() {
		status = StatusUnknown
	}
	var act *Timestamp
	if actual != nil {
		a := *actual
		act = &a
	}
	return MovementRecord{
		number:      normalizeNumber(number),
		airportCode: normalizeCode(airportCode),
		airportName: airportName,
		scheduled:   scheduled,
		actual:      act,
		status:      status,
	}
}

func (m MovementRecord) Number() string       { return m.number }
func (m MovementRecord) AirportCode() string  { return m.airportCode }
func (m MovementRecord) AirportName() string  { return m.airportName }
func (m MovementRecord) Scheduled() Timestamp { return m.scheduled }
func (m MovementRecord) Status() Status       { return m.status }

// Actual returns a copy; the record itself stays immutable.
func (m MovementRecord) Actual() (Timestamp, bool) {
	if m.actual == nil {
		return Timestamp{}, false
	}
	return *m.actual, true
}

// Delay is actual minus scheduled. Negative means early. The second return
// is false while no actual time has been reported; an unknown delay must not
// be read as zero.
func (m MovementRecord) Delay() (time.Duration, bool) {
	if m.actual == nil {
		return 0, false
	}
	return m.actual.Instant().Sub(m.scheduled.Instant()), true
}

// SameMovement reports whether two records describe the same physical
// movement (duplicate entries at sub-window boundaries collapse on this).
func (m MovementRecord) SameMovement(other MovementRecord) bool {
	return m.number == other.number &&
		m.airportCode == other.airportCode &&
		m.scheduled.Instant().Equal(other.scheduled.Instant())
}
