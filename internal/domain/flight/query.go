package flight

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidFlightNumber = errors.New("invalid flight number")
	ErrInvalidAirportCode  = errors.New("invalid airport code")
	ErrInvalidFlightDate   = errors.New("invalid flight date")
)

// IATA flight designator: 2-char carrier code followed by 1-4 digits,
// optionally an operational suffix letter (e.g. "LH1234", "U24567A").
var flightNumberPattern = regexp.MustCompile(`^[A-Z0-9]{2}[0-9]{1,4}[A-Z]?$`)

var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Query identifies one flight leg on one scheduled day. Immutable request value.
type Query struct {
	number      string
	origin      string
	destination string
	date        time.Time // scheduled local date, truncated to midnight UTC
}

func NewQuery(number, origin, destination string, date time.Time) (Query, error) {
	number = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(number), " ", ""))
	origin = strings.ToUpper(strings.TrimSpace(origin))
	destination = strings.ToUpper(strings.TrimSpace(destination))

	if !flightNumberPattern.MatchString(number) {
		return Query{}, ErrInvalidFlightNumber
	}
	if !airportCodePattern.MatchString(origin) || !airportCodePattern.MatchString(destination) {
		return Query{}, ErrInvalidAirportCode
	}
	if date.IsZero() {
		return Query{}, ErrInvalidFlightDate
	}

	y, m, d := date.Date()
	return Query{
		number:      number,
		origin:      origin,
		destination: destination,
		date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (q Query) Number() string      { return q.number }
func (q Query) Origin() string      { return q.origin }
func (q Query) Destination() string { return q.destination }
func (q Query) Date() time.Time     { return q.date }

// DateString renders the scheduled date as YYYY-MM-DD.
func (q Query) DateString() string {
	return q.date.Format("2006-01-02")
}

// WindowAt returns the provider fetch bounds covering the scheduled local
// day at an airport offsetSeconds east of UTC. The query date is a local
// date, so the UTC bounds shift by the origin's offset. Half-open
// [start, end) so consecutive days neither overlap nor gap.
func (q Query) WindowAt(offsetSeconds int) (start, end time.Time) {
	start = q.date.Add(-time.Duration(offsetSeconds) * time.Second)
	return start, start.Add(24 * time.Hour)
}
