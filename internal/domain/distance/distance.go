package distance

import (
	"math"
	"strings"

	"flightclaims/internal/pkg/errs"
)

// Tier bands great-circle distance for compensation sizing.
// Boundaries are closed on the lower bound: [0,1500), [1500,3500), [3500,∞).
type Tier string

const (
	TierShort  Tier = "short"
	TierMedium Tier = "medium"
	TierLong   Tier = "long"
)

const (
	shortUpperKm  = 1500.0
	mediumUpperKm = 3500.0

	earthRadiusKm = 6371.0
)

func (t Tier) String() string {
	return string(t)
}

// Tiers lists every tier; the compensation table must be total over it.
func Tiers() []Tier {
	return []Tier{TierShort, TierMedium, TierLong}
}

func TierFor(km float64) Tier {
	switch {
	case km < shortUpperKm:
		return TierShort
	case km < mediumUpperKm:
		return TierMedium
	default:
		return TierLong
	}
}

// Resolver answers great-circle distances over a static airport table.
// Same input always yields the same output; callers may cache indefinitely.
type Resolver struct {
	airports map[string]Airport
}

func NewResolver() (*Resolver, error) {
	if len(airportTable) == 0 {
		return nil, errs.New("airport table is empty")
	}
	m := make(map[string]Airport, len(airportTable))
	for _, a := range airportTable {
		m[a.IATA] = a
	}
	return &Resolver{airports: m}, nil
}

// Distance returns the haversine distance in kilometers between two IATA
// codes, or ErrUnknownAirport when either code is absent from the table.
func (r *Resolver) Distance(originIATA, destinationIATA string) (float64, error) {
	o, ok := r.airports[strings.ToUpper(originIATA)]
	if !ok {
		return 0, errs.ErrUnknownAirport
	}
	d, ok := r.airports[strings.ToUpper(destinationIATA)]
	if !ok {
		return 0, errs.ErrUnknownAirport
	}
	return haversineKm(o.Lat, o.Lon, d.Lat, d.Lon), nil
}

// UTCOffsetSeconds returns the standard-time UTC offset for a known IATA
// code, used to anchor a scheduled local date to provider fetch bounds.
func (r *Resolver) UTCOffsetSeconds(iata string) (int, bool) {
	a, ok := r.airports[strings.ToUpper(iata)]
	if !ok {
		return 0, false
	}
	return a.UTCOffset, true
}

// Name returns the display name for a known IATA code.
func (r *Resolver) Name(iata string) (string, bool) {
	a, ok := r.airports[strings.ToUpper(iata)]
	if !ok {
		return "", false
	}
	return a.Name, true
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
