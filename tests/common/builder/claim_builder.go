//go:build unit || e2e

package builder

import (
	"time"

	"flightclaims/internal/domain/flight"
	reqdto "flightclaims/internal/handler/dto/request"
	"flightclaims/internal/usecase/commands"
	"flightclaims/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	ClaimantEmail string
	FlightNumber  string
	Origin        string
	Destination   string
	FlightDate    string
	Extraordinary bool
	DeniedBoard   bool
	Eligible      bool
	AmountCents   int64
	Currency      string
	Reason        string
	Kind          string
	DelaySeconds  int64
	DistanceKm    float64
	Tier          string
	LowConfidence bool
	DecidedAt     time.Time
	CreatedAt     time.Time
}

func NewClaimBuilder() *ClaimBuilder {
	now := time.Now()
	return &ClaimBuilder{
		ClaimantEmail: "passenger@example.com",
		FlightNumber:  "LH1234",
		Origin:        "FRA",
		Destination:   "LIS",
		FlightDate:    "2026-03-14",
		Eligible:      true,
		AmountCents:   40000,
		Currency:      "EUR",
		Reason:        "COMPENSABLE",
		Kind:          "delayed",
		DelaySeconds:  4 * 3600,
		DistanceKm:    1892,
		Tier:          "medium",
		DecidedAt:     now,
		CreatedAt:     now,
	}
}

func (b *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(b)
	return b
}

func (b *ClaimBuilder) BuildSubmitRequestDTO() reqdto.SubmitClaimRequest {
	return reqdto.SubmitClaimRequest{
		ClaimantEmail:             b.ClaimantEmail,
		FlightNumber:              b.FlightNumber,
		Origin:                    b.Origin,
		Destination:               b.Destination,
		FlightDate:                b.FlightDate,
		ExtraordinaryCircumstance: b.Extraordinary,
		DeniedBoarding:            b.DeniedBoard,
	}
}

func (b *ClaimBuilder) BuildSubmitCommand() commands.SubmitClaim {
	date, _ := time.Parse("2006-01-02", b.FlightDate)
	return commands.SubmitClaim{
		ClaimantEmail:     b.ClaimantEmail,
		FlightNumber:      b.FlightNumber,
		Origin:            b.Origin,
		Destination:       b.Destination,
		Date:              date,
		ExtraordinaryHint: b.Extraordinary,
		DeniedBoarding:    b.DeniedBoard,
	}
}

func (b *ClaimBuilder) BuildView() *queries.ClaimView {
	return &queries.ClaimView{
		ID:             uuid.New(),
		ClaimantEmail:  b.ClaimantEmail,
		FlightNumber:   b.FlightNumber,
		Origin:         b.Origin,
		Destination:    b.Destination,
		FlightDate:     b.FlightDate,
		Eligible:       b.Eligible,
		AmountCents:    b.AmountCents,
		Currency:       b.Currency,
		Reason:         b.Reason,
		DisruptionKind: b.Kind,
		DelaySeconds:   b.DelaySeconds,
		DistanceKm:     b.DistanceKm,
		Tier:           b.Tier,
		LowConfidence:  b.LowConfidence,
		DecidedAt:      b.DecidedAt,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *ClaimBuilder) BuildListItem() *queries.ClaimListItem {
	return &queries.ClaimListItem{
		ID:           uuid.New(),
		FlightNumber: b.FlightNumber,
		Origin:       b.Origin,
		Destination:  b.Destination,
		FlightDate:   b.FlightDate,
		Eligible:     b.Eligible,
		AmountCents:  b.AmountCents,
		Currency:     b.Currency,
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
	}
}

// BuildMovement produces a departure record consistent with the builder's
// flight fields, delayed by DelaySeconds.
func (b *ClaimBuilder) BuildMovement() flight.MovementRecord {
	date, _ := time.Parse("2006-01-02", b.FlightDate)
	scheduled := flight.NewTimestamp(date.Add(10*time.Hour), 3600)
	actualTime := flight.NewTimestamp(scheduled.Instant().Add(time.Duration(b.DelaySeconds)*time.Second), 3600)
	return flight.NewMovementRecord(
		b.FlightNumber,
		b.Destination,
		"",
		scheduled,
		&actualTime,
		flight.StatusLanded,
	)
}

// Fluent builder methods
func (b *ClaimBuilder) WithClaimantEmail(email string) *ClaimBuilder {
	b.ClaimantEmail = email
	return b
}

func (b *ClaimBuilder) WithFlightNumber(number string) *ClaimBuilder {
	b.FlightNumber = number
	return b
}

func (b *ClaimBuilder) WithRoute(origin, destination string) *ClaimBuilder {
	b.Origin = origin
	b.Destination = destination
	return b
}

func (b *ClaimBuilder) WithFlightDate(date string) *ClaimBuilder {
	b.FlightDate = date
	return b
}

func (b *ClaimBuilder) WithDelay(d time.Duration) *ClaimBuilder {
	b.DelaySeconds = int64(d.Seconds())
	return b
}

func (b *ClaimBuilder) AsIneligible(reason string) *ClaimBuilder {
	b.Eligible = false
	b.AmountCents = 0
	b.Reason = reason
	return b
}

func (b *ClaimBuilder) AsCancelled() *ClaimBuilder {
	b.Kind = "cancelled"
	b.DelaySeconds = 0
	return b
}
