package response

import (
	"time"

	"flightclaims/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimResponse struct {
	ID             uuid.UUID `json:"id"`
	ClaimantEmail  string    `json:"claimantEmail"`
	FlightNumber   string    `json:"flightNumber"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	FlightDate     string    `json:"flightDate"`
	Eligible       bool      `json:"eligible"`
	AmountCents    int64     `json:"amountCents"`
	Currency       string    `json:"currency"`
	Reason         string    `json:"reason"`
	DisruptionKind string    `json:"disruptionKind,omitempty"`
	DelaySeconds   int64     `json:"delaySeconds"`
	DistanceKm     float64   `json:"distanceKm"`
	Tier           string    `json:"tier,omitempty"`
	LowConfidence  bool      `json:"lowConfidence"`
	DecidedAt      time.Time `json:"decidedAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ClaimListResponse struct {
	ID           uuid.UUID `json:"id"`
	FlightNumber string    `json:"flightNumber"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	FlightDate   string    `json:"flightDate"`
	Eligible     bool      `json:"eligible"`
	AmountCents  int64     `json:"amountCents"`
	Currency     string    `json:"currency"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromClaimView(rm *queries.ClaimView) *ClaimResponse {
	return &ClaimResponse{
		ID:             rm.ID,
		ClaimantEmail:  rm.ClaimantEmail,
		FlightNumber:   rm.FlightNumber,
		Origin:         rm.Origin,
		Destination:    rm.Destination,
		FlightDate:     rm.FlightDate,
		Eligible:       rm.Eligible,
		AmountCents:    rm.AmountCents,
		Currency:       rm.Currency,
		Reason:         rm.Reason,
		DisruptionKind: rm.DisruptionKind,
		DelaySeconds:   rm.DelaySeconds,
		DistanceKm:     rm.DistanceKm,
		Tier:           rm.Tier,
		LowConfidence:  rm.LowConfidence,
		DecidedAt:      rm.DecidedAt,
		CreatedAt:      rm.CreatedAt,
	}
}

func FromClaimListItem(rm *queries.ClaimListItem) *ClaimListResponse {
	return &ClaimListResponse{
		ID:           rm.ID,
		FlightNumber: rm.FlightNumber,
		Origin:       rm.Origin,
		Destination:  rm.Destination,
		FlightDate:   rm.FlightDate,
		Eligible:     rm.Eligible,
		AmountCents:  rm.AmountCents,
		Currency:     rm.Currency,
		Reason:       rm.Reason,
		CreatedAt:    rm.CreatedAt,
	}
}
