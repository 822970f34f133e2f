package queries

import (
	"context"
	"time"

	"flightclaims/internal/infra"
	"flightclaims/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ClaimView struct {
	ID             uuid.UUID `json:"id"`
	ClaimantEmail  string    `json:"claimant_email"`
	FlightNumber   string    `json:"flight_number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	FlightDate     string    `json:"flight_date"`
	Eligible       bool      `json:"eligible"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	Reason         string    `json:"reason"`
	DisruptionKind string    `json:"disruption_kind,omitempty"`
	DelaySeconds   int64     `json:"delay_seconds"`
	DistanceKm     float64   `json:"distance_km"`
	Tier           string    `json:"tier,omitempty"`
	LowConfidence  bool      `json:"low_confidence"`
	DecidedAt      time.Time `json:"decided_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type ClaimListItem struct {
	ID           uuid.UUID `json:"id"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	FlightDate   string    `json:"flight_date"`
	Eligible     bool      `json:"eligible"`
	AmountCents  int64     `json:"amount_cents"`
	Currency     string    `json:"currency"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

type ClaimReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	FindByKey(ctx context.Context, flightNumber, flightDate, claimantEmail string) (*ClaimView, error)
	FindByClaimant(ctx context.Context, claimantEmail string, limit int32) ([]*ClaimListItem, error)
}

type ClaimQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClaimView, error)
	GetByKey(ctx context.Context, flightNumber, flightDate, claimantEmail string) (*ClaimView, error)
	ListByClaimant(ctx context.Context, claimantEmail string, limit int) ([]*ClaimListItem, error)
}

type claimQueriesImpl struct {
	store ClaimReadStore
}

func NewClaimQueries(store ClaimReadStore) ClaimQueries {
	return &claimQueriesImpl{store: store}
}

func (q *claimQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClaimView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClaimNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *claimQueriesImpl) GetByKey(ctx context.Context, flightNumber, flightDate, claimantEmail string) (*ClaimView, error) {
	view, err := q.store.FindByKey(ctx, flightNumber, flightDate, claimantEmail)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClaimNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *claimQueriesImpl) ListByClaimant(ctx context.Context, claimantEmail string, limit int) ([]*ClaimListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.store.FindByClaimant(ctx, claimantEmail, int32(limit))
}
