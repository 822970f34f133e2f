package readstore

import (
	"context"
	"errors"
	"time"

	"flightclaims/internal/infra"
	"flightclaims/internal/infra/db"
	"flightclaims/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const claimColumns = `
	id, claimant_email, flight_number, origin, destination, flight_date,
	eligible, amount_cents, currency, reason, disruption_kind,
	delay_seconds, distance_km, tier, low_confidence, decided_at, created_at`

type ClaimReadStore struct {
	db db.DBTX
}

func NewClaimReadStore(dbtx db.DBTX) *ClaimReadStore {
	return &ClaimReadStore{db: dbtx}
}

func (r *ClaimReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClaimView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+claimColumns+` FROM claims WHERE id = $1`, id)
	view, err := scanClaimView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim by ID", err)
	}
	return view, nil
}

func (r *ClaimReadStore) FindByKey(ctx context.Context, flightNumber, flightDate, claimantEmail string) (*queries.ClaimView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+claimColumns+` FROM claims
		 WHERE flight_number = $1 AND flight_date = $2 AND claimant_email = $3`,
		flightNumber, flightDate, claimantEmail)
	view, err := scanClaimView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim by key", err)
	}
	return view, nil
}

func (r *ClaimReadStore) FindByClaimant(ctx context.Context, claimantEmail string, limit int32) ([]*queries.ClaimListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, flight_number, origin, destination, flight_date,
		        eligible, amount_cents, currency, reason, created_at
		 FROM claims
		 WHERE claimant_email = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		claimantEmail, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims by claimant", err)
	}
	defer rows.Close()

	var result []*queries.ClaimListItem
	for rows.Next() {
		var (
			item       queries.ClaimListItem
			flightDate time.Time
		)
		if err := rows.Scan(
			&item.ID, &item.FlightNumber, &item.Origin, &item.Destination, &flightDate,
			&item.Eligible, &item.AmountCents, &item.Currency, &item.Reason, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim row", err)
		}
		item.FlightDate = flightDate.Format("2006-01-02")
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claim rows", err)
	}

	return result, nil
}

func scanClaimView(row pgx.Row) (*queries.ClaimView, error) {
	var (
		view       queries.ClaimView
		flightDate time.Time
	)
	err := row.Scan(
		&view.ID, &view.ClaimantEmail, &view.FlightNumber, &view.Origin, &view.Destination, &flightDate,
		&view.Eligible, &view.AmountCents, &view.Currency, &view.Reason, &view.DisruptionKind,
		&view.DelaySeconds, &view.DistanceKm, &view.Tier, &view.LowConfidence, &view.DecidedAt, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.FlightDate = flightDate.Format("2006-01-02")
	return &view, nil
}
