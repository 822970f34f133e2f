package writerepo

import (
	"context"
	"errors"

	"flightclaims/internal/domain/claim"
	"flightclaims/internal/infra"
	"flightclaims/internal/infra/db"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

const insertClaimSQL = `
INSERT INTO claims (
	id, claimant_email, flight_number, origin, destination, flight_date,
	eligible, amount_cents, currency, reason, disruption_kind,
	delay_seconds, distance_km, tier, low_confidence, decided_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

type ClaimRepository struct{}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{}
}

// Create persists a decided claim. The unique (flight_number, flight_date,
// claimant_email) key rejects duplicates; the caller translates the
// DUPLICATE_KEY kind into a lookup-and-return rather than a second row.
func (r *ClaimRepository) Create(ctx context.Context, tx db.DBTX, c *claim.Claim) error {
	decision, err := c.Decision()
	if err != nil {
		return infra.WrapRepoErr("claim has no decision to persist", err)
	}

	q := c.Query()
	_, err = tx.Exec(ctx, insertClaimSQL,
		c.ID(),
		c.Claimant().String(),
		q.Number(),
		q.Origin(),
		q.Destination(),
		q.Date(),
		decision.Eligible,
		decision.AmountCents,
		decision.Currency,
		decision.Reason.String(),
		decision.Kind.String(),
		int64(decision.Delay.Seconds()),
		decision.DistanceKm,
		decision.Tier.String(),
		decision.LowConfidence,
		decision.DecidedAt,
		c.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("claim already exists for flight and claimant", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert claim", err)
	}

	return nil
}
