package commands

import (
	"context"
	"time"

	"flightclaims/internal/domain/claim"
	"flightclaims/internal/domain/flight"
	"flightclaims/internal/infra/db"
)

// Write-side ports. The assembler owns the claim lifecycle; these interfaces
// keep it substitutable with fakes in tests.

type ClaimRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *claim.Claim) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// MovementFetcher is the rate-limited, retrying view of the aviation-data
// provider.
type MovementFetcher interface {
	Fetch(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error)
}

// AirportDirectory resolves great-circle distances, display names, and UTC
// offsets from the static airport table.
type AirportDirectory interface {
	Distance(originIATA, destinationIATA string) (float64, error)
	Name(iata string) (string, bool)
	UTCOffsetSeconds(iata string) (int, bool)
}
