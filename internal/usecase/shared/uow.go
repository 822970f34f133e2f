package shared

import (
	"context"

	"flightclaims/internal/infra/db"
)

// UnitOfWork runs a function inside one database transaction. The command
// layer depends on this interface rather than on a pool so it can be faked
// in unit tests.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}
