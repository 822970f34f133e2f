package components

import (
	"flightclaims/internal/infra/db"
	"flightclaims/internal/infra/readstore"
	"flightclaims/internal/infra/uow"
	"flightclaims/internal/infra/writerepo"
	"flightclaims/internal/usecase/commands"
	"flightclaims/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			writerepo.NewClaimRepository,
			fx.As(new(commands.ClaimRepository)),
		),
		fx.Annotate(
			writerepo.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			readstore.NewClaimReadStore,
			fx.As(new(queries.ClaimReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
