package components

import (
	"flightclaims/internal/pkg/clock"
	"flightclaims/internal/usecase/commands"
	"flightclaims/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		queries.NewClaimQueries,
		commands.NewClaimCommands,
	),
)
