package bootstrap

import (
	"flightclaims/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	ProviderModule,
	RulesModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
