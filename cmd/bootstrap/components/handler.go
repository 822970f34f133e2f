package components

import (
	"flightclaims/internal/handler"
	"flightclaims/internal/handler/api"
	"flightclaims/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewRateLimitConfig,
		api.NewClaimHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimitConfig(cfg config.Config) config.RateLimitConfig {
	return cfg.RateLimit
}
