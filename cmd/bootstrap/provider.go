package bootstrap

import (
	"log/slog"

	"flightclaims/internal/domain/distance"
	"flightclaims/internal/domain/eligibility"
	"flightclaims/internal/infra/provider"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/usecase/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		NewMetricsRegistry,
		NewProviderMetrics,
		NewProviderClient,
		NewRateLimiter,
		fx.Annotate(
			NewMovementFetcher,
			fx.As(new(commands.MovementFetcher)),
		),
	),
)

// RulesModule builds the immutable evaluation inputs. A malformed
// compensation table aborts startup before the server accepts traffic.
var RulesModule = fx.Module("rules",
	fx.Provide(
		NewCompensationTable,
		fx.Annotate(
			distance.NewResolver,
			fx.As(new(commands.AirportDirectory)),
		),
	),
)

func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewProviderMetrics(reg *prometheus.Registry) *provider.Metrics {
	return provider.NewMetrics(reg)
}

func NewProviderClient(cfg config.Config, logger *slog.Logger) *provider.Client {
	return provider.NewClient(cfg.Provider, logger)
}

func NewRateLimiter(cfg config.Config, metrics *provider.Metrics) *provider.Limiter {
	return provider.NewLimiter(cfg.RateLimit, metrics)
}

func NewMovementFetcher(client *provider.Client, limiter *provider.Limiter, cfg config.Config, logger *slog.Logger, metrics *provider.Metrics) *provider.Fetcher {
	return provider.NewFetcher(client, limiter, cfg.Provider, logger, metrics)
}

func NewCompensationTable(cfg config.Config) (*eligibility.Table, error) {
	return eligibility.NewTable(
		cfg.Compensation.Currency,
		map[distance.Tier]int64{
			distance.TierShort:  cfg.Compensation.ShortTierCents,
			distance.TierMedium: cfg.Compensation.MediumTierCents,
			distance.TierLong:   cfg.Compensation.LongTierCents,
		},
		cfg.Compensation.DelayThreshold,
	)
}
