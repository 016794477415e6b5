package cli

import (
	"context"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/config"
)

type configKey struct{}

func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the config stored by the root command, or
// defaults when a subcommand runs without it.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.New()
}

// newClient builds a catalog client from the catalog section.
func newClient(cfg *config.Config) *catalog.Client {
	return catalog.NewClient(cfg.Catalog.BaseURL,
		catalog.WithTimeout(cfg.Catalog.Timeout),
		catalog.WithUserAgent(cfg.Catalog.UserAgent),
	)
}
