package config

import (
	"go.uber.org/fx"
)

// Supply makes each section available to the package FX modules.
func (c *Config) Supply() fx.Option {
	return fx.Supply(
		c.Logger,
		c.Tracer,
		c.Metrics,
		c.Embedding,
		c.Cache,
		c.Server,
	)
}
