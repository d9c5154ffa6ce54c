package cache

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-service/pkg/embedding"
	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/metrics"
)

// FXModule provides the Redis *Store and an embedding.ProviderWrapper that
// puts it in front of the inference backend. Install it only when
// Config.Enabled is set.
var FXModule = fx.Module("cache",
	fx.Provide(
		NewStoreWithDI,
		NewProviderWrapper,
	),
	fx.Invoke(RegisterCacheLifecycle),
)

// StoreParams groups the dependencies needed to create a Store.
type StoreParams struct {
	fx.In

	Config  Config
	Logger  *logger.Logger           `optional:"true"`
	Metrics metrics.MetricsCollector `optional:"true"`
}

func NewStoreWithDI(p StoreParams) (*Store, error) {
	s, err := NewStore(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		s = s.WithLogger(p.Logger)
	}
	if p.Metrics != nil {
		s = s.WithObserver(p.Metrics)
	}
	return s, nil
}

func NewProviderWrapper(s *Store, cfg embedding.Config) embedding.ProviderWrapper {
	return Wrapper(s, cfg.Model)
}

// RegisterCacheLifecycle pings Redis on start and closes the pool on stop.
// An unreachable Redis is logged but does not block startup since every
// lookup falls back to the backend.
func RegisterCacheLifecycle(lc fx.Lifecycle, s *Store) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.Ping(ctx); err != nil {
				if s.logger != nil {
					s.logger.Warn("Redis cache unreachable, continuing without it", err, map[string]interface{}{
						"host": s.cfg.Host,
						"port": s.cfg.Port,
					})
				}
				return nil
			}
			if s.logger != nil {
				s.logger.Info("Redis cache connected", nil, map[string]interface{}{
					"host": s.cfg.Host,
					"port": s.cfg.Port,
					"ttl":  s.cfg.TTL.String(),
				})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Close()
		},
	})
}
