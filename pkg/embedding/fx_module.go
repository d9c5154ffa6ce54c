package embedding

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/metrics"
	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

// FXModule provides a *Loader. Loading itself is driven by the service
// lifecycle so that the model is ready before the HTTP server starts.
//
// An embedding.Config must be available in the container. A ProviderWrapper
// is used when one is provided (see the cache package).
var FXModule = fx.Module("embedding",
	fx.Provide(NewLoaderFromParams),
)

type LoaderParams struct {
	fx.In

	Config  Config
	Logger  *logger.Logger
	Tracer  *tracer.Tracer           `optional:"true"`
	Metrics metrics.MetricsCollector `optional:"true"`
	Wrapper ProviderWrapper          `optional:"true"`
}

func NewLoaderFromParams(p LoaderParams) *Loader {
	l := NewLoader(p.Config, p.Logger).WithTracer(p.Tracer)
	if p.Metrics != nil {
		l = l.WithObserver(p.Metrics)
	}
	if p.Wrapper != nil {
		l = l.WithProviderWrapper(p.Wrapper)
	}
	return l
}
