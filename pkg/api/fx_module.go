package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/metrics"
	"github.com/Aleph-Alpha/embedding-service/pkg/service"
	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

// FXModule provides *Server and runs it for the lifetime of the application.
// Install it after service.FXModule so the listener opens once the model is
// loaded.
var FXModule = fx.Module("api",
	fx.Provide(NewServerWithDI),
	fx.Invoke(RegisterServerLifecycle),
)

type ServerParams struct {
	fx.In

	Config  Config
	Service *service.Service
	Logger  *logger.Logger
	Tracer  *tracer.Tracer           `optional:"true"`
	Metrics metrics.MetricsCollector `optional:"true"`
}

func NewServerWithDI(p ServerParams) *Server {
	s := NewServer(p.Config, p.Service).WithLogger(p.Logger).WithTracer(p.Tracer)
	if p.Metrics != nil {
		s = s.WithRecorder(p.Metrics)
	}
	return s
}

// RegisterServerLifecycle binds the listener on start, so an address in use
// fails startup, then serves in the background. On stop in-flight requests
// get cfg.ShutdownTimeout to finish.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", s.http.Addr)
			if err != nil {
				log.Error("Failed to bind API server", err, map[string]interface{}{"address": s.http.Addr})
				return err
			}
			log.Info("Starting API server", nil, map[string]interface{}{"address": ln.Addr().String()})

			go func() {
				if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("API server stopped unexpectedly", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down API server", nil, nil)
			ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
			defer cancel()
			return s.http.Shutdown(ctx)
		},
	})
}
