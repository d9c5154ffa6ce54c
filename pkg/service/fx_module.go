package service

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/embedding-service/pkg/embedding"
	"github.com/Aleph-Alpha/embedding-service/pkg/logger"
	"github.com/Aleph-Alpha/embedding-service/pkg/metrics"
)

// FXModule provides *State and *Service and loads the model on start.
//
// It must be installed before the api module: fx runs OnStart hooks in the
// order they were appended, so the HTTP listener only opens once the model
// is loaded, and OnStop runs in reverse, so the listener closes before the
// model is released.
var FXModule = fx.Module("service",
	fx.Provide(
		NewState,
		NewServiceWithDI,
		NewModelLoader,
	),
	fx.Invoke(RegisterModelLifecycle),
)

type ServiceParams struct {
	fx.In

	State   *State
	Logger  *logger.Logger
	Metrics metrics.MetricsCollector `optional:"true"`
}

func NewServiceWithDI(p ServiceParams) *Service {
	s := NewService(p.State, p.Logger)
	if p.Metrics != nil {
		s = s.WithRecorder(p.Metrics)
	}
	return s
}

// LoaderFunc adapts a function to ModelLoader.
type LoaderFunc func(ctx context.Context) (Encoder, error)

func (f LoaderFunc) Load(ctx context.Context) (Encoder, error) {
	return f(ctx)
}

// NewModelLoader adapts *embedding.Loader to ModelLoader.
func NewModelLoader(l *embedding.Loader) ModelLoader {
	return LoaderFunc(func(ctx context.Context) (Encoder, error) {
		enc, err := l.Load(ctx)
		if err != nil {
			return nil, err
		}
		return enc, nil
	})
}

type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Loader    ModelLoader
	State     *State
	Logger    *logger.Logger
	Metrics   metrics.MetricsCollector `optional:"true"`
}

// RegisterModelLifecycle loads the model on start and publishes it to State.
// A load failure aborts application start. On stop the State is cleared
// before the encoder is closed.
func RegisterModelLifecycle(p LifecycleParams) {
	var recorder Recorder
	if p.Metrics != nil {
		recorder = p.Metrics
	}
	registerModelLifecycle(p.Lifecycle, p.Loader, p.State, p.Logger, recorder)
}

func registerModelLifecycle(lc fx.Lifecycle, loader ModelLoader, state *State, log *logger.Logger, recorder Recorder) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			start := time.Now()
			enc, err := loader.Load(ctx)
			if err != nil {
				log.Error("Failed to load embedding model", err, nil)
				return err
			}
			state.Set(enc)
			if recorder != nil {
				recorder.SetModelLoaded(true)
			}
			log.Info("Embedding service ready", nil, map[string]interface{}{
				"model":               enc.Name(),
				"dimension":           enc.Dimension(),
				"max_sequence_length": enc.MaxSequenceLength(),
				"load_seconds":        time.Since(start).Seconds(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down embedding model", nil, nil)
			enc := state.Clear()
			if recorder != nil {
				recorder.SetModelLoaded(false)
			}
			if enc == nil {
				return nil
			}
			return enc.Close()
		},
	})
}
