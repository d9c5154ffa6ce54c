package embedding

import (
	"context"
	"fmt"
	"time"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

// warmupText is embedded once at load time to prove the backend serves the
// artifact's dimension before any request is accepted.
const warmupText = "This is a warm-up sentence for the embedding model."

// Loader turns configuration into a ready Encoder.
type Loader struct {
	cfg      Config
	logger   Logger
	tracer   *tracer.Tracer
	observer observability.Observer
	wrap     ProviderWrapper

	// newProvider is swapped in tests.
	newProvider func(Config) (Provider, error)
}

func NewLoader(cfg Config, logger Logger) *Loader {
	return &Loader{cfg: cfg, logger: logger, newProvider: NewProvider}
}

func (l *Loader) WithTracer(t *tracer.Tracer) *Loader {
	l.tracer = t
	return l
}

func (l *Loader) WithObserver(o observability.Observer) *Loader {
	l.observer = o
	return l
}

// WithProviderWrapper decorates the backend before the warm-up probe runs.
func (l *Loader) WithProviderWrapper(w ProviderWrapper) *Loader {
	l.wrap = w
	return l
}

// Load opens and validates the artifact at cfg.ModelPath, builds the provider
// and runs the warm-up probe. Nothing is returned unless all three succeed.
func (l *Loader) Load(ctx context.Context) (*Encoder, error) {
	if err := l.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	start := time.Now()
	l.logger.Info("Loading embedding model", nil, map[string]interface{}{
		"path":     l.cfg.ModelPath,
		"provider": string(l.cfg.Provider),
		"endpoint": l.cfg.Endpoint,
	})

	artifact, err := model.Open(l.cfg.ModelPath, model.OpenOptions{
		VerifyChecksums:   l.cfg.VerifyChecksums,
		ExpectedDimension: model.Dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}

	provider, err := l.newProvider(l.cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}
	if l.wrap != nil {
		provider = l.wrap(provider)
	}

	enc := NewEncoder(l.cfg.Model, artifact, provider).
		WithTracer(l.tracer).
		WithObserver(l.observer)

	if _, err := enc.Encode(ctx, []string{warmupText}, true); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("warm-up failed: %w", err)
	}

	l.logger.Info("Embedding model loaded", nil, map[string]interface{}{
		"model":               enc.Name(),
		"dimension":           enc.Dimension(),
		"max_sequence_length": enc.MaxSequenceLength(),
		"weights":             artifact.WeightsFile,
		"duration_ms":         time.Since(start).Milliseconds(),
	})
	return enc, nil
}
