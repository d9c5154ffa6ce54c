package embedding

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
	"github.com/Aleph-Alpha/embedding-service/pkg/tracer"
)

// Encoder is a loaded model: a validated artifact plus the backend serving it.
// It is safe for concurrent use.
type Encoder struct {
	provider Provider
	artifact *model.Artifact
	name     string

	tracer   *tracer.Tracer
	observer observability.Observer
}

// NewEncoder pairs an opened artifact with a provider. Most callers use
// Loader.Load, which also runs the warm-up probe.
func NewEncoder(name string, artifact *model.Artifact, provider Provider) *Encoder {
	return &Encoder{provider: provider, artifact: artifact, name: name}
}

// WithTracer opens a child span per Encode call.
func (e *Encoder) WithTracer(t *tracer.Tracer) *Encoder {
	e.tracer = t
	return e
}

// WithObserver reports every Encode call as an "embedding"/"encode" operation.
func (e *Encoder) WithObserver(o observability.Observer) *Encoder {
	e.observer = o
	return e
}

func (e *Encoder) Name() string { return e.name }

func (e *Encoder) Dimension() int { return e.artifact.Dimension }

func (e *Encoder) MaxSequenceLength() int { return e.artifact.MaxSequenceLength }

// Artifact returns the validated model directory description.
func (e *Encoder) Artifact() *model.Artifact { return e.artifact }

// Encode embeds texts in a single backend call. Either every text gets a
// vector of Dimension() components or an error is returned.
// With normalize set each vector is scaled to unit L2 norm.
func (e *Encoder) Encode(ctx context.Context, texts []string, normalize bool) (vectors [][]float32, err error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	start := time.Now()
	if e.tracer != nil {
		var span trace.Span
		ctx, span = e.tracer.StartSpan(ctx, "embedding.encode")
		e.tracer.SetAttributes(span, map[string]interface{}{
			"embedding.model":     e.name,
			"embedding.provider":  e.provider.Type(),
			"embedding.batch":     len(texts),
			"embedding.normalize": normalize,
		})
		defer func() {
			if err != nil {
				e.tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}()
	}
	defer func() {
		e.observe(start, len(texts), err)
	}()

	vectors, err = e.provider.Embed(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", ErrCountMismatch, len(vectors), len(texts))
	}
	for i, v := range vectors {
		if len(v) != e.artifact.Dimension {
			return nil, fmt.Errorf("%w: vector %d has %d components, expected %d", ErrDimensionMismatch, i, len(v), e.artifact.Dimension)
		}
		if normalize {
			l2Normalize(v)
		}
	}
	return vectors, nil
}

// Close releases idle backend connections.
func (e *Encoder) Close() error {
	if c, ok := e.provider.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (e *Encoder) observe(start time.Time, size int, err error) {
	if e.observer == nil {
		return
	}
	e.observer.ObserveOperation(observability.OperationContext{
		Component:   "embedding",
		Operation:   "encode",
		Resource:    e.name,
		SubResource: e.provider.Type(),
		Duration:    time.Since(start),
		Error:       err,
		Size:        int64(size),
	})
}
