package service

import "context"

//go:generate mockgen -source=types.go -destination=mock_types.go -package=service

// Encoder is a loaded sentence-embedding model.
type Encoder interface {
	// Encode returns one vector per text, in order, or an error for the
	// whole batch.
	Encode(ctx context.Context, texts []string, normalize bool) ([][]float32, error)
	Name() string
	Dimension() int
	MaxSequenceLength() int
	Close() error
}

// ModelLoader produces an Encoder at startup.
type ModelLoader interface {
	Load(ctx context.Context) (Encoder, error)
}

// Recorder receives domain metrics. *metrics.Metrics implements it.
type Recorder interface {
	ObserveEmbedBatch(size int)
	ObserveSimilarity(score float64)
	SetModelLoaded(loaded bool)
}
