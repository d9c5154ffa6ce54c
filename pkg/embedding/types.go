package embedding

import "context"

//go:generate mockgen -source=types.go -destination=mock_types.go -package=embedding

// Provider is an inference backend. Embed returns one raw (unnormalized)
// vector per input text, in input order.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Type identifies the backend for logs and metrics.
	Type() string
}

// ProviderWrapper decorates the Provider built by the Loader, e.g. with a cache.
type ProviderWrapper func(Provider) Provider

// Logger defines the logging operations the embedding package needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
