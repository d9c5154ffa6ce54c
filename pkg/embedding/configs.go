package embedding

import (
	"fmt"
	"strings"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
)

// ProviderType selects the inference backend that serves the model artifact.
type ProviderType string

const (
	// ProviderTEI is Hugging Face text-embeddings-inference (POST /embed).
	ProviderTEI ProviderType = "tei"

	// ProviderOpenAI is any OpenAI-compatible /v1/embeddings server (vLLM, LocalAI, ...).
	ProviderOpenAI ProviderType = "openai"

	// ProviderOllama is an Ollama server (POST /api/embed).
	ProviderOllama ProviderType = "ollama"
)

const (
	DefaultEndpoint     = "http://localhost:8080"
	DefaultHTTPTimeoutS = 30
)

// EMBEDDING_ENDPOINT must point to the root of the backend (no /embed or
// /v1/embeddings suffix). The provider appends paths itself, except for the
// openai provider which expects the base URL including /v1.
type Config struct {
	// Provider is one of "tei", "openai", "ollama".
	Provider ProviderType `yaml:"provider" envconfig:"EMBEDDING_PROVIDER"`

	// Endpoint is the base URL of the inference backend.
	Endpoint string `yaml:"endpoint" envconfig:"EMBEDDING_ENDPOINT"`

	// APIKey is sent as a bearer token when set.
	APIKey string `yaml:"api_key" envconfig:"EMBEDDING_API_KEY"`

	// Model is the model name reported in responses and sent to backends that
	// serve more than one model.
	Model string `yaml:"model" envconfig:"EMBEDDING_MODEL"`

	// ModelPath is the local sentence-transformers directory validated at startup.
	ModelPath string `yaml:"model_path" envconfig:"EMBEDDING_MODEL_PATH"`

	// VerifyChecksums re-hashes the artifact against install_manifest.json on load.
	VerifyChecksums bool `yaml:"verify_checksums" envconfig:"EMBEDDING_VERIFY_CHECKSUMS"`

	// HTTPTimeoutS is the backend request timeout in seconds (default 30).
	HTTPTimeoutS int `yaml:"http_timeout_seconds" envconfig:"EMBEDDING_HTTP_TIMEOUT_SECONDS"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Provider:     ProviderTEI,
		Endpoint:     DefaultEndpoint,
		Model:        model.DefaultName,
		ModelPath:    model.DefaultServicePath,
		HTTPTimeoutS: DefaultHTTPTimeoutS,
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderTEI, ProviderOpenAI, ProviderOllama:
	default:
		return fmt.Errorf("embedding: %w %q (want tei, openai or ollama)", ErrUnknownProvider, c.Provider)
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_ENDPOINT")
	}
	if c.ModelPath == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL_PATH")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	if c.HTTPTimeoutS <= 0 {
		return fmt.Errorf("embedding: EMBEDDING_HTTP_TIMEOUT_SECONDS must be positive, got %d", c.HTTPTimeoutS)
	}
	return nil
}
