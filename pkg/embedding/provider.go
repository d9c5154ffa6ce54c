package embedding

import "fmt"

// NewProvider builds the backend selected by cfg.Provider.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case ProviderTEI:
		return newTEIProvider(cfg), nil
	case ProviderOpenAI:
		return newOpenAIProvider(cfg), nil
	case ProviderOllama:
		return newOllamaProvider(cfg), nil
	default:
		return nil, fmt.Errorf("embedding: %w %q", ErrUnknownProvider, cfg.Provider)
	}
}
