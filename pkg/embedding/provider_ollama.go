package embedding

import (
	"context"
	"fmt"
)

// OllamaProvider talks to an Ollama server through /api/embed.
type OllamaProvider struct {
	httpBackend
	model string
}

type ollamaEmbedRequest struct {
	Model    string   `json:"model"`
	Input    []string `json:"input"`
	Truncate bool     `json:"truncate"`
}

type ollamaEmbedResponse struct {
	Model      string      `json:"model"`
	Embeddings [][]float32 `json:"embeddings"`
}

func newOllamaProvider(cfg Config) *OllamaProvider {
	return &OllamaProvider{httpBackend: newHTTPBackend(cfg), model: cfg.Model}
}

func (p *OllamaProvider) Type() string { return string(ProviderOllama) }

func (p *OllamaProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	var parsed ollamaEmbedResponse
	url := fmt.Sprintf("%s/api/embed", p.baseURL)
	if err := p.postJSON(ctx, url, ollamaEmbedRequest{Model: p.model, Input: texts, Truncate: true}, &parsed); err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	return parsed.Embeddings, nil
}
