package embedding

import (
	"context"
	"fmt"
)

// TEIProvider talks to a Hugging Face text-embeddings-inference server
// started with the model directory, e.g.
//
//	text-embeddings-router --model-id /opt/models/minilm
type TEIProvider struct {
	httpBackend
}

type teiEmbedRequest struct {
	Inputs    []string `json:"inputs"`
	Normalize bool     `json:"normalize"`
	Truncate  bool     `json:"truncate"`
}

func newTEIProvider(cfg Config) *TEIProvider {
	return &TEIProvider{httpBackend: newHTTPBackend(cfg)}
}

func (p *TEIProvider) Type() string { return string(ProviderTEI) }

// Embed posts the batch to /embed. Truncation to the model's sequence limit
// happens server side.
func (p *TEIProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	var out [][]float32
	url := fmt.Sprintf("%s/embed", p.baseURL)
	if err := p.postJSON(ctx, url, teiEmbedRequest{Inputs: texts, Normalize: false, Truncate: true}, &out); err != nil {
		return nil, fmt.Errorf("tei: %w", err)
	}
	return out, nil
}
