package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider talks to any server implementing the OpenAI embeddings API.
// Endpoint is the API base URL, e.g. http://vllm:8000/v1.
type OpenAIProvider struct {
	client     *openai.Client
	httpClient *http.Client
	model      string
}

func newOpenAIProvider(cfg Config) *OpenAIProvider {
	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = strings.TrimRight(cfg.Endpoint, "/")
	clientCfg.HTTPClient = httpClient

	return &OpenAIProvider{
		client:     openai.NewClientWithConfig(clientCfg),
		httpClient: httpClient,
		model:      cfg.Model,
	}
}

func (p *OpenAIProvider) Type() string { return string(ProviderOpenAI) }

// Embed sends the batch as a single request. The response is reordered by
// index since the API does not promise input order.
func (p *OpenAIProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyInput
	}

	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: openai.EmbeddingModel(p.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	out := make([][]float32, len(resp.Data))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("openai: embedding index %d out of range: %w", d.Index, ErrCountMismatch)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

func (p *OpenAIProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}
