package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(provider ProviderType, endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Endpoint = endpoint
	return cfg
}

func TestTEIProvider_Embed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req teiEmbedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"a", "b"}, req.Inputs)
		assert.False(t, req.Normalize)
		assert.True(t, req.Truncate)

		_ = json.NewEncoder(w).Encode([][]float32{{1, 2}, {3, 4}})
	}))
	defer srv.Close()

	cfg := testConfig(ProviderTEI, srv.URL+"/")
	cfg.APIKey = "secret"
	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "tei", p.Type())

	out, err := p.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}}, out)
}

func TestTEIProvider_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(ProviderTEI, srv.URL))
	require.NoError(t, err)

	_, err = p.Embed(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestOllamaProvider_Embed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)

		var req ollamaEmbedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "all-minilm", req.Model)
		assert.Equal(t, []string{"hello"}, req.Input)

		_ = json.NewEncoder(w).Encode(ollamaEmbedResponse{Model: req.Model, Embeddings: [][]float32{{0.5, 0.5}}})
	}))
	defer srv.Close()

	cfg := testConfig(ProviderOllama, srv.URL)
	cfg.Model = "all-minilm"
	p, err := NewProvider(cfg)
	require.NoError(t, err)

	out, err := p.Embed(context.Background(), []string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{0.5, 0.5}}, out)
}

func TestOpenAIProvider_EmbedReordersByIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"first", "second"}, req.Input)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "list",
			"model": "` + req.Model + `",
			"data": [
				{"object": "embedding", "index": 1, "embedding": [0, 1]},
				{"object": "embedding", "index": 0, "embedding": [1, 0]}
			],
			"usage": {"prompt_tokens": 2, "total_tokens": 2}
		}`))
	}))
	defer srv.Close()

	p, err := NewProvider(testConfig(ProviderOpenAI, srv.URL+"/v1"))
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Type())

	out, err := p.Embed(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, out)
}

func TestProviders_RejectEmptyInput(t *testing.T) {
	for _, typ := range []ProviderType{ProviderTEI, ProviderOpenAI, ProviderOllama} {
		p, err := NewProvider(testConfig(typ, "http://127.0.0.1:1"))
		require.NoError(t, err)

		_, err = p.Embed(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyInput, typ)
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(testConfig("onnx", "http://x"))
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Provider = "grpc"
	assert.ErrorIs(t, bad.Validate(), ErrUnknownProvider)

	bad = cfg
	bad.Endpoint = " "
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.ModelPath = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.HTTPTimeoutS = 0
	assert.Error(t, bad.Validate())
}
