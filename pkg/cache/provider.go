package cache

import (
	"context"

	"github.com/Aleph-Alpha/embedding-service/pkg/embedding"
)

// CachingProvider serves raw vectors from the Store and forwards only the
// misses to the wrapped backend. Cache failures never fail a request; they
// are logged and the backend is used instead.
type CachingProvider struct {
	next  embedding.Provider
	store *Store
	model string
}

// NewCachingProvider wraps next. model namespaces the keys so that switching
// models never returns stale vectors.
func NewCachingProvider(next embedding.Provider, store *Store, model string) *CachingProvider {
	return &CachingProvider{next: next, store: store, model: model}
}

// Wrapper returns an embedding.ProviderWrapper bound to store.
func Wrapper(store *Store, model string) embedding.ProviderWrapper {
	return func(p embedding.Provider) embedding.Provider {
		return NewCachingProvider(p, store, model)
	}
}

func (c *CachingProvider) Type() string { return c.next.Type() }

func (c *CachingProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	keys := make([]string, len(texts))
	for i, t := range texts {
		keys[i] = c.store.Key(c.model, t)
	}

	cached, err := c.store.GetVectors(ctx, keys)
	if err != nil {
		c.warn("Embedding cache lookup failed", err)
		return c.next.Embed(ctx, texts)
	}

	var (
		missTexts []string
		missIdx   []int
	)
	for i, v := range cached {
		if v == nil {
			missTexts = append(missTexts, texts[i])
			missIdx = append(missIdx, i)
		}
	}
	if len(missTexts) == 0 {
		return cached, nil
	}

	fresh, err := c.next.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	// Let the encoder report the mismatch.
	if len(fresh) != len(missTexts) {
		return fresh, nil
	}

	missKeys := make([]string, len(missIdx))
	for j, i := range missIdx {
		cached[i] = fresh[j]
		missKeys[j] = keys[i]
	}

	if err := c.store.SetVectors(ctx, missKeys, fresh); err != nil {
		c.warn("Embedding cache write failed", err)
	}
	return cached, nil
}

func (c *CachingProvider) Close() error {
	if closer, ok := c.next.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (c *CachingProvider) warn(msg string, err error) {
	if c.store.logger != nil {
		c.store.logger.Warn(msg, err, map[string]interface{}{"model": c.model})
	}
}
