package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ping checks that Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}
	return s.client.Ping(ctx).Err()
}

// Key derives the cache key for a raw vector of text under model.
// The text is hashed so arbitrarily long inputs give fixed-size keys.
func (s *Store) Key(model, text string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return s.cfg.KeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// GetVector returns the vector stored at key or ErrMiss.
func (s *Store) GetVector(ctx context.Context, key string) ([]float32, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		s.observeOperation("get", key, time.Since(start), nil, 0, map[string]interface{}{"hit": false})
		return nil, ErrMiss
	}
	if err != nil {
		s.observeOperation("get", key, time.Since(start), err, 0, nil)
		return nil, err
	}

	var v []float32
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	s.observeOperation("get", key, time.Since(start), nil, int64(len(data)), map[string]interface{}{"hit": true})
	return v, nil
}

// GetVectors looks up many keys in one round trip. The result has one entry
// per key; misses and undecodable entries are nil.
func (s *Store) GetVectors(ctx context.Context, keys []string) ([][]float32, error) {
	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		s.observeOperation("mget", "", time.Since(start), err, 0, map[string]interface{}{"key_count": len(keys)})
		return nil, err
	}

	out := make([][]float32, len(keys))
	hits := 0
	for i, raw := range values {
		str, ok := raw.(string)
		if !ok {
			continue
		}
		var v []float32
		if err := json.Unmarshal([]byte(str), &v); err != nil {
			if s.logger != nil {
				s.logger.Warn("Dropping undecodable cache entry", err, map[string]interface{}{"key": keys[i]})
			}
			continue
		}
		out[i] = v
		hits++
	}

	s.observeOperation("mget", "", time.Since(start), nil, int64(hits), map[string]interface{}{
		"key_count": len(keys),
		"hits":      hits,
	})
	return out, nil
}

// SetVectors stores vectors under keys (pairwise) using a single pipeline.
func (s *Store) SetVectors(ctx context.Context, keys []string, vectors [][]float32) error {
	if len(keys) != len(vectors) {
		return fmt.Errorf("cache: %d keys for %d vectors", len(keys), len(vectors))
	}

	start := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}

	ttl := s.cfg.TTL
	if ttl < 0 {
		ttl = 0
	}

	pipe := s.client.Pipeline()
	for i, key := range keys {
		data, err := json.Marshal(vectors[i])
		if err != nil {
			return fmt.Errorf("cache: encode %s: %w", key, err)
		}
		pipe.Set(ctx, key, data, ttl)
	}
	_, err := pipe.Exec(ctx)

	s.observeOperation("mset", "", time.Since(start), err, int64(len(keys)), map[string]interface{}{
		"ttl": ttl.String(),
	})
	return err
}
