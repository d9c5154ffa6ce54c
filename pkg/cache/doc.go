// Package cache is an optional Redis cache for raw embedding vectors.
//
// Keys are KeyPrefix + hex(sha256(model NUL text)); values are JSON arrays of
// float32. CachingProvider sits between the Encoder and the inference backend
// and forwards only cache misses, so a batch with some known texts costs one
// MGET plus one backend call for the rest. Vectors are cached before
// normalization, which keeps one entry valid for both normalize settings.
//
// Enable with CACHE_ENABLED=true and point REDIS_HOST / REDIS_PORT at the
// server. Redis outages degrade to uncached operation.
package cache
