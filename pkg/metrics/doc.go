// Package metrics exposes Prometheus metrics for the embedding service on a
// dedicated listener (default :9090/metrics).
//
// Besides HTTP request counters and latencies it tracks the domain signals of
// the service: how many texts were embedded, the batch size distribution, the
// similarity score distribution and whether the model is currently loaded.
// *Metrics also implements observability.Observer so the encoder and cache
// can report per-operation counts and latencies without importing Prometheus.
//
// Configuration:
//
//	METRICS_ADDRESS=:9090
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	METRICS_NAMESPACE=embedding
//	METRICS_SERVICE_NAME=embedding-service
package metrics
