package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and the HTTP server exposing it.
type Metrics struct {
	// Server serves /metrics from Registry.
	Server *http.Server

	// Registry is the isolated registry all metrics are registered with.
	Registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	embeddedTexts     prometheus.Counter
	embedBatchSize    prometheus.Histogram
	similarityScore   prometheus.Histogram
	modelLoaded       prometheus.Gauge
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the service metrics (and the Go,
// process and build-info collectors when enabled) under a constant
// service="<cfg.ServiceName>" label, and prepares the /metrics server.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "embedding-service",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "requests_total", "Total number of processed HTTP requests", []string{"endpoint", "status"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)
	m.embeddedTexts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "embedded_texts_total",
		Help:      "Total number of texts converted to vectors",
	})
	m.embedBatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "embed_batch_size",
		Help:      "Number of texts per embedding request",
		Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
	})
	m.similarityScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "similarity_score",
		Help:      "Distribution of computed cosine similarity scores",
		Buckets:   []float64{-0.5, 0, 0.2, 0.4, 0.6, 0.8, 0.9, 1},
	})
	m.modelLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "model_loaded",
		Help:      "1 when the embedding model is loaded and serving, 0 otherwise",
	})
	m.operationsTotal = createCounterVec(cfg.Namespace, "operations_total", "Component operations reported through the observer hook", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec(cfg.Namespace, "operation_duration_seconds", "Duration of component operations in seconds", []string{"component", "operation"}, prometheus.DefBuckets)

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.embeddedTexts,
		m.embedBatchSize,
		m.similarityScore,
		m.modelLoaded,
		m.operationsTotal,
		m.operationDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}

	return m
}
