package metrics

import (
	"time"

	"github.com/Aleph-Alpha/embedding-service/pkg/observability"
)

// MetricsCollector is the metrics surface used by the HTTP layer and the
// embedding service. It is implemented by *Metrics.
type MetricsCollector interface {
	observability.Observer

	// IncrementRequests counts a finished HTTP request.
	IncrementRequests(endpoint, status string)

	// RecordRequestDuration records the duration (in seconds) for a request endpoint.
	RecordRequestDuration(start time.Time, endpoint string)

	// ObserveEmbedBatch records the size of a successful embedding batch.
	ObserveEmbedBatch(size int)

	// ObserveSimilarity records a computed similarity score.
	ObserveSimilarity(score float64)

	// SetModelLoaded flips the model_loaded gauge.
	SetModelLoaded(loaded bool)
}

var _ MetricsCollector = (*Metrics)(nil)
