package api

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
	"github.com/Aleph-Alpha/embedding-service/pkg/service"
)

// EmbeddingService is what the handlers need from *service.Service.
type EmbeddingService interface {
	Embed(ctx context.Context, req service.EmbedRequest) (*service.EmbedResponse, error)
	Similarity(ctx context.Context, text1, text2 string) (*service.SimilarityResponse, error)
	Health() service.HealthResponse
	ModelInfo() model.Info
	Root() service.RootResponse
}

type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// RequestRecorder receives one call per finished request.
type RequestRecorder interface {
	IncrementRequests(endpoint, status string)
	RecordRequestDuration(start time.Time, endpoint string)
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
