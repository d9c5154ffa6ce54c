package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Aleph-Alpha/embedding-service/pkg/model"
)

// Logger defines the logging operations the service needs.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// Service implements the embedding API independent of HTTP.
type Service struct {
	state    *State
	logger   Logger
	recorder Recorder

	now func() time.Time
}

func NewService(state *State, logger Logger) *Service {
	return &Service{state: state, logger: logger, now: time.Now}
}

// WithRecorder attaches domain metrics.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Embed validates req and embeds all texts in a single model call.
func (s *Service) Embed(ctx context.Context, req EmbedRequest) (*EmbedResponse, error) {
	if err := ValidateTexts(req.Texts); err != nil {
		return nil, err
	}

	enc, ok := s.state.Get()
	if !ok {
		return nil, ErrModelNotLoaded
	}

	start := s.now()
	vectors, err := enc.Encode(ctx, req.Texts, req.ShouldNormalize())
	elapsed := s.now().Sub(start)
	if err == nil && len(vectors) != len(req.Texts) {
		err = fmt.Errorf("model returned %d vectors for %d texts", len(vectors), len(req.Texts))
	}
	if err != nil {
		s.logger.ErrorWithContext(ctx, "Embedding generation failed", err, map[string]interface{}{
			"count": len(req.Texts),
		})
		return nil, internalError("Embedding generation failed", err)
	}

	results := make([]EmbeddingResult, len(req.Texts))
	for i, text := range req.Texts {
		results[i] = EmbeddingResult{Text: Truncate(text), Embedding: vectors[i]}
	}

	if s.recorder != nil {
		s.recorder.ObserveEmbedBatch(len(results))
	}

	return &EmbedResponse{
		Embeddings:       results,
		Count:            len(results),
		Dimension:        enc.Dimension(),
		Model:            enc.Name(),
		ProcessingTimeMS: roundTo(float64(elapsed.Microseconds())/1000, 2),
	}, nil
}

// ValidateTexts enforces the 1..MaxTextsPerRequest bound.
func ValidateTexts(texts []string) error {
	if len(texts) == 0 {
		return validationError("No texts provided")
	}
	if len(texts) > MaxTextsPerRequest {
		return validationError(fmt.Sprintf("Maximum %d texts per request. Use batch processing for larger sets.", MaxTextsPerRequest))
	}
	return nil
}

// Similarity embeds both texts normalized in one call and returns their dot product.
func (s *Service) Similarity(ctx context.Context, text1, text2 string) (*SimilarityResponse, error) {
	enc, ok := s.state.Get()
	if !ok {
		return nil, ErrModelNotLoaded
	}

	vectors, err := enc.Encode(ctx, []string{text1, text2}, true)
	if err == nil && len(vectors) != 2 {
		err = fmt.Errorf("model returned %d vectors for 2 texts", len(vectors))
	}
	if err == nil && len(vectors[0]) != len(vectors[1]) {
		err = fmt.Errorf("vector lengths differ: %d and %d", len(vectors[0]), len(vectors[1]))
	}
	if err != nil {
		s.logger.ErrorWithContext(ctx, "Similarity computation failed", err)
		return nil, internalError("Similarity computation failed", err)
	}

	score := dot(vectors[0], vectors[1])
	if s.recorder != nil {
		s.recorder.ObserveSimilarity(score)
	}

	return &SimilarityResponse{
		Text1:          Truncate(text1),
		Text2:          Truncate(text2),
		Similarity:     roundTo(score, 4),
		Interpretation: Interpret(score),
	}, nil
}

// Health never fails; it reports whether a model is loaded.
func (s *Service) Health() HealthResponse {
	loaded := s.state.Loaded()
	status := "unhealthy"
	if loaded {
		status = "healthy"
	}
	return HealthResponse{
		Status:             status,
		ModelLoaded:        loaded,
		ModelName:          model.DefaultName,
		EmbeddingDimension: model.Dimension,
		MaxSequenceLength:  model.MaxSequenceLength,
	}
}

// ModelInfo returns the static model description.
func (s *Service) ModelInfo() model.Info {
	return model.MiniLMInfo()
}

func (s *Service) Root() RootResponse {
	return RootResponse{
		Service:     "Text Embedding Service",
		Model:       model.DisplayName,
		Version:     ServiceVersion,
		Description: fmt.Sprintf("Convert text to %d-dimensional semantic vectors", model.Dimension),
		Endpoints: map[string]string{
			"health":     "/health",
			"embed":      "/api/v1/embed",
			"model_info": "/api/v1/model-info",
			"similarity": "/api/v1/similarity",
		},
	}
}
