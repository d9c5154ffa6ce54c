package service

const (
	// MaxTextsPerRequest is the only admission control on /api/v1/embed.
	MaxTextsPerRequest = 100

	// LabelMaxRunes is where response labels are cut.
	LabelMaxRunes = 100

	// ServiceVersion is reported by the root endpoint.
	ServiceVersion = "2.0.0"
)

type EmbedRequest struct {
	Texts []string `json:"texts"`

	// Normalize defaults to true when absent.
	Normalize *bool `json:"normalize,omitempty"`
}

// ShouldNormalize resolves the default.
func (r EmbedRequest) ShouldNormalize() bool {
	return r.Normalize == nil || *r.Normalize
}

type EmbeddingResult struct {
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`

	// Tokens is never populated.
	Tokens *int `json:"tokens,omitempty"`
}

type EmbedResponse struct {
	Embeddings       []EmbeddingResult `json:"embeddings"`
	Count            int               `json:"count"`
	Dimension        int               `json:"dimension"`
	Model            string            `json:"model"`
	ProcessingTimeMS float64           `json:"processing_time_ms"`
}

type SimilarityResponse struct {
	Text1          string  `json:"text1"`
	Text2          string  `json:"text2"`
	Similarity     float64 `json:"similarity"`
	Interpretation string  `json:"interpretation"`
}

type HealthResponse struct {
	Status             string `json:"status"`
	ModelLoaded        bool   `json:"model_loaded"`
	ModelName          string `json:"model_name"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	MaxSequenceLength  int    `json:"max_sequence_length"`
}

type RootResponse struct {
	Service     string            `json:"service"`
	Model       string            `json:"model"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}
