package model

const (
	// DefaultName is the Hugging Face id of the served model.
	DefaultName = "sentence-transformers/all-MiniLM-L6-v2"

	// DisplayName is the short name used in service metadata.
	DisplayName = "MiniLM-L6-v2"

	// Dimension is the length of every vector the model produces.
	Dimension = 384

	// MaxSequenceLength is the tokenizer truncation limit in tokens.
	MaxSequenceLength = 256

	// DefaultInstallDir is where the installer writes the artifact.
	DefaultInstallDir = "/opt/models/minilm"

	// DefaultServicePath is where the service loads the artifact from when
	// EMBEDDING_MODEL_PATH is not set.
	DefaultServicePath = "minilm_full_dimension_models/minilm_model"
)

// Info is the descriptive document returned by GET /api/v1/model-info.
type Info struct {
	ModelName         string       `json:"model_name"`
	ModelType         string       `json:"model_type"`
	BaseModel         string       `json:"base_model"`
	EmbeddingDim      int          `json:"embedding_dimension"`
	MaxSequenceLength int          `json:"max_sequence_length"`
	MaxInputLength    string       `json:"max_input_length"`
	Normalization     string       `json:"normalization"`
	TrainingData      TrainingData `json:"training_data"`
	UseCases          []string     `json:"use_cases"`
	Performance       Performance  `json:"performance"`
}

type TrainingData struct {
	TotalPairs string   `json:"total_pairs"`
	Datasets   []string `json:"datasets"`
}

type Performance struct {
	Speed   string `json:"speed"`
	Quality string `json:"quality"`
	Domain  string `json:"domain"`
}

// MiniLMInfo returns the static description of all-MiniLM-L6-v2.
// A fresh value is returned on every call so callers may not mutate shared state.
func MiniLMInfo() Info {
	return Info{
		ModelName:         DefaultName,
		ModelType:         "Sentence Transformer",
		BaseModel:         "nreimers/MiniLM-L6-H384-uncased",
		EmbeddingDim:      Dimension,
		MaxSequenceLength: MaxSequenceLength,
		MaxInputLength:    "~512 words",
		Normalization:     "L2 normalization recommended",
		TrainingData: TrainingData{
			TotalPairs: "1.17 billion sentence pairs",
			Datasets: []string{
				"Reddit comments (726M)",
				"S2ORC citations (116M)",
				"WikiAnswers (77M)",
				"PAQ Q&A (64M)",
				"StackExchange (68M)",
				"MS MARCO (9M)",
				"and 24 more datasets",
			},
		},
		UseCases: []string{
			"Semantic search",
			"Text similarity",
			"Clustering",
			"Information retrieval",
			"Duplicate detection",
			"Feature extraction",
		},
		Performance: Performance{
			Speed:   "~1000 sentences/sec on CPU",
			Quality: "High semantic understanding",
			Domain:  "General purpose (not domain-specific)",
		},
	}
}
