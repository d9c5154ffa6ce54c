// Package embedding loads the sentence-embedding model and computes vectors.
//
// # Overview
//
// A model is two things: a sentence-transformers directory on disk (validated
// by package model) and an inference backend that serves that directory. The
// backend is reached through a Provider:
//
//   - ProviderTEI: Hugging Face text-embeddings-inference, POST {endpoint}/embed
//   - ProviderOpenAI: any OpenAI-compatible server, POST {endpoint}/embeddings
//   - ProviderOllama: Ollama, POST {endpoint}/api/embed
//
// Providers always return raw vectors. L2 normalization is applied by the
// Encoder so normalize=true holds for every backend.
//
// # Loading
//
//	loader := embedding.NewLoader(cfg, log)
//	enc, err := loader.Load(ctx)
//
// Load validates the artifact, builds the provider and embeds a warm-up
// sentence, failing unless the backend answers with the artifact's dimension.
//
// # Configuration
//
// Config carries yaml and envconfig tags:
//
//   - EMBEDDING_PROVIDER (tei | openai | ollama, default tei)
//   - EMBEDDING_ENDPOINT (default http://localhost:8080)
//   - EMBEDDING_API_KEY (optional bearer token)
//   - EMBEDDING_MODEL (default sentence-transformers/all-MiniLM-L6-v2)
//   - EMBEDDING_MODEL_PATH (default minilm_full_dimension_models/minilm_model)
//   - EMBEDDING_VERIFY_CHECKSUMS
//   - EMBEDDING_HTTP_TIMEOUT_SECONDS (default 30)
//
// # Fx
//
// FXModule provides *Loader. A ProviderWrapper in the container, such as the
// one supplied by the cache package, decorates the provider before warm-up.
package embedding
