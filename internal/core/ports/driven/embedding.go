package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small with a reduced output dimensionality)
//   - Compatible APIs via a custom base URL
//
// The service never retries; callers decide retry policy. Provider
// failures wrap domain.ErrEmbeddingProvider.
type EmbeddingService interface {
	// EmbedBatch generates embeddings for the given texts in one provider
	// call, returning vectors in input order. An empty input returns an
	// empty result without calling the provider.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the configured embedding vector size.
	// Every returned vector must have exactly this length.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// request. Used at startup to verify credentials.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
