package driving

import (
	"context"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

// Retriever answers semantic queries with high-confidence citations.
type Retriever interface {
	// Retrieve embeds the query, searches for nearby chunks, and shapes
	// the survivors into citations. topK <= 0 means the configured
	// default. An empty result is a valid "no confident match" outcome,
	// not an error; only infrastructure failures return one.
	Retrieve(ctx context.Context, query string, topK int) ([]domain.Citation, error)
}
