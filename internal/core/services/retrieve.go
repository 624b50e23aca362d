package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driven"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driving"
	"github.com/refstack-labs/refbase-cli/internal/logger"
)

// Retrieval defaults. A match must be both close enough and accompanied
// by enough corroborating matches before any citation is returned.
const (
	// DefaultTopK is the number of nearest chunks fetched per query.
	DefaultTopK = 6

	// DefaultMaxDistance is the cosine distance ceiling for a usable match.
	DefaultMaxDistance = 0.35

	// DefaultMinResults is the minimum number of surviving matches
	// required before any citations are emitted.
	DefaultMinResults = 2
)

// Ensure RetrievalService implements the interface.
var _ driving.Retriever = (*RetrievalService)(nil)

// RetrievalService answers semantic queries with citations drawn from
// the indexed collection.
type RetrievalService struct {
	store    driven.DocumentStore
	embedder driven.EmbeddingService

	topK        int
	maxDistance float64
	minResults  int
}

// RetrieveOption configures a RetrievalService.
type RetrieveOption func(*RetrievalService)

// WithTopK sets the default number of nearest chunks fetched.
func WithTopK(k int) RetrieveOption {
	return func(s *RetrievalService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// WithMaxDistance sets the distance ceiling for a usable match.
func WithMaxDistance(d float64) RetrieveOption {
	return func(s *RetrievalService) {
		if d > 0 {
			s.maxDistance = d
		}
	}
}

// WithMinResults sets the minimum-evidence gate.
func WithMinResults(n int) RetrieveOption {
	return func(s *RetrievalService) {
		if n > 0 {
			s.minResults = n
		}
	}
}

// NewRetrievalService creates a retrieval service.
func NewRetrievalService(
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	opts ...RetrieveOption,
) *RetrievalService {
	s := &RetrievalService{
		store:       store,
		embedder:    embedder,
		topK:        DefaultTopK,
		maxDistance: DefaultMaxDistance,
		minResults:  DefaultMinResults,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Retrieve embeds the query, fetches the nearest chunks, and shapes the
// survivors into citations. An empty result means "no confident match"
// and is not an error; only provider and storage failures return one.
func (s *RetrievalService) Retrieve(ctx context.Context, query string, topK int) ([]domain.Citation, error) {
	logger.Section("Retrieve")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Citation{}, nil
	}

	if topK <= 0 {
		topK = s.topK
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(embeddings) != 1 || len(embeddings[0]) != s.embedder.Dimensions() {
		// An unusable query embedding yields no citations rather than a
		// hard failure.
		logger.Warn("Query embedding unusable, returning no citations")
		return []domain.Citation{}, nil
	}

	rows, err := s.store.SearchSimilar(ctx, embeddings[0], topK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	logger.Debug("Nearest chunks: %d", len(rows))

	// Distance threshold plus blank title/content filter.
	filtered := make([]driven.SimilarChunk, 0, len(rows))
	for _, row := range rows {
		if row.Distance > s.maxDistance {
			continue
		}
		if strings.TrimSpace(row.Title) == "" || strings.TrimSpace(row.Content) == "" {
			continue
		}
		filtered = append(filtered, row)
	}
	logger.Debug("Within distance %.2f: %d", s.maxDistance, len(filtered))

	// Minimum-evidence gate: one good match alone is not trusted.
	if len(filtered) < s.minResults {
		logger.Info("Only %d matches survived filtering (need %d), returning no citations",
			len(filtered), s.minResults)
		return []domain.Citation{}, nil
	}

	citations := s.buildCitations(filtered)
	logger.Info("Citations: %d", len(citations))
	return citations, nil
}

// dedupKey identifies a source document for deduplication.
type dedupKey struct {
	title string
	link  string
}

// buildCitations deduplicates rows by document and shapes them into
// labelled citations. Rows arrive ascending by distance, so the first
// occurrence of a document is its closest chunk.
func (s *RetrievalService) buildCitations(rows []driven.SimilarChunk) []domain.Citation {
	seen := make(map[dedupKey]bool, len(rows))
	citations := make([]domain.Citation, 0, len(rows))

	for _, row := range rows {
		title := domain.NormaliseTitle(row.Title)
		key := dedupKey{title: title, link: row.ViewLink}
		if seen[key] {
			continue
		}
		seen[key] = true

		citations = append(citations, domain.Citation{
			Ref:     fmt.Sprintf("KB%d", len(citations)+1),
			Title:   title,
			Link:    row.ViewLink,
			Snippet: domain.Snippet(row.Content),
			ChunkID: row.ChunkID,
		})
	}

	return citations
}
