package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

func TestServer_handleRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("returns citations", func(t *testing.T) {
		mock := &mockRetriever{
			citations: []domain.Citation{
				{
					Ref:     "KB1",
					Title:   "Service Blueprints",
					Link:    "https://drive.google.com/file/d/abc/view",
					Snippet: "Blueprinting maps the service.",
					ChunkID: "chunk-1",
				},
			},
		}

		server, err := NewServer(&Ports{Retriever: mock})
		require.NoError(t, err)

		input := RetrieveInput{Query: "what is a service blueprint", TopK: 4}
		_, output, err := server.handleRetrieve(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Citations, 1)
		assert.Equal(t, "KB1", output.Citations[0].Ref)
		assert.Equal(t, "Service Blueprints", output.Citations[0].Title)
		assert.Equal(t, "chunk-1", output.Citations[0].ChunkID)
		assert.Equal(t, 4, mock.lastTopK)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		server, err := NewServer(&Ports{Retriever: &mockRetriever{}})
		require.NoError(t, err)

		_, output, err := server.handleRetrieve(ctx, nil, RetrieveInput{Query: "obscure"})
		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Citations)
	})

	t.Run("returns error on retrieval failure", func(t *testing.T) {
		mock := &mockRetriever{err: errors.New("retrieve failed")}
		server, err := NewServer(&Ports{Retriever: mock})
		require.NoError(t, err)

		_, _, err = server.handleRetrieve(ctx, nil, RetrieveInput{Query: "test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "retrieve failed")
	})
}

func TestServer_handleReindex(t *testing.T) {
	ctx := context.Background()

	t.Run("returns report counters", func(t *testing.T) {
		mock := &mockReindexer{
			report: &domain.ReindexReport{
				ScannedCount: 10,
				UpdatedCount: 3,
				SkippedCount: 6,
				ErrorCount:   1,
			},
		}
		server, err := NewServer(&Ports{Retriever: &mockRetriever{}, Reindexer: mock})
		require.NoError(t, err)

		_, output, err := server.handleReindex(ctx, nil, ReindexInput{})
		require.NoError(t, err)
		assert.Equal(t, 10, output.ScannedCount)
		assert.Equal(t, 3, output.UpdatedCount)
		assert.Equal(t, 6, output.SkippedCount)
		assert.Equal(t, 1, output.ErrorCount)
	})

	t.Run("returns error on reindex failure", func(t *testing.T) {
		mock := &mockReindexer{err: errors.New("folder unavailable")}
		server, err := NewServer(&Ports{Retriever: &mockRetriever{}, Reindexer: mock})
		require.NoError(t, err)

		_, _, err = server.handleReindex(ctx, nil, ReindexInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "folder unavailable")
	})
}
