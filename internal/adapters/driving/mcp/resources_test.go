package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil lister returns empty list", func(t *testing.T) {
		ports := &Ports{Retriever: &mockRetriever{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("refbase://documents")
		result, err := server.handleDocumentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns documents successfully", func(t *testing.T) {
		lister := &mockLister{
			docs: []domain.Document{
				{
					ID:           "doc-1",
					SourceFileID: "file-abc",
					Title:        "Journey Mapping",
					ViewLink:     "https://drive.google.com/file/d/file-abc/view",
					ModifiedTime: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
					SizeBytes:    4096,
				},
			},
		}

		ports := &Ports{Retriever: &mockRetriever{}, Lister: lister}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("refbase://documents")
		result, err := server.handleDocumentsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, "file-abc")
		assert.Contains(t, result.Contents[0].Text, "Journey Mapping")
		assert.Contains(t, result.Contents[0].Text, "drive.google.com")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		lister := &mockLister{err: errors.New("database error")}

		ports := &Ports{Retriever: &mockRetriever{}, Lister: lister}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("refbase://documents")
		_, err = server.handleDocumentsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing documents")
	})
}
