package mcp

import (
	"context"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driving"
)

// mockRetriever is a mock implementation of driving.Retriever.
type mockRetriever struct {
	citations []domain.Citation
	err       error
	lastTopK  int
}

func (m *mockRetriever) Retrieve(_ context.Context, _ string, topK int) ([]domain.Citation, error) {
	m.lastTopK = topK
	return m.citations, m.err
}

// mockReindexer is a mock implementation of driving.Reindexer.
type mockReindexer struct {
	report *domain.ReindexReport
	err    error
}

func (m *mockReindexer) Reindex(_ context.Context) (*domain.ReindexReport, error) {
	return m.report, m.err
}

func (m *mockReindexer) RemoveDocument(_ context.Context, _ string) error {
	return m.err
}

func (m *mockReindexer) Status(_ context.Context) (*driving.ReindexStatus, error) {
	return &driving.ReindexStatus{}, nil
}

// mockLister is a mock implementation of DocumentLister.
type mockLister struct {
	docs []domain.Document
	err  error
}

func (m *mockLister) ListDocuments(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}
