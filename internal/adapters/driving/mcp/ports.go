package mcp

import (
	"context"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driving"
)

// DocumentLister exposes the indexed document inventory. The storage
// gateway satisfies it.
type DocumentLister interface {
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retriever answers queries with citations.
	Retriever driving.Retriever

	// Reindexer triggers index reconciliation. Optional; when nil the
	// reindex tool is not registered.
	Reindexer driving.Reindexer

	// Lister backs the documents resource. Optional; when nil the
	// resource reads as an empty list.
	Lister DocumentLister
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Retriever == nil {
		return ErrMissingRetriever
	}
	return nil
}
