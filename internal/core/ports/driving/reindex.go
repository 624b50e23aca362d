package driving

import (
	"context"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

// Reindexer synchronises the external document collection into the store.
type Reindexer interface {
	// Reindex runs a full reconciliation pass against the source folder.
	// Per-document failures are collected in the report; the run never
	// aborts because one document failed.
	Reindex(ctx context.Context) (*domain.ReindexReport, error)

	// RemoveDocument deletes a document and its chunks by external file
	// id. Removal is an explicit administrative action; reindex never
	// deletes documents on its own.
	RemoveDocument(ctx context.Context, fileID string) error

	// Status reports progress of the active run, if any.
	Status(ctx context.Context) (*ReindexStatus, error)
}

// ReindexStatus represents the current state of a reindex run.
type ReindexStatus struct {
	// Running indicates if a reindex is currently in progress.
	Running bool

	// DocumentsProcessed is the count of documents handled so far.
	DocumentsProcessed int

	// ErrorCount is the number of errors encountered so far.
	ErrorCount int
}
