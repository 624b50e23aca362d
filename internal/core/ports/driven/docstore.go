package driven

import (
	"context"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

// SimilarChunk is one row of the similarity query: a chunk joined to its
// owning document's display fields, with the vector distance to the query.
type SimilarChunk struct {
	// ChunkID is the matched chunk.
	ChunkID string

	// DocumentID is the owning document.
	DocumentID string

	// Title is the owning document's raw title.
	Title string

	// ViewLink is the owning document's external link, if any.
	ViewLink string

	// Content is the chunk text.
	Content string

	// Distance is the vector distance to the query (smaller is closer).
	Distance float64
}

// DocumentStore persists documents and chunks and answers the
// vector-similarity query. Backed by SQLite.
type DocumentStore interface {
	// ReplaceDocument upserts the document keyed by its SourceFileID and
	// swaps its chunk set in a single transaction: the metadata upsert,
	// the delete of existing chunks, and the batch insert commit or roll
	// back together. An empty chunk slice is valid and leaves the
	// document with no chunks. Fills in the internal ID on creation.
	ReplaceDocument(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) error

	// GetDocumentByFileID retrieves a document by its external source id.
	// Returns domain.ErrNotFound when absent.
	GetDocumentByFileID(ctx context.Context, fileID string) (*domain.Document, error)

	// ListDocuments returns all stored documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// GetChunks retrieves a document's chunks ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// DeleteDocumentByFileID removes a document and, by cascade, its
	// chunks. Deleting an absent document returns domain.ErrNotFound.
	DeleteDocumentByFileID(ctx context.Context, fileID string) error

	// SearchSimilar returns the limit nearest chunks to the query vector,
	// joined to their document's title and link, ascending by distance.
	SearchSimilar(ctx context.Context, query []float32, limit int) ([]SimilarChunk, error)

	// Close closes the store.
	Close() error
}
