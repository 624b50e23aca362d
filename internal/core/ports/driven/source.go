package driven

import (
	"context"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

// DocumentSource provides access to the external document collection.
// The source of truth lives remotely; refbase only reconciles against it.
//
// Implementations may include:
//   - Google Drive (a shared folder of curated PDFs)
//
// There is no change feed: the Sync Engine pulls the full listing each run
// and diffs by checksum and modified time.
type DocumentSource interface {
	// List returns the configured folder's files, in source order.
	// Files whose content type the extractor cannot handle are excluded.
	List(ctx context.Context) ([]domain.RemoteFile, error)

	// Download fetches the raw bytes of a file by its source id.
	Download(ctx context.Context, fileID string) ([]byte, error)

	// Close releases resources.
	Close() error
}
