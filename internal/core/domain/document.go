package domain

import "time"

// Document represents a knowledge-base document synchronised from the
// external source. It is the canonical metadata record; the text itself
// lives in the document's Chunks.
type Document struct {
	// ID is the internal store identifier.
	ID string

	// SourceFileID is the external source's stable file id.
	// At most one Document exists per SourceFileID.
	SourceFileID string

	// Title is the raw file name as reported by the source.
	Title string

	// ContentType is the source MIME type (e.g., "application/pdf").
	ContentType string

	// Checksum is the source's content checksum, used for change detection.
	Checksum string

	// ModifiedTime is the source's last-modified timestamp.
	ModifiedTime time.Time

	// ViewLink is an optional external URL for viewing the document.
	ViewLink string

	// SizeBytes is the source file size. Zero when the source omits it.
	SizeBytes int64

	// CreatedAt is when the document was first ingested.
	CreatedAt time.Time

	// UpdatedAt is when the document was last reingested.
	UpdatedAt time.Time
}

// Changed reports whether the remote file differs from the stored document.
// Either a checksum or a modified-time difference triggers reingestion.
func (d *Document) Changed(remote RemoteFile) bool {
	return d.Checksum != remote.Checksum || !d.ModifiedTime.Equal(remote.ModifiedTime)
}

// Chunk represents an embedded slice of a document's text.
// Chunks are never updated in place: a content change replaces the
// document's entire chunk set.
type Chunk struct {
	// ID is the internal store identifier.
	ID string

	// DocumentID links to the owning Document. Ownership is exclusive;
	// deleting the document cascades to its chunks.
	DocumentID string

	// Position is the 0-based ordinal within the document.
	// Used for ordering and debugging only, never for retrieval.
	Position int

	// Content is the chunk text.
	Content string

	// Metadata contains chunk-specific key-value pairs. Currently empty.
	Metadata map[string]any

	// Embedding is the fixed-length vector representation. Its length
	// must equal the embedding provider's configured dimensionality.
	Embedding []float32
}

// RemoteFile is one entry in the external source's folder listing.
type RemoteFile struct {
	// ID is the source's stable file id.
	ID string

	// Name is the file name, used as the document title.
	Name string

	// ContentType is the source MIME type.
	ContentType string

	// Checksum is the source's content checksum, empty when unavailable.
	Checksum string

	// ModifiedTime is the source's last-modified timestamp.
	ModifiedTime time.Time

	// ViewLink is an optional external URL for viewing the file.
	ViewLink string

	// SizeBytes is the file size, zero when the source omits it.
	SizeBytes int64
}
