package driven

import "context"

// TextExtractor converts a downloaded binary document into plain text.
// Only one content type is extracted today (application/pdf); other types
// are filtered out at listing time by the DocumentSource.
type TextExtractor interface {
	// Extract returns the plain-text content of the document bytes.
	Extract(ctx context.Context, data []byte) (string, error)

	// ContentType returns the MIME type this extractor handles.
	ContentType() string
}
