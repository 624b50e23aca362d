// Package pdf extracts plain text from PDF documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"

	"github.com/refstack-labs/refbase-cli/internal/core/ports/driven"
	"github.com/refstack-labs/refbase-cli/internal/logger"
)

// ContentType is the MIME type this extractor handles.
const ContentType = "application/pdf"

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor converts PDF bytes into plain text, page by page.
// Individual page failures are skipped so one malformed page does not lose
// the whole document.
type Extractor struct{}

// New creates a PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// ContentType returns the MIME type this extractor handles.
func (e *Extractor) ContentType() string {
	return ContentType
}

// Extract returns the concatenated plain text of all readable pages.
func (e *Extractor) Extract(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := extractPage(page)
		if err != nil {
			logger.Warn("Skipping unreadable PDF page %d: %v", i, err)
			continue
		}

		if content = strings.TrimSpace(content); content != "" {
			sb.WriteString(content)
			sb.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// extractPage pulls text from one page, recovering from parser panics that
// malformed PDFs can trigger deep inside content-stream decoding.
func extractPage(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page extraction panicked: %v", r)
		}
	}()

	return page.GetPlainText(nil)
}
