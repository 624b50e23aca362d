package domain

import (
	"regexp"
	"strings"
)

// MaxTitleLength bounds a citation's display title.
const MaxTitleLength = 120

// MaxSnippetLength bounds a citation's text snippet.
const MaxSnippetLength = 350

// titleDelimiter separates a short title from publisher/edition noise in
// source file names ("Short Title -- Publisher.pdf").
const titleDelimiter = " -- "

// Citation is a single retrieval result exposed to callers.
// Citations are derived per retrieval call and never persisted.
type Citation struct {
	// Ref is the sequential display label ("KB1", "KB2", ...).
	Ref string `json:"ref"`

	// Title is the normalised document title.
	Title string `json:"title"`

	// Link is the document's external view URL, if any.
	Link string `json:"link,omitempty"`

	// Snippet is a bounded excerpt of the matched chunk.
	Snippet string `json:"snippet"`

	// ChunkID identifies the originating chunk.
	ChunkID string `json:"chunkId"`
}

var (
	// Trailing document-type extensions stripped from display titles.
	titleExtension = regexp.MustCompile(`(?i)\.(pdf|docx?|txt|md|rtf|html?)$`)
	underscoreRun  = regexp.MustCompile(`_+`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// NormaliseTitle produces a display title from a raw source file name.
// It is pure and deterministic.
func NormaliseTitle(raw string) string {
	title := titleExtension.ReplaceAllString(raw, "")
	title = underscoreRun.ReplaceAllString(title, " ")
	title = whitespaceRun.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)

	// Keep only the short title before the first " -- " delimiter.
	if idx := strings.Index(title, titleDelimiter); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
	}

	if len(title) > MaxTitleLength {
		title = title[:MaxTitleLength] + "..."
	}
	return title
}

// Snippet truncates chunk content to a bounded display excerpt.
func Snippet(content string) string {
	content = strings.TrimSpace(content)
	if len(content) > MaxSnippetLength {
		return content[:MaxSnippetLength] + "..."
	}
	return content
}
