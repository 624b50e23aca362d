// Package chunker splits normalised text into bounded, overlapping chunks,
// preferring paragraph boundaries.
package chunker

import (
	"regexp"
	"strings"
)

// DefaultMaxChars is the default maximum characters per chunk.
const DefaultMaxChars = 1500

// DefaultOverlapChars is the default overlap between sliding-window chunks.
const DefaultOverlapChars = 200

// paragraphSep joins accumulated segments and splits paragraphs.
const paragraphSep = "\n\n"

var (
	lineEndings   = regexp.MustCompile(`\r\n?`)
	newlineRun    = regexp.MustCompile(`\n{3,}`)
	horizontalWS  = regexp.MustCompile(`[ \t\f\v]+`)
	paddedNewline = regexp.MustCompile(` ?\n ?`)
)

// Splitter produces chunks bounded by a maximum character count. Overlap
// is introduced only when a single paragraph exceeds the bound and must be
// cut by a sliding window.
type Splitter struct {
	maxChars int
	overlap  int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithMaxChars sets the maximum chunk size in characters.
func WithMaxChars(n int) Option {
	return func(s *Splitter) {
		if n > 0 {
			s.maxChars = n
		}
	}
}

// WithOverlap sets the overlap between sliding-window chunks in characters.
func WithOverlap(n int) Option {
	return func(s *Splitter) {
		if n >= 0 {
			s.overlap = n
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		maxChars: DefaultMaxChars,
		overlap:  DefaultOverlapChars,
	}

	for _, opt := range opts {
		opt(s)
	}

	// An overlap at or above the chunk size would produce a non-advancing
	// window; clamp it.
	if s.overlap >= s.maxChars {
		s.overlap = s.maxChars / 4
	}

	return s
}

// MaxChars returns the configured chunk bound.
func (s *Splitter) MaxChars() int { return s.maxChars }

// Overlap returns the configured window overlap.
func (s *Splitter) Overlap() int { return s.overlap }

// Split chunks the input text. The result is empty when the input is empty
// after normalisation.
func (s *Splitter) Split(text string) []string {
	norm := Normalise(text)
	if norm == "" {
		return nil
	}

	var chunks []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
	}

	for _, segment := range splitParagraphs(norm) {
		if len(segment) > s.maxChars {
			// The segment cannot be buffered whole; emit the buffer and
			// slide a window across the oversized segment.
			flush()
			chunks = append(chunks, s.slideWindow(segment)...)
			continue
		}

		if buf.Len() == 0 {
			buf.WriteString(segment)
			continue
		}

		if buf.Len()+len(paragraphSep)+len(segment) <= s.maxChars {
			buf.WriteString(paragraphSep)
			buf.WriteString(segment)
		} else {
			flush()
			buf.WriteString(segment)
		}
	}

	flush()
	return chunks
}

// Normalise collapses line endings, excess blank lines, and horizontal
// whitespace runs, then trims.
func Normalise(text string) string {
	text = lineEndings.ReplaceAllString(text, "\n")
	text = horizontalWS.ReplaceAllString(text, " ")
	text = paddedNewline.ReplaceAllString(text, "\n")
	text = newlineRun.ReplaceAllString(text, paragraphSep)
	return strings.TrimSpace(text)
}

// splitParagraphs cuts normalised text on blank-line boundaries, dropping
// empty segments.
func splitParagraphs(norm string) []string {
	parts := strings.Split(norm, paragraphSep)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// slideWindow cuts an oversized segment into maxChars-sized windows,
// advancing by maxChars-overlap and stopping once a window reaches the end.
func (s *Splitter) slideWindow(segment string) []string {
	step := s.maxChars - s.overlap
	var chunks []string

	for start := 0; start < len(segment); start += step {
		end := start + s.maxChars
		if end > len(segment) {
			end = len(segment)
		}

		if chunk := strings.TrimSpace(segment[start:end]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(segment) {
			break
		}
	}

	return chunks
}
