package driven

// Chunker splits plain text into bounded, possibly overlapping segments.
// It is pure: the same input always yields the same chunks.
type Chunker interface {
	// Split returns the ordered chunk texts for the input, or an empty
	// slice when the input is empty after normalisation.
	Split(text string) []string
}
