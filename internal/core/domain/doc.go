// Package domain defines the core business entities for refbase.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A synchronised knowledge-base document with source metadata
//   - Chunk: An embedded slice of a document's text, the unit of retrieval
//   - Citation: A retrieval result shaped for grounding a generation call
//   - RemoteFile: A file listing entry from the external document source
//   - ReindexReport: The structured outcome of a synchronisation run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
