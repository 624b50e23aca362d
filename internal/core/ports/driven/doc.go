// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentSource: Lists and downloads files from the external source
//   - TextExtractor: Converts downloaded bytes into plain text
//   - EmbeddingService: Generates fixed-dimension vector embeddings
//   - DocumentStore: Document/chunk persistence and the similarity query
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or extractor package
package driven
