package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfigIncomplete indicates required configuration is missing
	// (source folder id, provider credentials). Fatal for the invoked
	// operation; no partial work is attempted.
	ErrConfigIncomplete = errors.New("configuration incomplete")

	// ErrEmbeddingProvider indicates the embedding provider call failed.
	// Callers decide retry policy; the client itself never retries.
	ErrEmbeddingProvider = errors.New("embedding provider error")

	// ErrDimensionMismatch indicates an embedding vector's length does not
	// equal the configured dimensionality. During ingestion this aborts the
	// whole document; on a query it yields an empty citation list.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrSourceUnavailable indicates the document source could not be
	// reached or refused the request.
	ErrSourceUnavailable = errors.New("document source unavailable")

	// ErrRateLimited indicates an external API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrReindexInProgress indicates a reindex run is already active.
	ErrReindexInProgress = errors.New("reindex in progress")
)
