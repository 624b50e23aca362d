// Package mcp provides an MCP (Model Context Protocol) server adapter for refbase.
// It enables AI assistants like Claude to query the indexed collection for citations.
package mcp

import "errors"

// ErrMissingRetriever is returned when the retrieval service is not provided.
var ErrMissingRetriever = errors.New("mcp: retrieval service is required")
