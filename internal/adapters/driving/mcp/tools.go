package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Query string `json:"query" jsonschema:"the question to find supporting documents for"`
	TopK  int    `json:"topK,omitempty" jsonschema:"number of candidate chunks to consider (default 6)"`
}

// CitationOutput represents a single citation.
type CitationOutput struct {
	Ref     string `json:"ref"`
	Title   string `json:"title"`
	Link    string `json:"link,omitempty"`
	Snippet string `json:"snippet"`
	ChunkID string `json:"chunkId"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Citations []CitationOutput `json:"citations"`
	Count     int              `json:"count"`
}

// ReindexInput is the input schema for the reindex tool.
type ReindexInput struct{}

// ReindexOutput is the output schema for the reindex tool.
type ReindexOutput struct {
	ScannedCount int `json:"scannedCount"`
	UpdatedCount int `json:"updatedCount"`
	SkippedCount int `json:"skippedCount"`
	ErrorCount   int `json:"errorCount"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve",
		Description: "Find high-confidence citations for a question in the indexed document collection",
	}, s.handleRetrieve)

	if s.ports.Reindexer != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "reindex",
			Description: "Synchronise the remote document folder into the index",
		}, s.handleReindex)
	}
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	citations, err := s.ports.Retriever.Retrieve(ctx, input.Query, input.TopK)
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Citations: make([]CitationOutput, len(citations)),
		Count:     len(citations),
	}

	for i, c := range citations {
		output.Citations[i] = CitationOutput{
			Ref:     c.Ref,
			Title:   c.Title,
			Link:    c.Link,
			Snippet: c.Snippet,
			ChunkID: c.ChunkID,
		}
	}

	return nil, output, nil
}

// handleReindex handles the reindex tool invocation.
func (s *Server) handleReindex(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ReindexInput,
) (*mcp.CallToolResult, ReindexOutput, error) {
	report, err := s.ports.Reindexer.Reindex(ctx)
	if err != nil {
		return nil, ReindexOutput{}, err
	}

	return nil, ReindexOutput{
		ScannedCount: report.ScannedCount,
		UpdatedCount: report.UpdatedCount,
		SkippedCount: report.SkippedCount,
		ErrorCount:   report.ErrorCount,
	}, nil
}
