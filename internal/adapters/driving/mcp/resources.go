package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for refbase resources.
const uriScheme = "refbase://"

// documentInfo is the resource representation of an indexed document.
type documentInfo struct {
	ID           string    `json:"id"`
	FileID       string    `json:"fileId"`
	Title        string    `json:"title"`
	Link         string    `json:"link,omitempty"`
	ModifiedTime time.Time `json:"modifiedTime"`
	SizeBytes    int64     `json:"sizeBytes"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "documents",
		Name:        "documents",
		Description: "Inventory of all indexed documents",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)
}

// handleDocumentsResource returns the indexed document inventory.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Lister == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	docs, err := s.ports.Lister.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]documentInfo, len(docs))
	for i, doc := range docs {
		infos[i] = documentInfo{
			ID:           doc.ID,
			FileID:       doc.SourceFileID,
			Title:        doc.Title,
			Link:         doc.ViewLink,
			ModifiedTime: doc.ModifiedTime,
			SizeBytes:    doc.SizeBytes,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
