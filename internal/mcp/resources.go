// ABOUTME: MCP resource implementations for trackers.
// ABOUTME: Provides huely://trackers and huely://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// huely://trackers - All trackers with their date annotations
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "huely://trackers",
		Name:        "All Trackers",
		Description: "Every tracker with all of its date annotations",
		MIMEType:    "application/json",
	}, s.handleTrackersResource)

	// huely://today - Today's annotation across all trackers
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "huely://today",
		Name:        "Today's Entries",
		Description: "Today's annotation for each tracker, if any",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleTrackersResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	trackers, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	data, err := json.MarshalIndent(trackers, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "huely://trackers",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	trackers, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	today := dateutil.ISODate(timeNow())
	result := map[string]interface{}{
		"date":     today,
		"trackers": map[string]interface{}{},
	}
	entries := result["trackers"].(map[string]interface{})
	for _, t := range trackers {
		if a, ok := t.Dates[today]; ok {
			entries[t.Name] = a
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "huely://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
