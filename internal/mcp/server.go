// ABOUTME: MCP server setup for the tracker store.
// ABOUTME: Wraps MCP server with KV-backed storage access.
package mcp

import (
	"context"
	"time"

	"github.com/harperreed/huely/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
}

// NewServer creates a new MCP server with the given storage.
func NewServer(store storage.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "huely",
			Version: "1.1.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     store,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
