// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/huely/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to read and mark your trackers through a
standardized protocol. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "huely": {
        "command": "huely",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_trackers    List all trackers with entry counts
  add_tracker      Create a new tracker
  rename_tracker   Rename an existing tracker
  delete_tracker   Delete a tracker and its entries
  get_tracker      Get a tracker with all date annotations
  mark_date        Mark a date with a category and optional note
  clear_date       Remove the annotation for a date

AVAILABLE RESOURCES:

  huely://trackers    All trackers with their annotations
  huely://today       Today's entries across trackers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
