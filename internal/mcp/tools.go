// ABOUTME: MCP tool implementations for trackers.
// ABOUTME: Provides CRUD operations for trackers and date annotations.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/huely/internal/dateutil"
	"github.com/harperreed/huely/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_trackers
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_trackers",
		Description: "List all trackers with their entry counts",
	}, s.handleListTrackers)

	// add_tracker
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_tracker",
		Description: "Create a new tracker",
	}, s.handleAddTracker)

	// rename_tracker
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "rename_tracker",
		Description: "Rename an existing tracker",
	}, s.handleRenameTracker)

	// delete_tracker
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_tracker",
		Description: "Delete a tracker and all its entries",
	}, s.handleDeleteTracker)

	// get_tracker
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_tracker",
		Description: "Get a tracker with all of its date annotations",
	}, s.handleGetTracker)

	// mark_date
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mark_date",
		Description: "Mark a date on a tracker with a category (1-4) and optional note",
	}, s.handleMarkDate)

	// clear_date
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_date",
		Description: "Remove the annotation for a date on a tracker",
	}, s.handleClearDate)
}

// Tool input/output types

type trackerNameInput struct {
	Name string `json:"name" jsonschema:"Tracker name"`
}

type renameTrackerInput struct {
	Name    string `json:"name" jsonschema:"Current tracker name"`
	NewName string `json:"new_name" jsonschema:"New tracker name"`
}

type markDateInput struct {
	Name     string `json:"name" jsonschema:"Tracker name"`
	Date     string `json:"date,omitempty" jsonschema:"ISO date (YYYY-MM-DD), defaults to today"`
	Category int    `json:"category,omitempty" jsonschema:"Category 1-4, 0 clears the category"`
	Note     string `json:"note,omitempty" jsonschema:"Optional note for the date"`
}

type clearDateInput struct {
	Name string `json:"name" jsonschema:"Tracker name"`
	Date string `json:"date" jsonschema:"ISO date (YYYY-MM-DD)"`
}

type trackerSummary struct {
	Name    string `json:"name"`
	Created int64  `json:"created"`
	Entries int    `json:"entries"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// findTracker resolves a tracker by sanitized name.
func (s *Server) findTracker(name string) (*models.Tracker, error) {
	trackers, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list trackers: %w", err)
	}
	want := models.SanitizeName(name)
	for _, t := range trackers {
		if t.Name == want {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tracker not found: %s", want)
}

// Tool handlers

func (s *Server) handleListTrackers(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	trackers, err := s.store.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list trackers: %w", err)
	}

	if len(trackers) == 0 {
		return nil, map[string]interface{}{"message": "No trackers found."}, nil
	}

	summaries := make([]trackerSummary, 0, len(trackers))
	for _, t := range trackers {
		summaries = append(summaries, trackerSummary{
			Name:    t.Name,
			Created: t.Created,
			Entries: len(t.Dates),
		})
	}
	return nil, summaries, nil
}

func (s *Server) handleAddTracker(ctx context.Context, req *mcp.CallToolRequest, input trackerNameInput) (*mcp.CallToolResult, simpleOutput, error) {
	name := models.SanitizeName(input.Name)
	if name == "" {
		return nil, simpleOutput{}, fmt.Errorf("tracker name must not be empty")
	}

	if _, err := s.store.Add(name); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add tracker: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Added tracker: %s", name),
	}, nil
}

func (s *Server) handleRenameTracker(ctx context.Context, req *mcp.CallToolRequest, input renameTrackerInput) (*mcp.CallToolResult, simpleOutput, error) {
	newName := models.SanitizeName(input.NewName)
	if newName == "" {
		return nil, simpleOutput{}, fmt.Errorf("tracker name must not be empty")
	}

	t, err := s.findTracker(input.Name)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	old := t.Name
	t.Name = newName
	if _, err := s.store.Update(t); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to rename tracker: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Renamed tracker: %s -> %s", old, newName),
	}, nil
}

func (s *Server) handleDeleteTracker(ctx context.Context, req *mcp.CallToolRequest, input trackerNameInput) (*mcp.CallToolResult, simpleOutput, error) {
	t, err := s.findTracker(input.Name)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if _, err := s.store.Remove(t); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete tracker: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted tracker: %s", t.Name),
	}, nil
}

func (s *Server) handleGetTracker(ctx context.Context, req *mcp.CallToolRequest, input trackerNameInput) (*mcp.CallToolResult, any, error) {
	t, err := s.findTracker(input.Name)
	if err != nil {
		return nil, nil, err
	}
	return nil, t, nil
}

func (s *Server) handleMarkDate(ctx context.Context, req *mcp.CallToolRequest, input markDateInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := input.Date
	if date == "" {
		date = dateutil.ISODate(dateutil.Midnight(timeNow()))
	}
	if _, err := dateutil.ParseISODate(date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid date %q: %w", input.Date, err)
	}

	category := models.Category(input.Category)
	if category != models.CategoryNone && !category.IsValid() {
		return nil, simpleOutput{}, fmt.Errorf("category must be 1-4, got %d", input.Category)
	}

	t, err := s.findTracker(input.Name)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	t.SetNote(date, input.Note)
	t.Mark(date, category)
	if _, err := s.store.Update(t); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to mark date: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Marked %s on %s (category %d)", t.Name, date, input.Category),
	}, nil
}

func (s *Server) handleClearDate(ctx context.Context, req *mcp.CallToolRequest, input clearDateInput) (*mcp.CallToolResult, simpleOutput, error) {
	if _, err := dateutil.ParseISODate(input.Date); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid date %q: %w", input.Date, err)
	}

	t, err := s.findTracker(input.Name)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	t.Clear(input.Date)
	if _, err := s.store.Update(t); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to clear date: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Cleared %s on %s", t.Name, input.Date),
	}, nil
}
