package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/workout-tracker/internal/viewmodel"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

func requestWithArgs(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// TestSelectionFromRequestDefaults verifies an empty argument set maps to the
// default selection.
func TestSelectionFromRequestDefaults(t *testing.T) {
	sel, err := selectionFromRequest(requestWithArgs(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != viewmodel.DefaultSelection() {
		t.Errorf("sel = %+v, want defaults", sel)
	}
}

// TestSelectionFromRequestFull verifies all arguments map through.
func TestSelectionFromRequestFull(t *testing.T) {
	sel, err := selectionFromRequest(requestWithArgs(map[string]any{
		"filter":     "weighted",
		"day":        "B",
		"search":     "press",
		"sort_by":    "weight",
		"sort_order": "asc",
		"page":       float64(3),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sel.Filter != viewmodel.FilterWeighted {
		t.Errorf("filter = %q", sel.Filter)
	}
	if sel.Day != "B" {
		t.Errorf("day = %q", sel.Day)
	}
	if sel.Search != "press" {
		t.Errorf("search = %q", sel.Search)
	}
	if sel.Sort != viewmodel.SortWeight || sel.Direction != viewmodel.Ascending {
		t.Errorf("sort = %q %q", sel.Sort, sel.Direction)
	}
	if sel.Page != 3 {
		t.Errorf("page = %d", sel.Page)
	}
}

// TestSelectionFromRequestRejectsUnknown verifies invalid enum values error
// instead of silently defaulting.
func TestSelectionFromRequestRejectsUnknown(t *testing.T) {
	for _, args := range []map[string]any{
		{"filter": "heavy"},
		{"day": "Z"},
		{"sort_by": "reps"},
		{"sort_order": "up"},
	} {
		if _, err := selectionFromRequest(requestWithArgs(args)); err == nil {
			t.Errorf("args %v: expected error", args)
		}
	}
}
