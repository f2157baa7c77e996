package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/workout-tracker/internal/models"
	"github.com/claude/workout-tracker/internal/viewmodel"
)

// selectionFromRequest builds the list selection from tool arguments.
// Unknown enum values are rejected so the model gets actionable feedback.
func selectionFromRequest(req mcp.CallToolRequest) (viewmodel.Selection, error) {
	sel := viewmodel.DefaultSelection()

	switch f := req.GetString("filter", "all"); f {
	case "all":
	case "weighted":
		sel.Filter = viewmodel.FilterWeighted
	case "bodyweight":
		sel.Filter = viewmodel.FilterBodyweight
	default:
		return sel, fmt.Errorf("invalid filter %q", f)
	}

	if day := req.GetString("day", "all"); day != viewmodel.DayAll {
		if !models.IsValidWorkoutDay(day) {
			return sel, fmt.Errorf("invalid day %q", day)
		}
		sel.Day = day
	}

	sel.Search = req.GetString("search", "")

	switch sb := req.GetString("sort_by", "none"); sb {
	case "none", "":
	case "name":
		sel.Sort = viewmodel.SortName
	case "sets":
		sel.Sort = viewmodel.SortSets
	case "weight":
		sel.Sort = viewmodel.SortWeight
	case "workout_day":
		sel.Sort = viewmodel.SortDay
	default:
		return sel, fmt.Errorf("invalid sort_by %q", sb)
	}

	switch so := req.GetString("sort_order", ""); so {
	case "":
	case "asc":
		sel.Direction = viewmodel.Ascending
	case "desc":
		sel.Direction = viewmodel.Descending
	default:
		return sel, fmt.Errorf("invalid sort_order %q", so)
	}

	sel = sel.WithPage(int(req.GetFloat("page", 1)))

	return sel, nil
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List logged exercises with filtering, sorting and pagination. Pages hold 10 records; the response includes pagination metadata and aggregate metrics over the filtered set."),
	mcp.WithString("filter", mcp.Description("Load filter. Defaults to 'all'."), mcp.Enum("all", "weighted", "bodyweight")),
	mcp.WithString("day", mcp.Description("Workout day filter (A-G, 'None', or 'all'). Defaults to 'all'.")),
	mcp.WithString("search", mcp.Description("Case-insensitive substring match on the exercise name")),
	mcp.WithString("sort_by", mcp.Description("Sort key. Defaults to insertion order."), mcp.Enum("none", "name", "sets", "weight", "workout_day")),
	mcp.WithString("sort_order", mcp.Description("Sort direction. Defaults to 'desc' when sort_by is set."), mcp.Enum("asc", "desc")),
	mcp.WithNumber("page", mcp.Description("Page number, clamped to the available range. Defaults to 1.")),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search exercises by name and return every match (no pagination) plus aggregate metrics over the matches."),
	mcp.WithString("search", mcp.Required(), mcp.Description("Case-insensitive substring match on the exercise name")),
	mcp.WithString("filter", mcp.Description("Load filter. Defaults to 'all'."), mcp.Enum("all", "weighted", "bodyweight")),
	mcp.WithString("day", mcp.Description("Workout day filter (A-G, 'None', or 'all'). Defaults to 'all'.")),
)

var toolGetExercise = mcp.NewTool("get_exercise",
	mcp.WithDescription("Fetch a single logged exercise by ID."),
	mcp.WithNumber("id", mcp.Required(), mcp.Description("Exercise ID")),
)

var toolGetExerciseStats = mcp.NewTool("get_exercise_stats",
	mcp.WithDescription("Aggregate training stats over the whole log: totals, weighted count, total volume, and per-day breakdown."),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sel, err := selectionFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	records, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(viewmodel.Compute(records, sel))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) searchExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("search"); err != nil {
		return mcp.NewToolResultError("search parameter is required"), nil
	}
	sel, err := selectionFromRequest(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	uid := UserIDFromContext(ctx)
	records, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		h.log.Error("mcp search_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	matches := viewmodel.Filtered(records, sel)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"items":   matches,
		"total":   len(matches),
		"metrics": viewmodel.Aggregate(matches),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireFloat("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	e, err := h.ds.GetExercise(ctx, int64(id), uid)
	if err != nil {
		return mcp.NewToolResultError("exercise not found: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(e)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseStats(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	stats, err := h.ds.GetDataStats(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_exercise_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
