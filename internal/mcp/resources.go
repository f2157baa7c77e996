package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/workout-tracker/internal/viewmodel"
)

func (h *handlers) workoutSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	stats, err := h.ds.GetDataStats(ctx, uid)
	if err != nil {
		return nil, err
	}

	records, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		h.log.Warn("workout summary: list failed", "error", err)
	}
	page := viewmodel.Compute(records, viewmodel.DefaultSelection())

	data, err := json.Marshal(map[string]any{
		"stats":      stats,
		"first_page": page,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
