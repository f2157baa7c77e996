package mcp

import (
	"context"

	"github.com/claude/workout-tracker/internal/models"
	"github.com/claude/workout-tracker/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int64, userID int) (*models.Exercise, error)
	GetDataStats(ctx context.Context, userID int) (*storage.DataStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
