// Package server exposes the workout tracker over HTTP: exercise CRUD, the
// list view pipeline, exports, stats, auth, and settings.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/workout-tracker/internal/auth"
	"github.com/claude/workout-tracker/internal/models"
	"github.com/claude/workout-tracker/internal/settings"
	"github.com/claude/workout-tracker/internal/storage"
)

// Store is the persistence surface the handlers need. *storage.DB satisfies
// it; tests substitute an in-memory stub.
type Store interface {
	ListExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	GetExercise(ctx context.Context, id int64, userID int) (*models.Exercise, error)
	CreateExercise(ctx context.Context, userID int, in models.ExerciseCreate) (*models.Exercise, error)
	UpdateExercise(ctx context.Context, id int64, userID int, in models.ExerciseUpdate) (*models.Exercise, error)
	DeleteExercise(ctx context.Context, id int64, userID int) error
	GetDataStats(ctx context.Context, userID int) (*storage.DataStats, error)
	CreateUser(ctx context.Context, email, displayName, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	Ping(ctx context.Context) error
}

var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       Store
	tokens      *auth.Manager
	settings    *settings.Store
	log         *slog.Logger
	authEnabled bool
	router      chi.Router
}

// New creates a new Server with all routes configured. When authEnabled is
// false every request runs as the local dev user.
func New(store Store, tokens *auth.Manager, st *settings.Store, authEnabled bool, log *slog.Logger) *Server {
	s := &Server{
		store:       store,
		tokens:      tokens,
		settings:    st,
		log:         log,
		authEnabled: authEnabled,
		router:      chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/health", s.handleHealth)

	s.router.Post("/api/v1/auth/register", s.handleRegister)
	s.router.Post("/api/v1/auth/login", s.handleLogin)

	// Everything below runs on behalf of an authenticated user.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.JWTAuth)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)
		r.Get("/exercises/export", s.handleExport)
		r.Get("/exercises/{id}", s.handleGetExercise)
		r.Patch("/exercises/{id}", s.handleUpdateExercise)
		r.Delete("/exercises/{id}", s.handleDeleteExercise)

		r.Get("/stats", s.handleStats)

		r.Get("/settings", s.handleListSettings)
		r.Put("/settings/{key}", s.handlePutSetting)
		r.Delete("/settings/{key}", s.handleDeleteSetting)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
