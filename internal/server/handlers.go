package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/claude/workout-tracker/internal/export"
	"github.com/claude/workout-tracker/internal/models"
	"github.com/claude/workout-tracker/internal/storage"
	"github.com/claude/workout-tracker/internal/viewmodel"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.log.Error("health check", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}

// selectionFromQuery decodes the list view state from query parameters.
// Unknown enum values are rejected rather than silently defaulted.
func selectionFromQuery(q url.Values) (viewmodel.Selection, error) {
	sel := viewmodel.DefaultSelection()

	switch f := q.Get("filter"); f {
	case "", string(viewmodel.FilterAll):
	case string(viewmodel.FilterWeighted):
		sel.Filter = viewmodel.FilterWeighted
	case string(viewmodel.FilterBodyweight):
		sel.Filter = viewmodel.FilterBodyweight
	default:
		return sel, fmt.Errorf("invalid filter %q", f)
	}

	if day := q.Get("day"); day != "" && day != viewmodel.DayAll {
		if !models.IsValidWorkoutDay(day) {
			return sel, fmt.Errorf("invalid day %q", day)
		}
		sel.Day = day
	}

	sel.Search = q.Get("search")

	switch sb := q.Get("sort_by"); sb {
	case "", "none":
	case string(viewmodel.SortName):
		sel.Sort = viewmodel.SortName
	case string(viewmodel.SortSets):
		sel.Sort = viewmodel.SortSets
	case string(viewmodel.SortWeight):
		sel.Sort = viewmodel.SortWeight
	case string(viewmodel.SortDay):
		sel.Sort = viewmodel.SortDay
	default:
		return sel, fmt.Errorf("invalid sort_by %q", sb)
	}

	switch so := q.Get("sort_order"); so {
	case "":
	case string(viewmodel.Ascending):
		sel.Direction = viewmodel.Ascending
	case string(viewmodel.Descending):
		sel.Direction = viewmodel.Descending
	default:
		return sel, fmt.Errorf("invalid sort_order %q", so)
	}

	if p := q.Get("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil {
			return sel, fmt.Errorf("invalid page %q", p)
		}
		sel = sel.WithPage(page)
	}

	return sel, nil
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.store.ListExercises(r.Context(), uid)
	if err != nil {
		s.log.Error("list exercises", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSONCached(w, r, viewmodel.Compute(records, sel))
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise ID")
		return
	}

	e, err := s.store.GetExercise(r.Context(), id, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "exercise not found")
			return
		}
		s.log.Error("get exercise", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSONCached(w, r, e)
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	var in models.ExerciseCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	e, err := s.store.CreateExercise(r.Context(), uid, in)
	if err != nil {
		s.log.Error("create exercise", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise ID")
		return
	}

	var in models.ExerciseUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	e, err := s.store.UpdateExercise(r.Context(), id, uid, in)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "exercise not found")
			return
		}
		s.log.Error("update exercise", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid exercise ID")
		return
	}

	if err := s.store.DeleteExercise(r.Context(), id, uid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "exercise not found")
			return
		}
		s.log.Error("delete exercise", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExport streams the filtered, sorted collection without pagination.
// Filter, day, search and sort parameters apply the same as on the list.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	sel, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.store.ListExercises(r.Context(), uid)
	if err != nil {
		s.log.Error("export exercises", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	filtered := viewmodel.Filtered(records, sel)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		if err := export.WriteJSON(w, filtered); err != nil {
			s.log.Error("export json", "error", err)
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="exercises.csv"`)
		if err := export.WriteCSV(w, filtered); err != nil {
			s.log.Error("export csv", "error", err)
		}
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid format %q", format))
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	uid := userIDFrom(r.Context())

	stats, err := s.store.GetDataStats(r.Context(), uid)
	if err != nil {
		s.log.Error("stats", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSONCached(w, r, stats)
}
