package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/workout-tracker/internal/settings"
)

type settingValue struct {
	Value string `json:"value"`
}

func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	all, err := s.settings.All()
	if err != nil {
		s.log.Error("list settings", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, all)
}

func (s *Server) handlePutSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !settings.IsKnownKey(key) {
		writeError(w, http.StatusBadRequest, "unknown setting key")
		return
	}

	var v settingValue
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if err := s.settings.Set(key, v.Value); err != nil {
		s.log.Error("put setting", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{key: v.Value})
}

func (s *Server) handleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !settings.IsKnownKey(key) {
		writeError(w, http.StatusBadRequest, "unknown setting key")
		return
	}

	if err := s.settings.Delete(key); err != nil {
		s.log.Error("delete setting", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
