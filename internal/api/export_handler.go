package api

import (
	"net/http"
	"time"

	"github.com/prepquiz/backend/internal/history"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt string          `json:"exported_at"`
	Username   string          `json:"username"`
	Results    []history.Entry `json:"results"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /export
// Exports the active user's full result history as a portable document,
// so results can be carried off this device.
func (h *Handler) exportHistory(w http.ResponseWriter, r *http.Request) {
	state := h.quiz.State()
	if state.User == "" {
		respondError(w, http.StatusUnauthorized, "no active user")
		return
	}

	respondJSON(w, http.StatusOK, ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Username:   state.User,
		Results:    h.quiz.History(),
	})
}
