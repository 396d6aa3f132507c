package api

import (
	"net/http"
	"strings"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Username     string `json:"username"`
	HistoryCount int    `json:"history_count"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /login
// Login is a bare display name; there are no credentials to check.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		respondError(w, http.StatusBadRequest, "username is required")
		return
	}

	h.quiz.Login(username)

	cookie, _ := h.cookies.Get(r, sessionName)
	cookie.Values["username"] = username
	if err := cookie.Save(r, w); err != nil {
		h.logger.Error("failed to save session cookie", "error", err)
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Username:     username,
		HistoryCount: len(h.quiz.History()),
	})
}

// POST /logout
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.quiz.Logout()

	cookie, _ := h.cookies.Get(r, sessionName)
	cookie.Options.MaxAge = -1
	if err := cookie.Save(r, w); err != nil {
		h.logger.Error("failed to expire session cookie", "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /history
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quiz.History())
}
