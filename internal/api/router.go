// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// User
	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /logout", h.logout)
	mux.HandleFunc("GET /history", h.getHistory)
	mux.HandleFunc("GET /export", h.exportHistory)

	// Selection
	mux.HandleFunc("GET /catalog", h.getCatalog)
	mux.HandleFunc("PATCH /filters", h.setFilters)
	mux.HandleFunc("PATCH /settings", h.setSettings)

	// Quiz lifecycle
	mux.HandleFunc("GET /state", h.getState)
	mux.HandleFunc("POST /quiz/start", h.startQuiz)
	mux.HandleFunc("POST /quiz/begin", h.beginQuestions)
	mux.HandleFunc("POST /quiz/answer", h.submitAnswer)
	mux.HandleFunc("POST /quiz/next", h.nextQuestion)
	mux.HandleFunc("POST /quiz/goto", h.goToQuestion)
	mux.HandleFunc("POST /quiz/finish", h.finishQuiz)
	mux.HandleFunc("POST /quiz/reset", h.resetQuiz)
}
