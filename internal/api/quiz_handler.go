package api

import (
	"net/http"

	"github.com/prepquiz/backend/internal/domain/question"
	"github.com/prepquiz/backend/internal/domain/quizsession"
)

// ── Request / Response types ────────────────────────────────────────────────

// SetFiltersRequest applies the given selectors in hierarchy order, so a
// request that changes both subject and chapter behaves like two
// consecutive user actions.
type SetFiltersRequest struct {
	Subject     *string   `json:"subject,omitempty"`
	Chapter     *string   `json:"chapter,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Topic       *string   `json:"topic,omitempty"`
	GKGSSubject *string   `json:"gkgs_subject,omitempty"`
	GKGSTopics  *[]string `json:"gkgs_topics,omitempty"`
}

type SetSettingsRequest struct {
	TimerMode     *string `json:"timer_mode,omitempty"` // "question" | "overall"
	QuestionCount *int    `json:"question_count,omitempty"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Option     string `json:"option"`
}

type GoToRequest struct {
	Index int `json:"index"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /state
func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quiz.State())
}

// GET /catalog
func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quiz.Catalog())
}

// PATCH /filters
func (h *Handler) setFilters(w http.ResponseWriter, r *http.Request) {
	var req SetFiltersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Subject != nil {
		h.quiz.SetSubject(*req.Subject)
	}
	if req.Chapter != nil {
		h.quiz.SetChapter(*req.Chapter)
	}
	if req.Type != nil {
		h.quiz.SetType(*req.Type)
	}
	if req.Topic != nil {
		h.quiz.SetTopic(*req.Topic)
	}
	if req.GKGSSubject != nil {
		h.quiz.SetGKGSSubject(*req.GKGSSubject)
	}
	if req.GKGSTopics != nil {
		h.quiz.SetGKGSTopics(*req.GKGSTopics)
	}

	respondJSON(w, http.StatusOK, h.quiz.State().Filters)
}

// PATCH /settings
func (h *Handler) setSettings(w http.ResponseWriter, r *http.Request) {
	var req SetSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.TimerMode != nil {
		switch mode := quizsession.TimerMode(*req.TimerMode); mode {
		case quizsession.TimerPerQuestion, quizsession.TimerOverall:
			h.quiz.SetTimerMode(mode)
		default:
			respondError(w, http.StatusBadRequest, "timer_mode must be \"question\" or \"overall\"")
			return
		}
	}
	if req.QuestionCount != nil {
		if *req.QuestionCount < 0 {
			respondError(w, http.StatusBadRequest, "question_count cannot be negative")
			return
		}
		h.quiz.SetQuestionCount(*req.QuestionCount)
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /quiz/start
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	h.quiz.Start()
	respondJSON(w, http.StatusOK, h.quiz.State())
}

// POST /quiz/begin
// Exits the revision pass into the running state.
func (h *Handler) beginQuestions(w http.ResponseWriter, r *http.Request) {
	h.quiz.BeginQuestions()
	respondJSON(w, http.StatusOK, h.quiz.State())
}

// POST /quiz/answer
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	switch opt := question.OptionKey(req.Option); opt {
	case question.OptionA, question.OptionB, question.OptionC, question.OptionD:
		h.quiz.SubmitAnswer(req.QuestionID, opt)
	default:
		respondError(w, http.StatusBadRequest, "option must be one of A, B, C, D")
		return
	}

	respondJSON(w, http.StatusOK, h.quiz.State())
}

// POST /quiz/next
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.Next(); err != nil {
		h.logger.Error("failed to advance quiz", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to persist result")
		return
	}
	respondJSON(w, http.StatusOK, h.quiz.State())
}

// POST /quiz/goto
func (h *Handler) goToQuestion(w http.ResponseWriter, r *http.Request) {
	var req GoToRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.quiz.GoTo(req.Index)
	respondJSON(w, http.StatusOK, h.quiz.State())
}

// POST /quiz/finish
func (h *Handler) finishQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.Finish(); err != nil {
		h.logger.Error("failed to finish quiz", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to persist result")
		return
	}
	respondJSON(w, http.StatusOK, h.quiz.State())
}

// POST /quiz/reset
func (h *Handler) resetQuiz(w http.ResponseWriter, r *http.Request) {
	h.quiz.Reset()
	respondJSON(w, http.StatusOK, h.quiz.State())
}
