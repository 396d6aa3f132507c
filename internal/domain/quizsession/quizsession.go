// Package quizsession holds the quiz lifecycle state machine. It is pure
// state: no storage, no timers. The service layer wires those in.
package quizsession

import (
	"math"

	"github.com/prepquiz/backend/internal/domain/question"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusRevision  Status = "revision"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
)

type TimerMode string

const (
	TimerPerQuestion TimerMode = "question"
	TimerOverall     TimerMode = "overall"
)

// Scoring rules: a correct answer earns 2 points, a wrong one costs 0.5.
// Skipped questions score nothing.
const (
	CorrectPoints = 2.0
	WrongPenalty  = 0.5
)

// Session is one live quiz attempt. The question list is fixed at
// construction; answers accumulate and are never removed while running.
type Session struct {
	Status          Status
	Questions       []question.Question
	CurrentIndex    int
	Answers         map[string]question.OptionKey
	Score           float64
	TimerMode       TimerMode
	TimePerQuestion int // seconds
	TotalTime       int // seconds
}

// New creates a session over a fixed question list. It starts in revision
// when the selection asked for a study pass, otherwise directly in running.
func New(questions []question.Question, mode TimerMode, timePerQuestion, totalTime int, revision bool) *Session {
	status := StatusRunning
	if revision {
		status = StatusRevision
	}
	return &Session{
		Status:          status,
		Questions:       questions,
		Answers:         make(map[string]question.OptionKey),
		TimerMode:       mode,
		TimePerQuestion: timePerQuestion,
		TotalTime:       totalTime,
	}
}

// BeginQuestions exits the revision pass into running. The question list
// was already computed at construction; nothing else changes.
func (s *Session) BeginQuestions() {
	if s.Status == StatusRevision {
		s.Status = StatusRunning
	}
}

// SubmitAnswer records the chosen option for a question and updates the
// score. Unknown question IDs are ignored. Re-answering a question first
// reverts its previous score contribution, so the completed-session
// invariant score == 2·correct − 0.5·(answered − correct) always holds.
func (s *Session) SubmitAnswer(questionID string, option question.OptionKey) {
	if s.Status != StatusRunning {
		return
	}

	q, ok := s.find(questionID)
	if !ok {
		return
	}

	if prior, answered := s.Answers[questionID]; answered {
		s.Score -= points(prior == q.CorrectOption)
	}

	s.Answers[questionID] = option
	s.Score += points(option == q.CorrectOption)
}

// Next advances to the following question. It reports true when the
// session was already on the last question (or has none), in which case
// the caller is expected to finish the quiz.
func (s *Session) Next() (atEnd bool) {
	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
		return false
	}
	return true
}

// GoTo jumps straight to a question index. Indexes outside [0, len) are a
// caller error and are clamped rather than honored.
func (s *Session) GoTo(index int) {
	if index < 0 {
		index = 0
	}
	if max := len(s.Questions) - 1; index > max && max >= 0 {
		index = max
	}
	s.CurrentIndex = index
}

// Current returns the question at the cursor.
func (s *Session) Current() (question.Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Summary is the derived result of a finished session. Wrong counts only
// answered-but-incorrect questions; skips are excluded.
type Summary struct {
	Total    int
	Answered int
	Correct  int
	Wrong    int
	Accuracy int // rounded percentage of correct over total, 0 for empty pools
	Score    float64
}

// Finish computes the summary and moves the session to completed. An empty
// pool finishes with all-zero stats; that is legal, not an error.
func (s *Session) Finish() Summary {
	total := len(s.Questions)
	answered := len(s.Answers)

	correct := 0
	for _, q := range s.Questions {
		if s.Answers[q.ID] == q.CorrectOption {
			correct++
		}
	}

	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}

	s.Status = StatusCompleted

	return Summary{
		Total:    total,
		Answered: answered,
		Correct:  correct,
		Wrong:    answered - correct,
		Accuracy: accuracy,
		Score:    s.Score,
	}
}

func (s *Session) find(questionID string) (question.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return question.Question{}, false
}

func points(correct bool) float64 {
	if correct {
		return CorrectPoints
	}
	return -WrongPenalty
}
