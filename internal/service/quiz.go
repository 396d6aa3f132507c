// internal/service/quiz.go
package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/prepquiz/backend/internal/attempt"
	"github.com/prepquiz/backend/internal/content"
	"github.com/prepquiz/backend/internal/domain/question"
	"github.com/prepquiz/backend/internal/domain/quizsession"
	"github.com/prepquiz/backend/internal/history"
	"github.com/prepquiz/backend/internal/id"
	"github.com/prepquiz/backend/internal/selection"
	"github.com/prepquiz/backend/internal/timer"
)

// QuizService is the session controller. It owns the live session, the
// countdown, the filters and the user, and serializes every operation
// behind one mutex: user actions and timer callbacks enter through the
// same lock, so transitions never interleave.
type QuizService struct {
	selector *selection.Selector
	tracker  *attempt.Tracker
	recorder *history.Recorder
	logger   *slog.Logger

	mu            sync.Mutex
	filters       selection.Filters
	timerMode     quizsession.TimerMode
	questionCount int

	sessionID string
	session   *quizsession.Session
	notes     []content.TopicNotes
	summary   *quizsession.Summary

	countdown  *timer.Handle
	generation uint64 // invalidates stale timer callbacks
	remaining  int    // seconds left on the live countdown

	tickInterval time.Duration
}

func NewQuizService(sel *selection.Selector, tracker *attempt.Tracker, recorder *history.Recorder, logger *slog.Logger) *QuizService {
	return &QuizService{
		selector:      sel,
		tracker:       tracker,
		recorder:      recorder,
		logger:        logger,
		filters:       selection.DefaultFilters(),
		timerMode:     quizsession.TimerPerQuestion,
		questionCount: selection.CountAll,
		tickInterval:  time.Second,
	}
}

// SetTickInterval shortens the countdown interval. Tests use this; the
// server keeps the one-second default.
func (qs *QuizService) SetTickInterval(d time.Duration) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.tickInterval = d
}

// ── User ────────────────────────────────────────────────────────────────────

func (qs *QuizService) Login(username string) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.recorder.Login(username)
	qs.logger.Info("user logged in", "user", username)
}

// Logout clears the active user and abandons any live session.
func (qs *QuizService) Logout() {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.recorder.Logout()
	qs.resetLocked()
}

func (qs *QuizService) History() []history.Entry {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.recorder.Entries()
}

// ── Settings ────────────────────────────────────────────────────────────────

func (qs *QuizService) SetSubject(v string) { qs.withFilters(func(f *selection.Filters) { f.SetSubject(v) }) }
func (qs *QuizService) SetChapter(v string) { qs.withFilters(func(f *selection.Filters) { f.SetChapter(v) }) }
func (qs *QuizService) SetType(v string)    { qs.withFilters(func(f *selection.Filters) { f.SetType(v) }) }
func (qs *QuizService) SetTopic(v string)   { qs.withFilters(func(f *selection.Filters) { f.SetTopic(v) }) }
func (qs *QuizService) SetGKGSSubject(v string) {
	qs.withFilters(func(f *selection.Filters) { f.SetGKGSSubject(v) })
}
func (qs *QuizService) SetGKGSTopics(v []string) {
	qs.withFilters(func(f *selection.Filters) { f.SetGKGSTopics(v) })
}

func (qs *QuizService) withFilters(apply func(*selection.Filters)) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	apply(&qs.filters)
}

func (qs *QuizService) SetTimerMode(mode quizsession.TimerMode) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.timerMode = mode
}

// SetQuestionCount sets the sample size; selection.CountAll keeps the
// whole pool.
func (qs *QuizService) SetQuestionCount(count int) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.questionCount = count
}

func (qs *QuizService) Catalog() selection.Catalog {
	return qs.selector.Catalog()
}

// ── Quiz lifecycle ──────────────────────────────────────────────────────────

// Start builds a fresh session from the current filters. Vocabulary and
// fact pools are re-synthesized on every call, so option order differs
// per attempt. The session opens in revision or running per selection.
func (qs *QuizService) Start() {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	result := qs.selector.Select(qs.filters, qs.questionCount)

	mode := qs.timerMode
	if qs.filters.Subject != selection.SubjectMaths {
		// Generated subjects always run against the question clock.
		mode = quizsession.TimerPerQuestion
	}

	qs.sessionID = id.GenerateID()
	qs.session = quizsession.New(result.Questions, mode, result.TimePerQuestion, result.TotalTime, result.NeedsRevision)
	qs.notes = result.Notes
	qs.summary = nil

	qs.stopCountdownLocked()
	if qs.session.Status == quizsession.StatusRunning {
		qs.startCountdownLocked()
	}

	qs.logger.Info("quiz started",
		"session_id", qs.sessionID,
		"subject", qs.filters.Subject,
		"questions", len(result.Questions),
		"time_per_question", result.TimePerQuestion,
		"status", qs.session.Status,
	)
}

// BeginQuestions leaves the revision pass and starts the clock.
func (qs *QuizService) BeginQuestions() {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil {
		return
	}
	qs.session.BeginQuestions()
	if qs.session.Status == quizsession.StatusRunning {
		qs.startCountdownLocked()
	}
}

func (qs *QuizService) SubmitAnswer(questionID string, option question.OptionKey) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil {
		return
	}
	qs.session.SubmitAnswer(questionID, option)
}

// Next advances the cursor, finishing the quiz when it was already on the
// last question. In per-question mode the countdown restarts for the new
// question.
func (qs *QuizService) Next() error {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	return qs.nextLocked()
}

func (qs *QuizService) nextLocked() error {
	if qs.session == nil || qs.session.Status != quizsession.StatusRunning {
		return nil
	}
	if qs.session.Next() {
		return qs.finishLocked()
	}
	if qs.session.TimerMode == quizsession.TimerPerQuestion {
		qs.startCountdownLocked()
	}
	return nil
}

// GoTo jumps to a question. The per-question clock restarts: navigation
// gives the newly shown question its full time.
func (qs *QuizService) GoTo(index int) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil || qs.session.Status != quizsession.StatusRunning {
		return
	}
	qs.session.GoTo(index)
	if qs.session.TimerMode == quizsession.TimerPerQuestion {
		qs.startCountdownLocked()
	}
}

func (qs *QuizService) Finish() error {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.session == nil || qs.session.Status == quizsession.StatusCompleted {
		return nil
	}
	return qs.finishLocked()
}

// finishLocked settles the session: summary, attempt counter, history.
// The attempt counter is recorded after scoring, exactly once.
func (qs *QuizService) finishLocked() error {
	qs.stopCountdownLocked()

	sum := qs.session.Finish()
	qs.summary = &sum

	key := qs.filters.AttemptKey()
	if err := qs.tracker.Record(key); err != nil {
		return err
	}

	entry := history.Entry{
		Date:           time.Now().UTC().Format(time.RFC3339),
		Subject:        qs.filters.Subject,
		Chapter:        qs.filters.ChapterLabel(),
		Type:           qs.filters.TypeLabel(),
		Score:          sum.Score,
		TotalQuestions: sum.Total,
		Accuracy:       sum.Accuracy,
		Correct:        sum.Correct,
		Wrong:          sum.Wrong,
	}
	if err := qs.recorder.Save(entry); err != nil {
		return err
	}

	qs.logger.Info("quiz finished",
		"subject", entry.Subject,
		"score", entry.Score,
		"accuracy", entry.Accuracy,
		"attempt_key", key,
	)
	return nil
}

// Reset abandons the session and returns to idle. Filters survive so the
// user can restart the same selection.
func (qs *QuizService) Reset() {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	qs.resetLocked()
}

func (qs *QuizService) resetLocked() {
	qs.stopCountdownLocked()
	qs.sessionID = ""
	qs.session = nil
	qs.notes = nil
	qs.summary = nil
}

// ── Countdown ───────────────────────────────────────────────────────────────

// startCountdownLocked arms the clock for the current question (or the
// whole session in overall mode). Bumping the generation first makes any
// previously scheduled callback a no-op.
func (qs *QuizService) startCountdownLocked() {
	qs.stopCountdownLocked()

	ticks := qs.session.TimePerQuestion
	if qs.session.TimerMode == quizsession.TimerOverall {
		ticks = qs.session.TotalTime
	}
	if ticks <= 0 {
		return
	}
	qs.remaining = ticks

	gen := qs.generation
	qs.countdown = timer.Schedule(qs.tickInterval, ticks,
		func(remaining int) { qs.onTick(gen, remaining) },
		func() { qs.onTimeout(gen) },
	)
}

func (qs *QuizService) stopCountdownLocked() {
	qs.generation++
	qs.remaining = 0
	if qs.countdown != nil {
		qs.countdown.Stop()
		qs.countdown = nil
	}
}

func (qs *QuizService) onTick(gen uint64, remaining int) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if gen != qs.generation {
		return
	}
	qs.remaining = remaining
}

// onTimeout forces the next question in per-question mode, or finishes
// the quiz in overall mode. A timeout from a stale generation is ignored:
// the session it was armed for no longer exists.
func (qs *QuizService) onTimeout(gen uint64) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if gen != qs.generation {
		return
	}
	if qs.session == nil || qs.session.Status != quizsession.StatusRunning {
		return
	}

	var err error
	if qs.session.TimerMode == quizsession.TimerPerQuestion {
		err = qs.nextLocked()
	} else {
		err = qs.finishLocked()
	}
	if err != nil {
		qs.logger.Error("timeout transition failed", "error", err)
	}
}

// ── State ───────────────────────────────────────────────────────────────────

// Snapshot is the full externally visible state, queryable at any time.
type Snapshot struct {
	User          string                           `json:"user,omitempty"`
	SessionID     string                           `json:"session_id,omitempty"`
	Filters       selection.Filters                `json:"filters"`
	TimerMode     quizsession.TimerMode            `json:"timer_mode"`
	QuestionCount int                              `json:"question_count"`
	Status        quizsession.Status               `json:"status"`
	Questions     []question.Question              `json:"questions,omitempty"`
	CurrentIndex  int                              `json:"current_index"`
	Answers       map[string]question.OptionKey    `json:"answers,omitempty"`
	Score         float64                          `json:"score"`
	TimePerQ      int                              `json:"time_per_question"`
	TotalTime     int                              `json:"total_time"`
	Remaining     int                              `json:"remaining"`
	Notes         []content.TopicNotes             `json:"notes,omitempty"`
	Summary       *quizsession.Summary             `json:"summary,omitempty"`
}

func (qs *QuizService) State() Snapshot {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	snap := Snapshot{
		User:          qs.recorder.User(),
		SessionID:     qs.sessionID,
		Filters:       qs.filters,
		TimerMode:     qs.timerMode,
		QuestionCount: qs.questionCount,
		Status:        quizsession.StatusIdle,
		Remaining:     qs.remaining,
	}

	if qs.session != nil {
		snap.Status = qs.session.Status
		snap.Questions = qs.session.Questions
		snap.CurrentIndex = qs.session.CurrentIndex
		snap.Score = qs.session.Score
		snap.TimerMode = qs.session.TimerMode
		snap.TimePerQ = qs.session.TimePerQuestion
		snap.TotalTime = qs.session.TotalTime
		snap.Notes = qs.notes

		snap.Answers = make(map[string]question.OptionKey, len(qs.session.Answers))
		for k, v := range qs.session.Answers {
			snap.Answers[k] = v
		}
	}

	if qs.summary != nil {
		sum := *qs.summary
		snap.Summary = &sum
	}

	return snap
}
