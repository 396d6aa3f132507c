// simulation/simulation.go
//
// Scripted quiz runs used as a concurrency smoke harness: each script
// drives a full session (login, filters, start, answer, finish) against
// its own service instance, with the runs spread across a worker pool.
package simulation

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prepquiz/backend/internal/attempt"
	"github.com/prepquiz/backend/internal/content"
	"github.com/prepquiz/backend/internal/domain/question"
	"github.com/prepquiz/backend/internal/domain/quizsession"
	"github.com/prepquiz/backend/internal/history"
	"github.com/prepquiz/backend/internal/selection"
	"github.com/prepquiz/backend/internal/service"
	"github.com/prepquiz/backend/internal/store"
	"github.com/prepquiz/backend/internal/worker"
)

const workerCount = 3

// Script describes one simulated candidate: who they are, what they
// practice, and how well they answer. CorrectEvery n means every n-th
// question is answered correctly and the rest wrongly; 0 answers none.
type Script struct {
	Username     string
	Subject      string
	Chapter      string
	Type         string
	GKGSSubject  string
	Count        int
	CorrectEvery int
}

type Outcome struct {
	Username string
	Summary  quizsession.Summary
	History  []history.Entry
	Err      error
}

// Run executes every script concurrently and returns the outcomes in
// script order. Each candidate gets an isolated in-memory store, so
// runs cannot interfere with one another.
func Run(lib *content.Library, scripts []Script) []Outcome {
	pool := worker.NewPool[Outcome](workerCount, len(scripts))
	defer pool.Close()

	for i, sc := range scripts {
		sc := sc
		pool.Submit(fmt.Sprintf("%d", i), func() Outcome {
			return runScript(lib, sc)
		})
	}

	byID := make(map[string]Outcome, len(scripts))
	for range scripts {
		result := <-pool.Results()
		byID[result.JobID] = result.Output
	}

	outcomes := make([]Outcome, len(scripts))
	for i := range scripts {
		outcomes[i] = byID[fmt.Sprintf("%d", i)]
	}
	return outcomes
}

func runScript(lib *content.Library, sc Script) Outcome {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := store.NewMemory()
	tracker := attempt.NewTracker(kv)

	qs := service.NewQuizService(
		selection.New(lib, tracker),
		tracker,
		history.NewRecorder(kv),
		logger,
	)

	qs.Login(sc.Username)

	if sc.Subject != "" {
		qs.SetSubject(sc.Subject)
	}
	if sc.Chapter != "" {
		qs.SetChapter(sc.Chapter)
	}
	if sc.Type != "" {
		qs.SetType(sc.Type)
	}
	if sc.GKGSSubject != "" {
		qs.SetGKGSSubject(sc.GKGSSubject)
	}
	if sc.Count > 0 {
		qs.SetQuestionCount(sc.Count)
	}

	qs.Start()

	snap := qs.State()
	if snap.Status == quizsession.StatusRevision {
		qs.BeginQuestions()
		snap = qs.State()
	}

	for i, q := range snap.Questions {
		qs.SubmitAnswer(q.ID, chooseOption(q, i, sc.CorrectEvery))
		if err := qs.Next(); err != nil {
			return Outcome{Username: sc.Username, Err: err}
		}
	}
	if len(snap.Questions) == 0 {
		if err := qs.Finish(); err != nil {
			return Outcome{Username: sc.Username, Err: err}
		}
	}

	snap = qs.State()
	out := Outcome{Username: sc.Username, History: qs.History()}
	if snap.Summary != nil {
		out.Summary = *snap.Summary
	}
	return out
}

func chooseOption(q question.Question, index, correctEvery int) question.OptionKey {
	if correctEvery > 0 && index%correctEvery == 0 {
		return q.CorrectOption
	}
	for _, key := range question.Keys {
		if key != q.CorrectOption {
			return key
		}
	}
	return q.CorrectOption
}
