// Package selection builds the working question list for a quiz session
// from the static datasets and the current filters. Vocabulary pools are
// re-synthesized on every call so repeated sessions shuffle their options
// differently; that side effect is intentional, not an artifact.
package selection

import (
	"fmt"
	"math/rand"

	"github.com/prepquiz/backend/internal/attempt"
	"github.com/prepquiz/backend/internal/content"
	"github.com/prepquiz/backend/internal/domain/question"
	"github.com/prepquiz/backend/internal/synth"
)

// CountAll requests the full pool instead of a fixed sample size.
const CountAll = 0

// revisionChapter is the quantitative chapter that routes through the
// revision state before questions begin. Fact-subject selections always do.
const revisionChapter = "Percentage"

// Result is everything a session start needs: the pool, derived timing,
// revision routing and the study notes for the revision screen.
type Result struct {
	Questions       []question.Question
	TimePerQuestion int // seconds
	TotalTime       int // seconds, pool length × per-question time
	NeedsRevision   bool
	Notes           []content.TopicNotes
	AttemptKey      string
}

// Selector owns the loaded datasets and the attempt tracker that drives
// adaptive timing.
type Selector struct {
	lib     *content.Library
	tracker *attempt.Tracker
}

func New(lib *content.Library, tracker *attempt.Tracker) *Selector {
	return &Selector{lib: lib, tracker: tracker}
}

// Select produces the session pool for the given filters. count is the
// requested sample size; CountAll keeps the whole pool. Vocabulary and
// fact pools are always shuffled, the curated maths bank keeps its order
// unless sampled.
func (s *Selector) Select(f Filters, count int) Result {
	var r Result
	r.AttemptKey = f.AttemptKey()

	switch f.Subject {
	case SubjectEnglish:
		r.Questions = s.englishPool(f.Topic)
		r.TimePerQuestion = attempt.TimePerQuestion(false, 0)
	case SubjectGKGS:
		r.Questions = s.factPool(f)
		r.TimePerQuestion = attempt.TimePerQuestion(false, 0)
		r.NeedsRevision = true
		r.Notes = s.revisionNotes(f)
	default:
		r.Questions = s.mathsPool(f)
		prior := s.tracker.Attempts(r.AttemptKey)
		r.TimePerQuestion = attempt.TimePerQuestion(true, prior)
		r.NeedsRevision = f.Chapter == revisionChapter
	}

	if count > CountAll && count < len(r.Questions) {
		shuffleQuestions(r.Questions)
		r.Questions = r.Questions[:count]
	} else if f.Subject != SubjectMaths {
		// Generated pools carry source-data order, which is meaningless.
		shuffleQuestions(r.Questions)
	}

	r.TotalTime = len(r.Questions) * r.TimePerQuestion
	return r
}

func (s *Selector) mathsPool(f Filters) []question.Question {
	var out []question.Question
	for _, q := range s.lib.Maths {
		if f.Chapter != MatchAll && q.Chapter != f.Chapter {
			continue
		}
		if f.Type != MatchAll && q.Type != f.Type {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (s *Selector) englishPool(topic string) []question.Question {
	switch topic {
	case synth.TypeIdioms:
		return synth.IdiomQuestions(s.lib.Idioms)
	case synth.TypeOneWord:
		return synth.OneWordQuestions(s.lib.OneWords)
	case synth.TypeSynonyms, synth.TypeAntonyms:
		var out []question.Question
		for _, q := range synth.SynAntQuestions(s.lib.SynAnts) {
			if q.Type == topic {
				out = append(out, q)
			}
		}
		return out
	}
	return nil
}

// factPool flattens the selected fact topics into normalized questions.
// Records without a source id get a synthetic one, unique within the pool
// via a running counter.
func (s *Selector) factPool(f Filters) []question.Question {
	topics := s.selectedFactTopics(f)

	var out []question.Question
	counter := 0
	for topicIdx, topic := range topics {
		for qIdx, raw := range topic.Questions {
			q := question.Question{
				Chapter:       SubjectGKGS,
				Type:          topic.Topic,
				Text:          raw.Text,
				Options:       raw.Options.Canonical(),
				CorrectOption: question.OptionKey(upperLetter(raw.Answer)),
				Explanation:   raw.Explanation,
			}
			if raw.ID != "" {
				q.ID = string(raw.ID)
				q.Text = fmt.Sprintf("Q.%s. %s", raw.ID, raw.Text)
			} else {
				q.ID = fmt.Sprintf("gkgs-%d-%d-%d", topicIdx, qIdx, counter)
				counter++
			}
			out = append(out, q)
		}
	}
	return out
}

func (s *Selector) selectedFactTopics(f Filters) []content.FactTopic {
	source := s.lib.FactTopics(f.GKGSSubject)
	if f.wantsAllGKGSTopics() {
		return source
	}

	wanted := make(map[string]bool, len(f.GKGSTopics))
	for _, t := range f.GKGSTopics {
		wanted[t] = true
	}

	var out []content.FactTopic
	for _, topic := range source {
		if wanted[topic.Topic] {
			out = append(out, topic)
		}
	}
	return out
}

func (s *Selector) revisionNotes(f Filters) []content.TopicNotes {
	source := s.lib.Notes(f.GKGSSubject)
	if f.wantsAllGKGSTopics() {
		return source
	}

	wanted := make(map[string]bool, len(f.GKGSTopics))
	for _, t := range f.GKGSTopics {
		wanted[t] = true
	}

	var out []content.TopicNotes
	for _, n := range source {
		if wanted[n.Topic] {
			out = append(out, n)
		}
	}
	return out
}

func upperLetter(s string) string {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0] - 'a' + 'A')
	}
	return s
}

func shuffleQuestions(questions []question.Question) {
	rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
