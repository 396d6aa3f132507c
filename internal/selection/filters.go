package selection

import (
	"strings"

	"github.com/prepquiz/backend/internal/attempt"
	"github.com/prepquiz/backend/internal/synth"
)

// Top-level subjects.
const (
	SubjectMaths   = "Maths"
	SubjectEnglish = "English"
	SubjectGKGS    = "GK/GS"
)

// GK/GS sub-subjects.
const (
	GKGSStaticGK = "Static GK"
	GKGSPolity   = "Polity"
)

// MatchAll is the sentinel meaning "no filtering" for chapter, type and
// GK/GS topic selections.
const MatchAll = "All"

// Filters is the current subject-selection state. Sub-selectors reset to
// their defaults whenever a higher-level selector changes, so any state
// reachable through the setters is a valid combination.
type Filters struct {
	Subject     string   `json:"subject"`
	Chapter     string   `json:"chapter"`      // Maths
	Type        string   `json:"type"`         // Maths
	Topic       string   `json:"topic"`        // English
	GKGSSubject string   `json:"gkgs_subject"` // GK/GS
	GKGSTopics  []string `json:"gkgs_topics"`  // GK/GS, empty means all
}

func DefaultFilters() Filters {
	return Filters{
		Subject:     SubjectMaths,
		Chapter:     MatchAll,
		Type:        MatchAll,
		Topic:       synth.TypeIdioms,
		GKGSSubject: GKGSStaticGK,
	}
}

// SetSubject switches the top-level subject and resets every dependent
// sub-selector.
func (f *Filters) SetSubject(subject string) {
	f.Subject = subject
	f.Chapter = MatchAll
	f.Type = MatchAll
	if subject == SubjectGKGS {
		f.GKGSSubject = GKGSStaticGK
		f.GKGSTopics = nil
	} else {
		f.Topic = synth.TypeIdioms
	}
}

// SetChapter picks a Maths chapter; the type filter resets to match-all.
func (f *Filters) SetChapter(chapter string) {
	f.Chapter = chapter
	f.Type = MatchAll
}

func (f *Filters) SetType(qtype string) {
	f.Type = qtype
}

func (f *Filters) SetTopic(topic string) {
	f.Topic = topic
}

// SetGKGSSubject picks the fact sub-subject; the topic set resets to empty
// (meaning all topics).
func (f *Filters) SetGKGSSubject(subject string) {
	f.GKGSSubject = subject
	f.GKGSTopics = nil
}

func (f *Filters) SetGKGSTopics(topics []string) {
	f.GKGSTopics = topics
}

// AttemptKey is the storage key the attempt counter for this selection
// lives under.
func (f Filters) AttemptKey() string {
	switch f.Subject {
	case SubjectEnglish:
		return attempt.EnglishKey(f.Topic)
	case SubjectGKGS:
		return attempt.GKGSKey(f.GKGSSubject)
	default:
		return attempt.MathsKey(f.Chapter, f.Type)
	}
}

// ChapterLabel is the chapter-level description recorded in history.
func (f Filters) ChapterLabel() string {
	switch f.Subject {
	case SubjectEnglish:
		return f.Topic
	case SubjectGKGS:
		return f.GKGSSubject
	default:
		return f.Chapter
	}
}

// TypeLabel is the type-level description recorded in history.
func (f Filters) TypeLabel() string {
	switch f.Subject {
	case SubjectEnglish:
		return "N/A"
	case SubjectGKGS:
		if len(f.GKGSTopics) == 0 {
			return MatchAll
		}
		return strings.Join(f.GKGSTopics, ", ")
	default:
		return f.Type
	}
}

// wantsAllGKGSTopics reports whether the topic set selects every topic:
// empty, or containing the match-all sentinel.
func (f Filters) wantsAllGKGSTopics() bool {
	if len(f.GKGSTopics) == 0 {
		return true
	}
	for _, t := range f.GKGSTopics {
		if t == MatchAll {
			return true
		}
	}
	return false
}
