// Package content loads the static subject datasets the quiz draws from.
// Datasets are opaque, pre-validated inputs: the loader decodes JSON and
// nothing else. Schema violations surface as decode errors at startup.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prepquiz/backend/internal/domain/question"
)

// Idiom is one vocabulary record for idiom synthesis.
type Idiom struct {
	Idiom   string `json:"idiom"`
	Meaning string `json:"meaning"`
	Hindi   string `json:"hindi"`
}

// OneWord is one lexical-substitution record. The one_word field may
// carry a parenthetical Hindi gloss that synthesis strips.
type OneWord struct {
	Phrase string `json:"phrases"`
	Word   string `json:"one_word"`
	Hindi  string `json:"hindi"`
}

// SynAnt is one synonym/antonym record. Synonyms and antonyms are
// comma-separated lists; either may be empty.
type SynAnt struct {
	Word     string `json:"word"`
	Synonyms string `json:"synonyms"`
	Antonyms string `json:"antonyms"`
	Hindi    string `json:"hindi"`
}

// FactQuestion is one curated GK/GS record. IDs are optional in the
// source data; options arrive in either raw shape (see question.RawOptions).
type FactQuestion struct {
	ID          json.Number         `json:"id"`
	Text        string              `json:"question"`
	Options     question.RawOptions `json:"options"`
	Answer      string              `json:"answer"`
	Explanation string              `json:"explanation"`
}

// FactTopic groups curated fact questions under one topic heading.
type FactTopic struct {
	Topic     string         `json:"topic"`
	Questions []FactQuestion `json:"questions"`
}

// TopicNotes holds the revision material shown before a quiz starts.
type TopicNotes struct {
	Topic string   `json:"topic"`
	Notes []string `json:"notes"`
}

// Library is the full set of loaded datasets.
type Library struct {
	Maths         []question.Question
	Idioms        []Idiom
	OneWords      []OneWord
	SynAnts       []SynAnt
	Polity        []FactTopic
	StaticGK      []FactTopic
	PolityNotes   []TopicNotes
	StaticGKNotes []TopicNotes
}

// Files the loader expects inside the content directory.
const (
	mathsFile         = "maths.json"
	idiomsFile        = "idioms.json"
	oneWordsFile      = "one_word_subs.json"
	synAntsFile       = "syn_ant.json"
	polityFile        = "polity.json"
	staticGKFile      = "static_gk.json"
	polityNotesFile   = "polity_notes.json"
	staticGKNotesFile = "static_gk_notes.json"
)

// Load reads every dataset from dir. Missing files are treated as empty
// datasets so a deployment can ship a subset of subjects.
func Load(dir string) (*Library, error) {
	lib := &Library{}

	if err := loadFile(dir, mathsFile, &lib.Maths); err != nil {
		return nil, err
	}
	if err := loadFile(dir, idiomsFile, &lib.Idioms); err != nil {
		return nil, err
	}
	if err := loadFile(dir, oneWordsFile, &lib.OneWords); err != nil {
		return nil, err
	}
	if err := loadFile(dir, synAntsFile, &lib.SynAnts); err != nil {
		return nil, err
	}
	if err := loadFile(dir, polityFile, &lib.Polity); err != nil {
		return nil, err
	}
	if err := loadFile(dir, staticGKFile, &lib.StaticGK); err != nil {
		return nil, err
	}
	if err := loadFile(dir, polityNotesFile, &lib.PolityNotes); err != nil {
		return nil, err
	}
	if err := loadFile(dir, staticGKNotesFile, &lib.StaticGKNotes); err != nil {
		return nil, err
	}

	return lib, nil
}

func loadFile(dir, name string, v any) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("content: reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("content: decoding %s: %w", name, err)
	}
	return nil
}

// FactTopics returns the curated dataset for a GK/GS sub-subject.
func (l *Library) FactTopics(subject string) []FactTopic {
	if subject == "Polity" {
		return l.Polity
	}
	return l.StaticGK
}

// Notes returns the revision notes for a GK/GS sub-subject.
func (l *Library) Notes(subject string) []TopicNotes {
	if subject == "Polity" {
		return l.PolityNotes
	}
	return l.StaticGKNotes
}

// MathsChapters lists the distinct chapters of the curated maths bank,
// prefixed by the match-all sentinel.
func (l *Library) MathsChapters() []string {
	return l.mathsLabels(func(q question.Question) string { return q.Chapter })
}

// MathsTypes lists the distinct question types of the curated maths bank,
// prefixed by the match-all sentinel.
func (l *Library) MathsTypes() []string {
	return l.mathsLabels(func(q question.Question) string { return q.Type })
}

func (l *Library) mathsLabels(f func(question.Question) string) []string {
	labels := []string{"All"}
	seen := map[string]bool{}
	for _, q := range l.Maths {
		v := f(q)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		labels = append(labels, v)
	}
	return labels
}

// TopicsOf lists the topic headings of a fact dataset.
func TopicsOf(topics []FactTopic) []string {
	out := make([]string, len(topics))
	for i, t := range topics {
		out[i] = t.Topic
	}
	return out
}
