package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// OptionKey is one of the four answer labels shown to the user.
type OptionKey string

const (
	OptionA OptionKey = "A"
	OptionB OptionKey = "B"
	OptionC OptionKey = "C"
	OptionD OptionKey = "D"
)

// Keys lists the option labels in display order.
var Keys = []OptionKey{OptionA, OptionB, OptionC, OptionD}

// Options maps the four labels to answer text.
type Options map[OptionKey]string

// Question is the normalized unit of assessment. Every pool builder,
// curated or synthesized, produces this shape.
type Question struct {
	ID            string    `json:"id"`
	Chapter       string    `json:"chapter"`
	Type          string    `json:"type"`
	Text          string    `json:"question"`
	Options       Options   `json:"options"`
	CorrectOption OptionKey `json:"correct_option"`
	Explanation   string    `json:"explanation,omitempty"`
}

// Validate checks the structural invariants: four populated, mutually
// distinct options and a correct label that resolves to one of them.
func (q Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id cannot be empty")
	}
	if len(q.Options) != len(Keys) {
		return fmt.Errorf("question %s: expected %d options, got %d", q.ID, len(Keys), len(q.Options))
	}
	seen := make(map[string]bool, len(Keys))
	for _, k := range Keys {
		text, ok := q.Options[k]
		if !ok || text == "" {
			return fmt.Errorf("question %s: option %s is empty", q.ID, k)
		}
		if seen[text] {
			return fmt.Errorf("question %s: duplicate option text %q", q.ID, text)
		}
		seen[text] = true
	}
	if _, ok := q.Options[q.CorrectOption]; !ok {
		return fmt.Errorf("question %s: correct option %q not present", q.ID, q.CorrectOption)
	}
	return nil
}

// RawOptions decodes the two shapes fact-subject source data stores
// options in: a plain four-element array, or an object keyed by letter
// (upper or lower case). Decoding happens once at ingestion; readers
// only ever see the canonical A–D mapping.
type RawOptions struct {
	values Options
}

func (r *RawOptions) UnmarshalJSON(data []byte) error {
	var asArray []string
	if err := json.Unmarshal(data, &asArray); err == nil {
		if len(asArray) != len(Keys) {
			return fmt.Errorf("options array has %d entries, want %d", len(asArray), len(Keys))
		}
		r.values = Options{}
		for i, k := range Keys {
			r.values[k] = asArray[i]
		}
		return nil
	}

	var asObject map[string]string
	if err := json.Unmarshal(data, &asObject); err != nil {
		return fmt.Errorf("options are neither an array nor a lettered object: %w", err)
	}
	r.values = Options{}
	for key, text := range asObject {
		k := OptionKey(strings.ToUpper(key))
		switch k {
		case OptionA, OptionB, OptionC, OptionD:
			r.values[k] = text
		default:
			return fmt.Errorf("unknown option label %q", key)
		}
	}
	if len(r.values) != len(Keys) {
		return fmt.Errorf("options object has %d labels, want %d", len(r.values), len(Keys))
	}
	return nil
}

// Canonical returns the normalized A–D mapping.
func (r RawOptions) Canonical() Options {
	out := make(Options, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
