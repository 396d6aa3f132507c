package question_test

import (
	"encoding/json"
	"testing"

	"github.com/prepquiz/backend/internal/domain/question"
)

func validQuestion() question.Question {
	return question.Question{
		ID:      "Q-1",
		Chapter: "GK/GS",
		Type:    "Constitution",
		Text:    "Who presides over the Rajya Sabha?",
		Options: question.Options{
			question.OptionA: "The President",
			question.OptionB: "The Vice President",
			question.OptionC: "The Speaker",
			question.OptionD: "The Prime Minister",
		},
		CorrectOption: question.OptionB,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validQuestion().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DuplicateOption(t *testing.T) {
	q := validQuestion()
	q.Options[question.OptionD] = q.Options[question.OptionA]

	if err := q.Validate(); err == nil {
		t.Error("expected error for duplicate option text, got nil")
	}
}

func TestValidate_MissingOption(t *testing.T) {
	q := validQuestion()
	delete(q.Options, question.OptionC)

	if err := q.Validate(); err == nil {
		t.Error("expected error for missing option, got nil")
	}
}

func TestValidate_CorrectOptionAbsent(t *testing.T) {
	q := validQuestion()
	q.CorrectOption = question.OptionKey("E")

	if err := q.Validate(); err == nil {
		t.Error("expected error for unknown correct option, got nil")
	}
}

func TestRawOptions_Array(t *testing.T) {
	var raw question.RawOptions
	if err := json.Unmarshal([]byte(`["one","two","three","four"]`), &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := raw.Canonical()
	if opts[question.OptionA] != "one" || opts[question.OptionD] != "four" {
		t.Errorf("unexpected mapping: %v", opts)
	}
}

func TestRawOptions_LowercaseObject(t *testing.T) {
	var raw question.RawOptions
	if err := json.Unmarshal([]byte(`{"a":"one","b":"two","c":"three","d":"four"}`), &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := raw.Canonical()
	if opts[question.OptionB] != "two" {
		t.Errorf("expected lowercase keys to normalize, got %v", opts)
	}
}

func TestRawOptions_ShortArray(t *testing.T) {
	var raw question.RawOptions
	if err := json.Unmarshal([]byte(`["one","two"]`), &raw); err == nil {
		t.Error("expected error for short options array, got nil")
	}
}

func TestRawOptions_UnknownLabel(t *testing.T) {
	var raw question.RawOptions
	if err := json.Unmarshal([]byte(`{"a":"one","b":"two","c":"three","e":"four"}`), &raw); err == nil {
		t.Error("expected error for unknown option label, got nil")
	}
}
