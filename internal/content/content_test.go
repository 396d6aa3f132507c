package content_test

import (
	"testing"

	"github.com/prepquiz/backend/internal/content"
	"github.com/prepquiz/backend/internal/domain/question"
)

func TestLoad_Testdata(t *testing.T) {
	lib, err := content.Load("testdata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lib.Idioms) != 3 {
		t.Errorf("expected 3 idioms, got %d", len(lib.Idioms))
	}
	if len(lib.Maths) != 3 {
		t.Errorf("expected 3 maths questions, got %d", len(lib.Maths))
	}
	if len(lib.Polity) != 2 {
		t.Errorf("expected 2 polity topics, got %d", len(lib.Polity))
	}

	// Missing files are empty datasets, not errors.
	if len(lib.StaticGK) != 0 || len(lib.SynAnts) != 0 {
		t.Error("expected absent datasets to stay empty")
	}
}

func TestLoad_NormalizesBothOptionShapes(t *testing.T) {
	lib, err := content.Load("testdata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	constitution := lib.Polity[0]
	fromArray := constitution.Questions[0].Options.Canonical()
	if fromArray[question.OptionB] != "B. R. Ambedkar" {
		t.Errorf("array options not normalized: %v", fromArray)
	}

	fromObject := constitution.Questions[1].Options.Canonical()
	if fromObject[question.OptionB] != "1949" {
		t.Errorf("lettered-object options not normalized: %v", fromObject)
	}
}

func TestMathsChaptersAndTypes(t *testing.T) {
	lib, err := content.Load("testdata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chapters := lib.MathsChapters()
	if len(chapters) != 3 || chapters[0] != "All" {
		t.Errorf("expected [All Percentage Ratio], got %v", chapters)
	}

	types := lib.MathsTypes()
	if len(types) != 3 || types[0] != "All" {
		t.Errorf("expected [All Basic Successive], got %v", types)
	}
}

func TestTopicsOf(t *testing.T) {
	lib, err := content.Load("testdata")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	topics := content.TopicsOf(lib.Polity)
	if len(topics) != 2 || topics[0] != "Constitution" || topics[1] != "Parliament" {
		t.Errorf("unexpected topics: %v", topics)
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	lib, err := content.Load("testdata/does-not-exist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lib.Idioms) != 0 {
		t.Error("expected empty library for missing directory")
	}
}
