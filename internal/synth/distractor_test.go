package synth_test

import (
	"testing"

	"github.com/prepquiz/backend/internal/synth"
)

func TestPickDistractors_FullCount(t *testing.T) {
	candidates := []string{"a", "b", "c", "d", "e", "correct"}

	got := synth.PickDistractors("correct", candidates, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 distractors, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, d := range got {
		if d == "correct" {
			t.Error("distractor equals the correct answer")
		}
		if seen[d] {
			t.Errorf("duplicate distractor %q", d)
		}
		seen[d] = true
	}
}

func TestPickDistractors_FewerCandidatesThanCount(t *testing.T) {
	got := synth.PickDistractors("correct", []string{"a", "correct"}, 3)

	if len(got) != 1 {
		t.Fatalf("expected 1 distractor, got %d", len(got))
	}
	if got[0] != "a" {
		t.Errorf("expected %q, got %q", "a", got[0])
	}
}

func TestPickDistractors_DuplicateCandidates(t *testing.T) {
	// Repeats in the candidate pool must not produce repeated distractors.
	candidates := []string{"a", "a", "a", "b", "b", "correct", "correct"}

	got := synth.PickDistractors("correct", candidates, 3)

	if len(got) != 2 {
		t.Fatalf("expected 2 distinct distractors, got %v", got)
	}
	if got[0] == got[1] {
		t.Errorf("distractors not distinct: %v", got)
	}
}

func TestPickDistractors_NoCandidates(t *testing.T) {
	if got := synth.PickDistractors("correct", nil, 3); len(got) != 0 {
		t.Errorf("expected no distractors, got %v", got)
	}
}

func TestPickDistractors_SelectionVaries(t *testing.T) {
	candidates := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	first := synth.PickDistractors("correct", candidates, 3)
	for i := 0; i < 50; i++ {
		again := synth.PickDistractors("correct", candidates, 3)
		if first[0] != again[0] || first[1] != again[1] || first[2] != again[2] {
			return
		}
	}
	t.Error("expected selection to vary across calls")
}
