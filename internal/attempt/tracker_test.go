package attempt_test

import (
	"testing"

	"github.com/prepquiz/backend/internal/attempt"
	"github.com/prepquiz/backend/internal/store"
)

func TestAttempts_DefaultsToZero(t *testing.T) {
	tracker := attempt.NewTracker(store.NewMemory())

	if got := tracker.Attempts("attempt-Percentage-All"); got != 0 {
		t.Errorf("expected 0 for absent counter, got %d", got)
	}
}

func TestAttempts_MalformedValueFallsBack(t *testing.T) {
	kv := store.NewMemory()
	kv.Set("attempt-Percentage-All", "not-a-number")
	tracker := attempt.NewTracker(kv)

	if got := tracker.Attempts("attempt-Percentage-All"); got != 0 {
		t.Errorf("expected 0 for malformed counter, got %d", got)
	}
}

func TestRecord_Increments(t *testing.T) {
	kv := store.NewMemory()
	tracker := attempt.NewTracker(kv)

	for i := 1; i <= 3; i++ {
		if err := tracker.Record("attempt-English-Idioms"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tracker.Attempts("attempt-English-Idioms"); got != i {
			t.Errorf("after %d records expected %d, got %d", i, i, got)
		}
	}

	raw, err := kv.Get("attempt-English-Idioms")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "3" {
		t.Errorf("expected counter persisted as decimal string, got %q", raw)
	}
}

func TestTimePerQuestion_AdaptiveSchedule(t *testing.T) {
	cases := []struct {
		attempts int
		want     int
	}{
		{0, 60},
		{1, 45},
		{2, 30},
		{7, 30},
	}
	for _, c := range cases {
		if got := attempt.TimePerQuestion(true, c.attempts); got != c.want {
			t.Errorf("TimePerQuestion(true, %d) = %d, want %d", c.attempts, got, c.want)
		}
	}
}

func TestTimePerQuestion_FlatForNonAdaptive(t *testing.T) {
	for _, attempts := range []int{0, 1, 5} {
		if got := attempt.TimePerQuestion(false, attempts); got != 30 {
			t.Errorf("TimePerQuestion(false, %d) = %d, want 30", attempts, got)
		}
	}
}

func TestKeys(t *testing.T) {
	if got := attempt.MathsKey("Percentage", "All"); got != "attempt-Percentage-All" {
		t.Errorf("unexpected maths key %q", got)
	}
	if got := attempt.EnglishKey("Idioms"); got != "attempt-English-Idioms" {
		t.Errorf("unexpected english key %q", got)
	}
	if got := attempt.GKGSKey("Polity"); got != "attempt-GKGS-Polity" {
		t.Errorf("unexpected gkgs key %q", got)
	}
}
