// Package attempt tracks how often a filter combination has been quizzed
// and derives the adaptive per-question time limit from that count.
package attempt

import (
	"fmt"
	"strconv"

	"github.com/prepquiz/backend/internal/store"
)

// Tiered per-question schedule for the adaptive (quantitative) subject.
// Other subjects always get the flat time.
const (
	FirstAttemptSeconds  = 60
	SecondAttemptSeconds = 45
	LaterAttemptSeconds  = 30
	FlatSeconds          = 30
)

// Storage key builders. Counters are scoped per device, not per user.
func MathsKey(chapter, qtype string) string { return "attempt-" + chapter + "-" + qtype }
func EnglishKey(topic string) string        { return "attempt-English-" + topic }
func GKGSKey(subject string) string         { return "attempt-GKGS-" + subject }

// Tracker reads and writes persisted attempt counters.
type Tracker struct {
	kv store.KV
}

func NewTracker(kv store.KV) *Tracker {
	return &Tracker{kv: kv}
}

// Attempts returns the persisted counter for key. An absent or malformed
// value counts as zero prior attempts.
func (t *Tracker) Attempts(key string) int {
	raw, err := t.kv.Get(key)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Record increments and persists the counter for key. Called exactly once
// per completed session, after scoring is finalized.
func (t *Tracker) Record(key string) error {
	n := t.Attempts(key)
	if err := t.kv.Set(key, strconv.Itoa(n+1)); err != nil {
		return fmt.Errorf("attempt: persisting counter %s: %w", key, err)
	}
	return nil
}

// TimePerQuestion derives the per-question limit in seconds. Only the
// adaptive subject shortens with history; everything else is flat.
func TimePerQuestion(adaptive bool, attempts int) int {
	if !adaptive {
		return FlatSeconds
	}
	switch {
	case attempts == 0:
		return FirstAttemptSeconds
	case attempts == 1:
		return SecondAttemptSeconds
	default:
		return LaterAttemptSeconds
	}
}
