// Package history persists per-user quiz results. Identity is a bare
// display name; there is no credential check by design.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/prepquiz/backend/internal/store"
)

// Entry is one immutable finished-session record. The list is ordered
// newest first and grows without bound.
type Entry struct {
	Date           string  `json:"date"` // RFC3339
	Subject        string  `json:"subject"`
	Chapter        string  `json:"chapter"`
	Type           string  `json:"type"`
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Accuracy       int     `json:"accuracy"`
	Correct        int     `json:"correct"`
	Wrong          int     `json:"wrong"`
}

// Recorder keeps the active user's history in memory and mirrors every
// change to durable storage under quiz_history_{username}.
type Recorder struct {
	kv      store.KV
	user    string
	entries []Entry
}

func NewRecorder(kv store.KV) *Recorder {
	return &Recorder{kv: kv}
}

func storageKey(username string) string {
	return "quiz_history_" + username
}

// Login loads username's persisted history and makes them the active
// user. Absent or malformed stored history degrades to an empty list.
func (r *Recorder) Login(username string) {
	r.user = username
	r.entries = nil

	raw, err := r.kv.Get(storageKey(username))
	if err != nil {
		return
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return
	}
	r.entries = entries
}

// Logout clears the active user and in-memory history. Durable storage is
// untouched.
func (r *Recorder) Logout() {
	r.user = ""
	r.entries = nil
}

// User returns the active display name, empty when logged out.
func (r *Recorder) User() string {
	return r.user
}

// Entries returns the active user's history, newest first.
func (r *Recorder) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Save prepends entry and persists the full updated list. Without an
// active user it is a no-op.
func (r *Recorder) Save(entry Entry) error {
	if r.user == "" {
		return nil
	}

	updated := append([]Entry{entry}, r.entries...)
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("history: encoding entries: %w", err)
	}
	if err := r.kv.Set(storageKey(r.user), string(data)); err != nil {
		return fmt.Errorf("history: persisting %s: %w", storageKey(r.user), err)
	}

	r.entries = updated
	return nil
}
