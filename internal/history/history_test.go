package history_test

import (
	"encoding/json"
	"testing"

	"github.com/prepquiz/backend/internal/history"
	"github.com/prepquiz/backend/internal/store"
)

func entry(score float64) history.Entry {
	return history.Entry{
		Date:           "2025-06-01T10:00:00Z",
		Subject:        "Maths",
		Chapter:        "Percentage",
		Type:           "All",
		Score:          score,
		TotalQuestions: 3,
		Accuracy:       33,
		Correct:        1,
		Wrong:          1,
	}
}

func TestLogin_FreshUserHasEmptyHistory(t *testing.T) {
	r := history.NewRecorder(store.NewMemory())

	r.Login("asha")

	if r.User() != "asha" {
		t.Errorf("expected active user asha, got %q", r.User())
	}
	if len(r.Entries()) != 0 {
		t.Errorf("expected empty history, got %d entries", len(r.Entries()))
	}
}

func TestSave_PrependsAndPersists(t *testing.T) {
	kv := store.NewMemory()
	r := history.NewRecorder(kv)
	r.Login("asha")

	if err := r.Save(entry(1.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Save(entry(4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 4 {
		t.Errorf("expected newest entry first, got score %v", entries[0].Score)
	}

	raw, err := kv.Get("quiz_history_asha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var persisted []history.Entry
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		t.Fatalf("persisted history is not valid JSON: %v", err)
	}
	if len(persisted) != 2 || persisted[0].Score != 4 {
		t.Errorf("persisted list out of sync: %+v", persisted)
	}
}

func TestSave_NoActiveUserIsNoop(t *testing.T) {
	kv := store.NewMemory()
	r := history.NewRecorder(kv)

	if err := r.Save(entry(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := kv.Get("quiz_history_"); err == nil {
		t.Error("expected nothing persisted without an active user")
	}
}

func TestLogout_KeepsDurableStorage(t *testing.T) {
	kv := store.NewMemory()
	r := history.NewRecorder(kv)
	r.Login("asha")
	r.Save(entry(1.5))

	r.Logout()

	if r.User() != "" || len(r.Entries()) != 0 {
		t.Error("expected in-memory state cleared on logout")
	}

	r.Login("asha")
	if len(r.Entries()) != 1 {
		t.Errorf("expected history reloaded after re-login, got %d", len(r.Entries()))
	}
}

func TestLogin_MalformedHistoryFallsBack(t *testing.T) {
	kv := store.NewMemory()
	kv.Set("quiz_history_asha", "{not json")
	r := history.NewRecorder(kv)

	r.Login("asha")

	if len(r.Entries()) != 0 {
		t.Errorf("expected malformed history to read as empty, got %d", len(r.Entries()))
	}
}

func TestHistories_IsolatedPerUser(t *testing.T) {
	kv := store.NewMemory()
	r := history.NewRecorder(kv)

	r.Login("asha")
	r.Save(entry(1.5))
	r.Login("vikram")

	if len(r.Entries()) != 0 {
		t.Errorf("expected vikram's history to be empty, got %d", len(r.Entries()))
	}
}
