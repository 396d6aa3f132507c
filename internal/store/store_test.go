package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/prepquiz/backend/internal/store"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	kv := store.NewMemory()

	_, err := kv.Get("attempt-All-All")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	kv := store.NewMemory()

	if err := kv.Set("attempt-All-All", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := kv.Set("attempt-All-All", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := kv.Get("attempt-All-All")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "2" {
		t.Errorf("expected %q, got %q", "2", v)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quiz.db")

	kv, err := store.NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer kv.Close()

	if _, err := kv.Get("quiz_history_arun"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for fresh database, got %v", err)
	}

	if err := kv.Set("quiz_history_arun", `[]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := kv.Set("quiz_history_arun", `[{"score":1.5}]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := kv.Get("quiz_history_arun")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != `[{"score":1.5}]` {
		t.Errorf("expected overwritten value, got %q", v)
	}
}
