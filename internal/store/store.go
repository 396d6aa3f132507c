package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// KV is the durable key-value port the quiz engine persists through.
// Keys are deterministic strings (attempt counters, per-user history);
// values are strings (decimal counters, JSON arrays).
type KV interface {
	// Get returns the value for key, or ErrNotFound when absent.
	Get(key string) (string, error)
	// Set writes value under key, overwriting any previous value.
	Set(key, value string) error
}
