package id

import (
	"crypto/rand"
	"fmt"
)

// GenerateID creates a unique 16-character alphanumeric ID.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}

// Synthetic builds a deterministic ID for generated questions,
// e.g. Synthetic("IDIOM", 3) -> "IDIOM-3". Pool builders rely on the
// prefix+index scheme to keep IDs unique within one pool.
func Synthetic(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index)
}
