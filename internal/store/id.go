package store

import "github.com/google/uuid"

// NewID returns an identifier unique for the process lifetime, prefixed with
// the entity kind, e.g. NewID("session") -> "session-5f3a...".
func NewID(kind string) string {
	return kind + "-" + uuid.NewString()
}
