package domain

import "github.com/google/uuid"

// NewID generates a collision-resistant entity identifier.
// IDs are opaque to the rest of the system; callers must not parse them.
func NewID() string {
	return uuid.NewString()
}
