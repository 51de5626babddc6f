package utils

import "github.com/google/uuid"

// GenerateUUIDv7 returns a time-ordered UUID for primary keys, falling back
// to v4 in the unlikely case the clock source fails.
func GenerateUUIDv7() uuid.UUID {
	if id, err := uuid.NewV7(); err == nil {
		return id
	}
	return uuid.New()
}
