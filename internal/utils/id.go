package utils

import "github.com/google/uuid"

// GenerateID returns a new unique identifier for a scan record.
func GenerateID() string {
	return uuid.NewString()
}
