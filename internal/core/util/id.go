package util

import (
	"github.com/google/uuid"
)

// GenerateID generates a unique identifier for new records
func GenerateID() string {
	return uuid.NewString()
}
