package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string. Used for subscriber
// connection ids on the live-update channels.
func GenerateID() string {
	return uuid.New().String()
}
