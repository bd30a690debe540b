package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a new game
func GenerateGameID() string {
	return uuid.New().String()
}
