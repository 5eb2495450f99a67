package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	gameIDBytes    = 4
	sessionIDBytes = 16
)

// GenerateGameID - short random id shown to players.
func GenerateGameID() (string, error) {
	return randomHex(gameIDBytes)
}

func GenerateNewSessionID() (string, error) {
	return randomHex(sessionIDBytes)
}

func randomHex(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
