package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDs(t *testing.T) {
	gameID, err := GenerateGameID()
	require.NoError(t, err)
	assert.Len(t, gameID, 8)

	sessionID, err := GenerateNewSessionID()
	require.NoError(t, err)
	assert.Len(t, sessionID, 32)

	other, err := GenerateNewSessionID()
	require.NoError(t, err)
	assert.NotEqual(t, sessionID, other)
}
