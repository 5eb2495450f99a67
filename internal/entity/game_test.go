package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("Human opens by default", func(t *testing.T) {
		// When: creating a game
		game := NewGame("123", false)

		// Then: the board is empty and it is B's turn
		expectedGame := &Game{
			ID:     "123",
			Status: StatusOngoing,
			Turn:   MarkB,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Bot opens when asked", func(t *testing.T) {
		// When: creating a game where the bot opens
		game := NewGame("123", true)

		// Then: it is A's turn
		assert.Equal(t, MarkA, game.Turn)
		assert.True(t, game.IsBotTurn())
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := NewGame("123", true)
	game.Board.Place(0, PlayerA)
	game.Status = StatusFinished
	game.Winner = MarkA
	game.WinLine = []int{0, 1, 2}
	game.Turn = ""

	// When: resetting it
	game.Reset()

	// Then: it starts over with the same id and opener
	assert.Equal(t, NewGame("123", true), game)
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}
