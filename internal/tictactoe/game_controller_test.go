package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game where the human opens
		game := entity.NewGame("123", false)

		// When: player B makes a turn
		err := MakeTurn(game, entity.PlayerB, 4)
		require.NoError(t, err)

		// Then: the game state should reflect the turn and queue change
		expectedGame := &entity.Game{
			ID:     "123",
			Board:  entity.Board{e, e, e, e, b, e, e, e, e},
			Turn:   entity.MarkA,
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where B took the center
		game := entity.NewGame("123", false)
		require.NoError(t, MakeTurn(game, entity.PlayerB, 4))

		// When: player A tries to make a move to the same square
		err := MakeTurn(game, entity.PlayerA, 4)

		// Then: an error ErrCellOccupied must be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state remains unchanged
		expectedGame := &entity.Game{
			ID:     "123",
			Board:  entity.Board{e, e, e, e, b, e, e, e, e},
			Turn:   entity.MarkA,
			Status: entity.StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where the human opens
		game := entity.NewGame("123", false)

		// When: player A tries to make a move when it is player B's turn
		err := MakeTurn(game, entity.PlayerA, 1)

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", false)

		// When: an invalid cell index is passed (greater than the range)
		err := MakeTurn(game, entity.PlayerB, 20)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGame("123", false)

		// When: negative cell index is transmitted
		err := MakeTurn(game, entity.PlayerB, -1)

		// Then: an error ErrInvalidCell must be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: B has two in the left column
		game := entity.NewGame("123", false)
		game.Board = entity.Board{
			b, a, e,
			b, a, e,
			e, e, e,
		}

		// When: B completes the column
		err := MakeTurn(game, entity.PlayerB, 6)
		require.NoError(t, err)

		// Then: the game is finished with B as the winner
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.MarkB, game.Winner)
		assert.Equal(t, []int{0, 3, 6}, game.WinLine)
		assert.Empty(t, game.Turn)
	})

	t.Run("Last move without a line is a tie", func(t *testing.T) {
		// Given: one cell left and no line to complete
		game := entity.NewGame("123", false)
		game.Board = entity.Board{
			b, a, b,
			b, a, a,
			a, b, e,
		}

		// When: B fills the last cell
		err := MakeTurn(game, entity.PlayerB, 8)
		require.NoError(t, err)

		// Then: the game is a tie
		assert.Equal(t, entity.StatusFinished, game.Status)
		assert.Equal(t, entity.PlayerTie, game.Winner)
		assert.Nil(t, game.WinLine)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where player A has already won
		game := &entity.Game{
			Board:  entity.Board{a, a, a, e, b, e, e, b, e},
			Status: entity.StatusFinished,
			Winner: entity.MarkA,
		}

		// When: player B tries to make a move after the game is over
		err := MakeTurn(game, entity.PlayerB, 3)

		// Then: an error ErrGameFinished should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Unknown status is refused", func(t *testing.T) {
		// Given: a game with a corrupted status
		game := entity.NewGame("123", false)
		game.Status = "paused"

		// When: player B tries to move
		err := MakeTurn(game, entity.PlayerB, 0)

		// Then: the status error is returned and the board is untouched
		require.ErrorIs(t, err, entity.ErrUnknownGameStatus)
		assert.Equal(t, entity.Board{}, game.Board)
	})
}

func TestGame_MakeBotTurn(t *testing.T) {
	t.Run("Bot answers with the optimal move", func(t *testing.T) {
		// Given: B threatens the top row
		game := entity.NewGame("123", false)
		game.Board = entity.Board{
			b, b, e,
			a, e, e,
			e, e, e,
		}
		game.Turn = entity.MarkA

		// When: the bot moves
		analysis, err := MakeBotTurn(game)

		// Then: it blocks the row and hands the turn back
		require.NoError(t, err)
		assert.Equal(t, 2, analysis.Move)
		assert.Equal(t, a, game.Board.At(2))
		assert.Equal(t, entity.MarkB, game.Turn)
	})

	t.Run("Bot opens when it plays first", func(t *testing.T) {
		// Given: a game where the bot opens
		game := entity.NewGame("123", true)

		// When: the bot moves
		analysis, err := MakeBotTurn(game)

		// Then: it takes the first cell
		require.NoError(t, err)
		assert.Equal(t, 0, analysis.Move)
		assert.Equal(t, entity.MarkB, game.Turn)
	})

	t.Run("Bot waits for its turn", func(t *testing.T) {
		// Given: a game where the human opens
		game := entity.NewGame("123", false)

		// When: the bot tries to move
		_, err := MakeBotTurn(game)

		// Then: it is refused
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Bot cannot move in a finished game", func(t *testing.T) {
		// Given: a finished game
		game := &entity.Game{Status: entity.StatusFinished}

		// When: the bot tries to move
		_, err := MakeBotTurn(game)

		// Then: it is refused
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
