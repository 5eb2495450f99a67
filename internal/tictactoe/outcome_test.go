package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = entity.Occupied(entity.PlayerA)
	b = entity.Occupied(entity.PlayerB)
	e = entity.Empty
)

func TestClassify(t *testing.T) {
	t.Run("Empty board is ongoing", func(t *testing.T) {
		// When: classifying an empty board
		outcome := Classify(entity.Board{})

		// Then: the game is ongoing
		assert.Equal(t, entity.Outcome{Status: entity.Ongoing}, outcome)
	})

	t.Run("Row win", func(t *testing.T) {
		// Given: B completed the middle row
		board := entity.Board{
			a, e, a,
			b, b, b,
			e, a, e,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: B wins on the middle row
		assert.Equal(t, entity.Outcome{Status: entity.Won, Winner: entity.PlayerB, Line: [3]int{3, 4, 5}}, outcome)
	})

	t.Run("Column win", func(t *testing.T) {
		// Given: A completed the right column
		board := entity.Board{
			b, e, a,
			b, e, a,
			e, b, a,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: A wins on the right column
		assert.Equal(t, entity.Outcome{Status: entity.Won, Winner: entity.PlayerA, Line: [3]int{2, 5, 8}}, outcome)
	})

	t.Run("Main diagonal win", func(t *testing.T) {
		// Given: A holds the main diagonal
		board := entity.Board{
			a, b, e,
			b, a, e,
			e, e, a,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: A wins on the main diagonal
		assert.Equal(t, [3]int{0, 4, 8}, outcome.Line)
		assert.Equal(t, entity.PlayerA, outcome.Winner)
	})

	t.Run("Anti-diagonal win", func(t *testing.T) {
		// Given: B holds the anti-diagonal
		board := entity.Board{
			a, a, b,
			e, b, e,
			b, e, a,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: B wins on the anti-diagonal
		assert.Equal(t, entity.Outcome{Status: entity.Won, Winner: entity.PlayerB, Line: [3]int{2, 4, 6}}, outcome)
	})

	t.Run("First line in scan order wins", func(t *testing.T) {
		// Given: A completes the top row and the left column at once
		board := entity.Board{
			a, a, a,
			a, b, b,
			a, b, b,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: the row, scanned first, is reported
		assert.Equal(t, [3]int{0, 1, 2}, outcome.Line)
	})

	t.Run("Column beats diagonal", func(t *testing.T) {
		// Given: B completes the left column and the anti-diagonal
		board := entity.Board{
			b, a, b,
			b, b, a,
			b, a, a,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: the column is reported
		assert.Equal(t, [3]int{0, 3, 6}, outcome.Line)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := entity.Board{
			b, a, b,
			b, a, a,
			a, b, b,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: the game is drawn
		assert.Equal(t, entity.Outcome{Status: entity.Draw}, outcome)
		assert.True(t, outcome.IsTerminal())
	})

	t.Run("Full board with a line is a win", func(t *testing.T) {
		// Given: the last move filled the board and completed a line
		board := entity.Board{
			a, b, a,
			b, a, b,
			b, a, a,
		}

		// When: classifying the board
		outcome := Classify(board)

		// Then: the win takes precedence over the draw
		assert.Equal(t, entity.Won, outcome.Status)
		assert.Equal(t, [3]int{0, 4, 8}, outcome.Line)
	})
}

func TestClassify_ReachableBoards(t *testing.T) {
	// Given: every board reachable by alternating legal moves, whoever opens
	humanFirst := reachableBoards(entity.PlayerB)
	botFirst := reachableBoards(entity.PlayerA)
	require.Len(t, humanFirst, 5478)
	require.Len(t, botFirst, 5478)

	for board := range union(humanFirst, botFirst) {
		// When: classifying the board
		outcome := Classify(board)

		// Then: the outcome is consistent with the cells
		switch outcome.Status {
		case entity.Won:
			for _, cell := range outcome.Line {
				owner, ok := board[cell].Owner()
				require.True(t, ok)
				require.Equal(t, outcome.Winner, owner)
			}
		case entity.Draw:
			require.True(t, board.IsFull())
		case entity.Ongoing:
			require.False(t, board.IsFull())
		}

		// And: classifying again yields the same outcome
		require.Equal(t, outcome, Classify(board))
	}
}

func TestClassify_DoesNotAllocate(t *testing.T) {
	board := entity.Board{
		a, b, e,
		e, a, b,
		e, e, e,
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = Classify(board)
	})

	assert.Zero(t, allocs)
}

func TestUtility(t *testing.T) {
	assert.Equal(t, 10, Utility(entity.Outcome{Status: entity.Won, Winner: entity.PlayerA}))
	assert.Equal(t, -10, Utility(entity.Outcome{Status: entity.Won, Winner: entity.PlayerB}))
	assert.Equal(t, 0, Utility(entity.Outcome{Status: entity.Draw}))

	assert.Panics(t, func() {
		Utility(entity.Outcome{Status: entity.Ongoing})
	})
}

// reachableBoards - all distinct boards reachable from the empty board when first opens.
func reachableBoards(first entity.Player) map[entity.Board]entity.Player {
	boards := make(map[entity.Board]entity.Player)

	var walk func(board entity.Board, turn entity.Player)
	walk = func(board entity.Board, turn entity.Player) {
		if _, seen := boards[board]; seen {
			return
		}
		boards[board] = turn

		if Classify(board).IsTerminal() {
			return
		}

		for _, cell := range board.EmptyCells() {
			next := board
			next.Place(cell, turn)
			walk(next, turn.Opponent())
		}
	}

	walk(entity.Board{}, first)

	return boards
}

func union(sets ...map[entity.Board]entity.Player) map[entity.Board]struct{} {
	all := make(map[entity.Board]struct{})
	for _, set := range sets {
		for board := range set {
			all[board] = struct{}{}
		}
	}
	return all
}
