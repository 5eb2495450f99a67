package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Analysis - the result of a root search for PlayerA.
type Analysis struct {
	Move    int
	Score   int
	Found   bool
	Nodes   int
	Cutoffs int
}

// Analyze - searches every empty cell in ascending order and keeps the first one with the
// highest score. The caller's board is never touched: the search works on its own copy.
func Analyze(board entity.Board) Analysis {
	var (
		stats  Stats
		result Analysis
	)

	bestScore := math.MinInt

	for cell := range board {
		if !board[cell].IsEmpty() {
			continue
		}

		score := withMove(&board, cell, entity.PlayerA, func() int {
			return search(&board, math.MinInt, math.MaxInt, false, &stats)
		})

		if score > bestScore {
			bestScore = score
			result.Move = cell
			result.Score = score
			result.Found = true
		}
	}

	result.Nodes = stats.Nodes
	result.Cutoffs = stats.Cutoffs

	return result
}

// BestMove - returns the optimal cell for PlayerA, false when the board has no empty cell.
func BestMove(board entity.Board) (int, bool) {
	analysis := Analyze(board)
	return analysis.Move, analysis.Found
}
