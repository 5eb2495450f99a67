package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Stats - counters collected while searching. They never influence the result.
type Stats struct {
	Nodes   int
	Cutoffs int
}

// search - minimax with alpha-beta pruning over the scratch board. The board is restored to its
// state at entry before search returns.
//
// Siblings are pruned only once the running bound strictly passes the opposite bound
// (running > beta when maximizing, running < alpha when minimizing).
func search(board *entity.Board, alpha, beta int, maximizing bool, stats *Stats) int {
	stats.Nodes++

	if outcome := Classify(*board); outcome.IsTerminal() {
		return Utility(outcome)
	}

	if maximizing {
		running := alpha
		for cell := range board {
			if !board[cell].IsEmpty() {
				continue
			}

			score := withMove(board, cell, entity.PlayerA, func() int {
				return search(board, running, beta, false, stats)
			})

			running = max(running, score)
			if running > beta {
				stats.Cutoffs++
				break
			}
		}

		return running
	}

	running := beta
	for cell := range board {
		if !board[cell].IsEmpty() {
			continue
		}

		score := withMove(board, cell, entity.PlayerB, func() int {
			return search(board, alpha, running, true, stats)
		})

		running = min(running, score)
		if running < alpha {
			stats.Cutoffs++
			break
		}
	}

	return running
}

// withMove - places the player's mark, runs next and takes the mark back on every exit path.
func withMove(board *entity.Board, cell int, player entity.Player, next func() int) int {
	board.Place(cell, player)
	defer board.Clear(cell)

	return next()
}
