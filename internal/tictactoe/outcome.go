package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// WinCombos - the eight winning lines in scan order: rows, columns, main diagonal, anti-diagonal.
// When a board matches several lines, the first one in this order is reported.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Classify - returns the outcome of the board: Won with the first matching line, Ongoing while
// any cell is empty, Draw otherwise. It has no side effects and does not allocate.
func Classify(board entity.Board) entity.Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a.IsEmpty() || a != b || b != c {
			continue
		}

		winner, _ := a.Owner()

		return entity.Outcome{Status: entity.Won, Winner: winner, Line: combo}
	}

	for _, cell := range board {
		if cell.IsEmpty() {
			return entity.Outcome{Status: entity.Ongoing}
		}
	}

	return entity.Outcome{Status: entity.Draw}
}
