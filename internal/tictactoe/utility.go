package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	ScoreWin  = 10
	ScoreLoss = -10
	ScoreDraw = 0
)

// Utility - score of a terminal outcome from PlayerA's point of view.
func Utility(outcome entity.Outcome) int {
	switch outcome.Status {
	case entity.Won:
		if outcome.Winner == entity.PlayerA {
			return ScoreWin
		}
		return ScoreLoss
	case entity.Draw:
		return ScoreDraw
	default:
		panic(fmt.Sprintf("utility of a non-terminal outcome: %s", outcome.Status))
	}
}
