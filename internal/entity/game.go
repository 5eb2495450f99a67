package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"

	EmptyCell = ""
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game - a live game between a human (PlayerB) and the bot (PlayerA).
type Game struct {
	ID       string `json:"id"`
	Board    Board  `json:"board"`
	Winner   string `json:"winner"`
	WinLine  []int  `json:"win_line,omitempty"`
	Status   string `json:"status"`
	Turn     string `json:"player_turn"`
	BotFirst bool   `json:"bot_first"`
}

func NewGame(id string, botFirst bool) *Game {
	game := &Game{
		ID:       id,
		BotFirst: botFirst,
	}
	game.Reset()

	return game
}

// Reset - clears the board and starts over with the same opening side.
func (that *Game) Reset() {
	that.Board = Board{}
	that.Winner = ""
	that.WinLine = nil
	that.Status = StatusOngoing
	that.Turn = PlayerB.Mark()

	if that.BotFirst {
		that.Turn = PlayerA.Mark()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == PlayerA.Mark()
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
