package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn - applies the player's move to the live game and updates its status.
func MakeTurn(gameInstance *entity.Game, player entity.Player, cell int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(gameInstance, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Place(cell, player)
	updateGameStatus(gameInstance, player)

	return nil
}

// MakeBotTurn - lets PlayerA answer with the optimal move.
func MakeBotTurn(gameInstance *entity.Game) (Analysis, error) {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return Analysis{}, err
	}

	if !gameInstance.IsBotTurn() {
		return Analysis{}, apperror.ErrNotYourTurn
	}

	analysis := Analyze(gameInstance.Board)
	if !analysis.Found {
		return analysis, apperror.ErrNoAvailableMoves
	}

	if err := MakeTurn(gameInstance, entity.PlayerA, analysis.Move); err != nil {
		return analysis, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return analysis, nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player entity.Player, cell int) error {
	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if gameInstance.Turn != player.Mark() {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.At(cell).IsEmpty() {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Player) {
	switch outcome := Classify(gameInstance.Board); outcome.Status {
	case entity.Won:
		gameInstance.Winner = outcome.Winner.Mark()
		gameInstance.WinLine = outcome.Line[:]
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	case entity.Draw:
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
		gameInstance.Turn = ""
	default:
		gameInstance.Turn = player.Opponent().Mark()
	}
}
