package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// userErrors - errors that are reported back to the client, everything else is internal.
var userErrors = []error{
	apperror.ErrGameFinished,
	apperror.ErrNotYourTurn,
	apperror.ErrCellOccupied,
	apperror.ErrInvalidCell,
	apperror.ErrGameNotFound,
	apperror.ErrSessionNotFound,
	apperror.ErrNoActiveGame,
}

func (that *Server) handleNewGame(ctx context.Context, c *client, payload *Payload) error {
	game, err := that.gameUseCase.NewGame(ctx, c.sessionID, payload.BotFirst)
	if err != nil {
		return that.replyError(c, actionGameNew, err)
	}

	return c.send(actionGameNew, Payload{Game: game})
}

func (that *Server) handleGameState(ctx context.Context, c *client, _ *Payload) error {
	game, err := that.gameUseCase.GetGame(ctx, c.sessionID)
	if err != nil {
		return that.replyError(c, actionGameState, err)
	}

	return c.send(actionGameState, Payload{Game: game})
}

func (that *Server) handleGameTurn(ctx context.Context, c *client, payload *Payload) error {
	if payload.Cell == nil {
		return c.sendError(actionGameTurn, "cell is required")
	}

	game, err := that.gameUseCase.MakeTurn(ctx, c.sessionID, *payload.Cell)
	if err != nil {
		return that.replyError(c, actionGameTurn, err)
	}

	return c.send(actionGameTurn, Payload{Game: game})
}

func (that *Server) handleGameRestart(ctx context.Context, c *client, _ *Payload) error {
	game, err := that.gameUseCase.Restart(ctx, c.sessionID)
	if err != nil {
		return that.replyError(c, actionGameRestart, err)
	}

	return c.send(actionGameRestart, Payload{Game: game})
}

func (that *Server) handleGameLeave(ctx context.Context, c *client, _ *Payload) error {
	if err := that.gameUseCase.Leave(ctx, c.sessionID); err != nil {
		return that.replyError(c, actionGameLeave, err)
	}

	return c.send(actionGameLeave, Payload{})
}

// replyError - reports the error to the client. Only a failed write ends the connection.
func (that *Server) replyError(c *client, action string, err error) error {
	for _, userErr := range userErrors {
		if errors.Is(err, userErr) {
			return c.sendError(action, userErr.Error())
		}
	}

	that.logger.Error("failed to process action", "action", action, "sessionID", c.sessionID, "error", err)

	return c.sendError(action, "internal error")
}
