package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager - runs live games between a human session and the bot.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	gameRepo    gameRepo
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		gameRepo:    gameRepo,
	}
}

// Connect - returns the session, creating it for an empty or unknown id, and its live game if any.
func (that *GameManager) Connect(ctx context.Context, sessionID string) (*entity.Session, *entity.Game, error) {
	session, err := that.getOrCreateSession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get or create session: %w", err)
	}

	if !session.InGame() {
		return session, nil, nil
	}

	game, err := that.gameRepo.GetByID(ctx, session.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		// the game expired while the session was away
		session.GameID = ""
		if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
			return nil, nil, fmt.Errorf("failed to update session: %w", err)
		}

		return session, nil, nil
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	return session, game, nil
}

// NewGame - starts a new game for the session, dropping the one it was playing.
func (that *GameManager) NewGame(ctx context.Context, sessionID string, botFirst bool) (*entity.Game, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.InGame() {
		that.deleteGame(ctx, session.GameID)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, botFirst)
	if err = that.botTurn(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	session.GameID = game.ID
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	that.logger.Info("game created", "sessionID", session.ID, "gameID", game.ID, "botFirst", botFirst)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.Game, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return that.activeGame(ctx, session)
}

// MakeTurn - applies the human move and, while the game goes on, the bot's answer.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game, err := that.activeGame(ctx, session)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.MakeTurn(game, entity.PlayerB, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.botTurn(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner)
	}

	return game, nil
}

// Restart - clears the board of the session's game and keeps its id and opener.
func (that *GameManager) Restart(ctx context.Context, sessionID string) (*entity.Game, error) {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	game, err := that.activeGame(ctx, session)
	if err != nil {
		return nil, err
	}

	game.Reset()
	if err = that.botTurn(game); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// Leave - drops the session's live game.
func (that *GameManager) Leave(ctx context.Context, sessionID string) error {
	session, err := that.getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if !session.InGame() {
		return apperror.ErrNoActiveGame
	}

	that.deleteGame(ctx, session.GameID)

	session.GameID = ""
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

// botTurn - lets the bot move when it is its turn, does nothing otherwise.
func (that *GameManager) botTurn(game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	analysis, err := tictactoe.MakeBotTurn(game)
	if err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn",
		"gameID", game.ID,
		"cell", analysis.Move,
		"score", analysis.Score,
		"nodes", analysis.Nodes,
		"cutoffs", analysis.Cutoffs,
	)

	return nil
}

func (that *GameManager) activeGame(ctx context.Context, session *entity.Session) (*entity.Game, error) {
	if !session.InGame() {
		return nil, apperror.ErrNoActiveGame
	}

	game, err := that.gameRepo.GetByID(ctx, session.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) deleteGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "deleteGame", "gameID", gameID)

	err := that.gameRepo.DeleteByID(ctx, gameID)
	if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}

func (that *GameManager) getOrCreateSession(ctx context.Context, id string) (*entity.Session, error) {
	if id != "" {
		session, err := that.sessionRepo.GetByID(ctx, id)
		if err == nil {
			return session, nil
		}

		if !errors.Is(err, apperror.ErrSessionNotFound) {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
	}

	if id == "" {
		var err error
		if id, err = pkg.GenerateNewSessionID(); err != nil {
			return nil, fmt.Errorf("error generating session ID: %w", err)
		}
	}

	session := &entity.Session{ID: id}
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (that *GameManager) getSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}
