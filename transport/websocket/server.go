package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	sessionCookie = "user_session"

	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	writeWait    = 10 * time.Second
)

type gameUseCase interface {
	Connect(ctx context.Context, sessionID string) (*entity.Session, *entity.Game, error)
	NewGame(ctx context.Context, sessionID string, botFirst bool) (*entity.Game, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, sessionID string, cell int) (*entity.Game, error)
	Restart(ctx context.Context, sessionID string) (*entity.Game, error)
	Leave(ctx context.Context, sessionID string) error
}

type handlerFunc func(ctx context.Context, client *client, payload *Payload) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}

	server.handlers = map[string]handlerFunc{
		actionGameNew:     server.handleNewGame,
		actionGameState:   server.handleGameState,
		actionGameTurn:    server.handleGameTurn,
		actionGameRestart: server.handleGameRestart,
		actionGameLeave:   server.handleGameLeave,
	}

	return server
}

// Handler - serves the /ws endpoint.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - resolves the session from the cookie and upgrades the connection.
func (that *Server) upgradeToWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	var sessionID string
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		sessionID = cookie.Value
	}

	session, game, err := that.gameUseCase.Connect(ctx, sessionID)
	if err != nil {
		log.Error("failed to connect session", "error", err)
		http.Error(w, "failed to connect session", http.StatusInternalServerError)
		return
	}

	header := http.Header{}
	header.Add("Set-Cookie", (&http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/ws",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	}).String())

	conn, err := that.upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(conn, session.ID)
	defer c.close()

	log = log.With("sessionID", session.ID)
	log.Info("WebSocket connection established")

	if err = c.send(actionConnect, Payload{Session: session, Game: game}); err != nil {
		log.Error("failed to send connect message", "error", err)
		return
	}

	if err = that.handleMessages(ctx, c); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, c *client) error {
	log := that.logger.With("method", "handleMessages", "sessionID", c.sessionID)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = c.sendError(actionError, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = c.sendError(message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		var payload Payload
		if len(message.Payload) > 0 {
			if err = json.Unmarshal(message.Payload, &payload); err != nil {
				if err = c.sendError(message.Action, "malformed payload"); err != nil {
					return err
				}
				continue
			}
		}

		if err = handler(ctx, c, &payload); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
