package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const maxBodyBytes = 1 << 10

type boardRequest struct {
	Board *entity.Board `json:"board"`
}

type classifyResponse struct {
	Status string `json:"status"`
	Winner string `json:"winner,omitempty"`
	Line   []int  `json:"line,omitempty"`
}

type bestMoveResponse struct {
	Found bool `json:"found"`
	Cell  *int `json:"cell,omitempty"`
	Score *int `json:"score,omitempty"`
	Nodes int  `json:"nodes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type engineHandler struct {
	logger *slog.Logger
}

func newEngineHandler(logger *slog.Logger) *engineHandler {
	return &engineHandler{
		logger: logger.With("component", "rest"),
	}
}

// Classify - reports whether the posted board is ongoing, drawn or won.
func (that *engineHandler) Classify(w http.ResponseWriter, r *http.Request) {
	board, err := decodeBoard(w, r)
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	outcome := tictactoe.Classify(board)

	resp := classifyResponse{Status: outcome.Status.String()}
	if outcome.Status == entity.Won {
		resp.Winner = outcome.Winner.Mark()
		resp.Line = outcome.Line[:]
	}

	that.writeJSON(w, http.StatusOK, resp)
}

// BestMove - the optimal cell for the bot (mark O) on the posted board.
func (that *engineHandler) BestMove(w http.ResponseWriter, r *http.Request) {
	board, err := decodeBoard(w, r)
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	analysis := tictactoe.Analyze(board)

	resp := bestMoveResponse{Found: analysis.Found, Nodes: analysis.Nodes}
	if analysis.Found {
		resp.Cell = &analysis.Move
		resp.Score = &analysis.Score
	}

	that.logger.Debug("best move computed", "found", analysis.Found, "cell", analysis.Move, "nodes", analysis.Nodes)

	that.writeJSON(w, http.StatusOK, resp)
}

func decodeBoard(w http.ResponseWriter, r *http.Request) (entity.Board, error) {
	var req boardRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return entity.Board{}, fmt.Errorf("invalid request body: %w", err)
	}

	if req.Board == nil {
		return entity.Board{}, fmt.Errorf("%w: got 0", entity.ErrInvalidBoardSize)
	}

	return *req.Board, nil
}

func (that *engineHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
