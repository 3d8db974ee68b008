package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pawnchess-go/internal/api/middleware"
	"github.com/mcoot/pawnchess-go/internal/api/request"
	"github.com/mcoot/pawnchess-go/internal/api/response"
	"github.com/mcoot/pawnchess-go/internal/model"
	"github.com/mcoot/pawnchess-go/internal/services/game"
	"github.com/mcoot/pawnchess-go/internal/services/lobby"
	"github.com/mcoot/pawnchess-go/internal/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	lobbyController *lobby.Controller
	gameController  *game.Controller
	hubManager      *sse.HubManager
	broadcaster     *sse.Broadcaster
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	lobbyController *lobby.Controller,
	gameController *game.Controller,
	hubManager *sse.HubManager,
	logger *slog.Logger,
) *GameHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &GameHandler{
		lobbyController: lobbyController,
		gameController:  gameController,
		hubManager:      hubManager,
		broadcaster:     broadcaster,
	}
}

// getBroadcaster returns the broadcaster if available
func (h *GameHandler) getBroadcaster() *sse.Broadcaster {
	return h.broadcaster
}

// currentGame resolves the lobby's running game ID
func (h *GameHandler) currentGame(r *http.Request, code model.LobbyCode) (model.GameID, error) {
	lob, err := h.lobbyController.GetLobby(r.Context(), code)
	if err != nil {
		return "", err
	}
	if lob.CurrentGame == nil {
		return "", model.ErrNoGameInProgress
	}
	return *lob.CurrentGame, nil
}

// Start handles POST /api/v1/lobbies/{code}/game
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	g, err := h.lobbyController.StartGame(r.Context(), code, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Broadcast game started to SSE clients
	if b := h.getBroadcaster(); b != nil {
		b.BroadcastGameStarted(code, g)
	}

	response.JSON(w, http.StatusCreated, response.GameStateFromModel(g))
}

// Get handles GET /api/v1/lobbies/{code}/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.LobbyCode(mux.Vars(r)["code"])

	gameID, err := h.currentGame(r, code)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g))
}

// Move handles POST /api/v1/lobbies/{code}/game/move
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Move == "" {
		WriteError(w, NewInvalidRequestError("move is required"))
		return
	}

	gameID, err := h.currentGame(r, code)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.gameController.SubmitMove(r.Context(), gameID, player.ID, req.Move)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Broadcast the accepted move to SSE clients
	if b := h.getBroadcaster(); b != nil {
		b.BroadcastMovePlayed(code, result.Game, result.Move, result.Captured != nil)
		if result.Game.IsOver() {
			b.BroadcastGameComplete(code, result.Game)
		}
	}

	// A finished match goes into the lobby history and frees the board
	if result.Game.IsOver() {
		_ = h.lobbyController.CompleteGame(r.Context(), code)
	}

	resp := response.MoveResponse{
		Move:      result.Move.String(),
		Capture:   result.Captured != nil,
		EnPassant: result.Move.IsEnPassant(),
		Game:      response.GameStateFromModel(result.Game),
	}
	response.JSON(w, http.StatusOK, resp)
}

// LegalMoves handles GET /api/v1/lobbies/{code}/game/moves
func (h *GameHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	gameID, err := h.currentGame(r, code)
	if err != nil {
		WriteError(w, err)
		return
	}

	moves, err := h.gameController.LegalMoves(r.Context(), gameID, player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.LegalMovesResponse{Moves: make([]string, len(moves))}
	for i, m := range moves {
		resp.Moves[i] = m.String()
	}
	response.JSON(w, http.StatusOK, resp)
}

// Abandon handles DELETE /api/v1/lobbies/{code}/game
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	code := model.LobbyCode(mux.Vars(r)["code"])

	if err := h.lobbyController.AbandonGame(r.Context(), code, player.ID); err != nil {
		WriteError(w, err)
		return
	}

	// Broadcast game abandoned to SSE clients
	if b := h.getBroadcaster(); b != nil {
		b.BroadcastGameAbandoned(code)
	}

	response.NoContent(w)
}
