package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mcoot/pawnchess-go/internal/dependencies/clock"
	"github.com/mcoot/pawnchess-go/internal/dependencies/random"
	"github.com/mcoot/pawnchess-go/internal/model"
	"github.com/mcoot/pawnchess-go/internal/services/rules"
	"github.com/mcoot/pawnchess-go/internal/storage"
)

// Controller manages game state machine and turn flow
type Controller struct {
	storage storage.Storage
	rules   *rules.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	rules *rules.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		rules:   rules,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// MoveResult describes an accepted move
type MoveResult struct {
	Game     *model.Game
	Move     model.Move
	Captured *model.Pawn
}

// CreateGame initializes a new game between the given players. White always
// moves first.
func (c *Controller) CreateGame(ctx context.Context, lobbyCode model.LobbyCode, white, black model.PlayerID) (*model.Game, error) {
	if white == "" || black == "" {
		return nil, model.ErrInsufficientPlayers
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))

	game := &model.Game{
		ID:            gameID,
		LobbyCode:     lobbyCode,
		State:         model.GameStateInProgress,
		White:         white,
		Black:         black,
		Board:         model.NewBoard(),
		CurrentColor:  model.White,
		MoveCount:     0,
		TurnStartedAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("lobby_code", string(lobbyCode)),
		slog.String("white", string(white)),
		slog.String("black", string(black)),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// SubmitMove handles a player playing a move given in coordinate notation.
// Rejected moves leave the game untouched; nothing is persisted until the
// move has been validated and applied.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, text string) (*MoveResult, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	// Validate game state
	if game.State == model.GameStateAbandoned {
		return nil, model.ErrGameAbandoned
	}
	if game.State != model.GameStateInProgress {
		return nil, model.ErrGameComplete
	}

	// Validate it's this player's turn
	color, ok := game.ColorOf(playerID)
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	if color != game.CurrentColor {
		return nil, model.ErrNotPlayerTurn
	}

	parsed, err := model.ParseMove(strings.ToLower(strings.TrimSpace(text)))
	if err != nil {
		return nil, err
	}

	// The moved pawn must exist and belong to the mover
	pawn := game.Board.At(parsed.From)
	if pawn == nil || pawn.Color != color {
		return nil, model.ErrNoPawnAtSquare
	}

	// Resolve against the pending en-passant offers first so a capture keeps
	// its tracked victim, then against the pawn's ordinary moves
	resolved, ok := resolveMove(parsed, game.PendingEnPassant, c.rules.ValidMoves(game.Board, pawn))
	if !ok {
		return nil, model.ErrIllegalMove
	}

	captured := c.rules.Apply(game.Board, resolved)

	// Offers never survive past the very next move; only this move's double
	// advance can open new ones
	game.PendingEnPassant = c.rules.EnPassantOffers(game.Board, resolved, pawn)
	game.LastMove = &resolved
	game.MoveCount++

	opponent := color.Opponent()
	now := c.clock.Now()

	switch {
	case pawn.ReachedBackRank() || len(game.Board.PawnsOf(opponent)) == 0:
		game.State = winStateFor(color)
		c.logger.Info("game won",
			slog.String("game_id", string(gameID)),
			slog.String("winner", string(color)),
			slog.Int("moves", game.MoveCount),
		)
	case !c.rules.HasAnyMove(game.Board, opponent, game.PendingEnPassant):
		game.State = model.GameStateStalemate
		c.logger.Info("game drawn by stalemate",
			slog.String("game_id", string(gameID)),
			slog.Int("moves", game.MoveCount),
		)
	default:
		game.CurrentColor = opponent
		game.TurnStartedAt = now
	}
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return &MoveResult{Game: game, Move: resolved, Captured: captured}, nil
}

// resolveMove matches the parsed squares against the offered and ordinary
// moves. Offers take precedence: the richer en-passant variant is the one
// applied when both name the same squares.
func resolveMove(parsed model.Move, offers, valid []model.Move) (model.Move, bool) {
	for _, offer := range offers {
		if parsed.Equal(offer) {
			return offer, true
		}
	}
	for _, move := range valid {
		if parsed.Equal(move) {
			return move, true
		}
	}
	return model.Move{}, false
}

// winStateFor maps the winning color to the terminal game state
func winStateFor(color model.Color) model.GameState {
	if color == model.White {
		return model.GameStateWhiteWon
	}
	return model.GameStateBlackWon
}

// LegalMoves returns the player's current legal moves. Pending en-passant
// offers are included only when it is that player's turn; for a finished
// game the set is empty.
func (c *Controller) LegalMoves(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.Move, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	color, ok := game.ColorOf(playerID)
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	if game.IsOver() {
		return nil, nil
	}

	var pending []model.Move
	if color == game.CurrentColor {
		pending = game.PendingEnPassant
	}
	return c.rules.MovesFor(game.Board, color, pending), nil
}

// AbandonGame ends a game prematurely
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsOver() {
		return nil // Already finished
	}

	game.State = model.GameStateAbandoned
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.String("lobby_code", string(game.LobbyCode)),
	)

	return c.storage.SaveGame(ctx, game)
}

// ForfeitPlayer handles a player leaving mid-game. A two-player match cannot
// continue short-handed, so the remaining player wins.
func (c *Controller) ForfeitPlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if game.IsOver() {
		return nil // Game already finished
	}

	color, ok := game.ColorOf(playerID)
	if !ok {
		return nil // Player not in game
	}

	game.State = winStateFor(color.Opponent())
	game.UpdatedAt = c.clock.Now()

	c.logger.Info("game forfeited",
		slog.String("game_id", string(gameID)),
		slog.String("forfeiting_player", string(playerID)),
		slog.String("winner", string(color.Opponent())),
	)

	return c.storage.SaveGame(ctx, game)
}

// CreateGameSummary creates a summary record for a finished game
func (c *Controller) CreateGameSummary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsOver() {
		return nil, model.ErrGameInProgress
	}

	return &model.GameSummary{
		ID:          gameID,
		Outcome:     game.State,
		Winner:      game.Winner(),
		Moves:       game.MoveCount,
		CompletedAt: c.clock.Now(),
	}, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, lobbyCode model.LobbyCode, white, black model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	SubmitMove(ctx context.Context, gameID model.GameID, playerID model.PlayerID, text string) (*MoveResult, error)
	LegalMoves(ctx context.Context, gameID model.GameID, playerID model.PlayerID) ([]model.Move, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	ForfeitPlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) error
	CreateGameSummary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error)
}

var _ ControllerInterface = (*Controller)(nil)
