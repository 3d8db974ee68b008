package lobby

import (
	"context"

	"github.com/mcoot/pawnchess-go/internal/dependencies/clock"
	"github.com/mcoot/pawnchess-go/internal/dependencies/random"
	"github.com/mcoot/pawnchess-go/internal/model"
	"github.com/mcoot/pawnchess-go/internal/services/game"
	"github.com/mcoot/pawnchess-go/internal/storage"
)

const (
	// LobbyCodeLength is the length of generated lobby codes
	LobbyCodeLength = 6
	// LobbyCodeAlphabet is the characters used in lobby codes (avoid confusing chars)
	LobbyCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller manages lobby state machine and member operations
type Controller struct {
	storage        storage.Storage
	gameController *game.Controller
	clock          clock.Clock
	random         random.Random
}

// NewController creates a new LobbyController
func NewController(
	storage storage.Storage,
	gameController *game.Controller,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage:        storage,
		gameController: gameController,
		clock:          clock,
		random:         random,
	}
}

// CreateLobby creates a new lobby with the given player as host
func (c *Controller) CreateLobby(ctx context.Context, host model.Player) (*model.Lobby, error) {
	now := c.clock.Now()

	// Generate unique lobby code
	var code model.LobbyCode
	for {
		code = model.LobbyCode(c.random.String(LobbyCodeLength, LobbyCodeAlphabet))
		exists, err := c.storage.LobbyExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	lobby := &model.Lobby{
		Code:   code,
		State:  model.LobbyStateWaiting,
		Config: model.DefaultLobbyConfig(),
		Members: []model.LobbyMember{
			{
				Player:   host,
				Role:     model.RolePlayer,
				IsHost:   true,
				JoinedAt: now,
			},
		},
		GameHistory: []model.GameSummary{},
		CurrentGame: nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}

	return lobby, nil
}

// GetLobby retrieves a lobby by code
func (c *Controller) GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error) {
	return c.storage.GetLobby(ctx, code)
}

// JoinLobby adds a player to a lobby. With both seats taken, or while a game
// runs, the joiner becomes a spectator.
func (c *Controller) JoinLobby(ctx context.Context, code model.LobbyCode, player model.Player) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	// Check if already in lobby
	if lobby.GetMember(player.ID) != nil {
		return model.ErrAlreadyInLobby
	}

	role := model.RolePlayer
	if lobby.State == model.LobbyStateInGame || len(lobby.GetPlayers()) >= model.MaxLobbyPlayers {
		role = model.RoleSpectator
	}

	lobby.Members = append(lobby.Members, model.LobbyMember{
		Player:   player,
		Role:     role,
		IsHost:   false,
		JoinedAt: c.clock.Now(),
	})
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// LeaveLobby removes a player from a lobby. A seated player leaving mid-game
// forfeits the match to the opponent.
func (c *Controller) LeaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	member := lobby.GetMember(playerID)
	if member == nil {
		return model.ErrNotInLobby
	}

	wasHost := member.IsHost
	wasPlayer := member.Role == model.RolePlayer

	// Remove member
	for i, m := range lobby.Members {
		if m.Player.ID == playerID {
			lobby.Members = append(lobby.Members[:i], lobby.Members[i+1:]...)
			break
		}
	}

	// If lobby is now empty, delete it
	if len(lobby.Members) == 0 {
		// Abandon any current game first
		if lobby.CurrentGame != nil {
			_ = c.gameController.AbandonGame(ctx, *lobby.CurrentGame)
		}
		return c.storage.DeleteLobby(ctx, code)
	}

	// If host left, assign new host
	if wasHost {
		lobby.Members[0].IsHost = true
	}

	// A two-player game cannot continue short-handed: the leaver forfeits
	// and the finished game goes into the history
	if wasPlayer && lobby.CurrentGame != nil {
		_ = c.gameController.ForfeitPlayer(ctx, *lobby.CurrentGame, playerID)
		if summary, err := c.gameController.CreateGameSummary(ctx, *lobby.CurrentGame); err == nil {
			lobby.GameHistory = append(lobby.GameHistory, *summary)
		}
		lobby.State = model.LobbyStateWaiting
		lobby.CurrentGame = nil
	}

	lobby.UpdatedAt = c.clock.Now()
	return c.storage.SaveLobby(ctx, lobby)
}

// SetRole changes a member's role (player/spectator)
func (c *Controller) SetRole(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, role model.LobbyMemberRole) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	// Cannot change roles during a game
	if lobby.State == model.LobbyStateInGame {
		return model.ErrGameInProgress
	}

	member := lobby.GetMember(playerID)
	if member == nil {
		return model.ErrNotInLobby
	}

	// Both seats may already be taken
	if role == model.RolePlayer && member.Role != model.RolePlayer &&
		len(lobby.GetPlayers()) >= model.MaxLobbyPlayers {
		return model.ErrLobbyFull
	}

	member.Role = role
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// TransferHost makes another member the host
func (c *Controller) TransferHost(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, newHostID model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	// Verify requester is current host
	currentHost := lobby.GetHost()
	if currentHost == nil || currentHost.Player.ID != requestingPlayer {
		return model.ErrNotHost
	}

	// Verify new host is in lobby
	newHost := lobby.GetMember(newHostID)
	if newHost == nil {
		return model.ErrNotInLobby
	}

	// Transfer host
	currentHost.IsHost = false
	newHost.IsHost = true
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// StartGame begins a new game with the two seated players. Colors follow the
// lobby's HostColor config; white always moves first.
func (c *Controller) StartGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) (*model.Game, error) {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}

	// Verify requester is host
	host := lobby.GetHost()
	if host == nil || host.Player.ID != requestingPlayer {
		return nil, model.ErrNotHost
	}

	// Cannot start if game in progress
	if lobby.State == model.LobbyStateInGame {
		return nil, model.ErrGameInProgress
	}

	players := lobby.GetPlayers()
	if len(players) < model.MaxLobbyPlayers {
		return nil, model.ErrInsufficientPlayers
	}

	white, black := c.assignColors(lobby, players)

	g, err := c.gameController.CreateGame(ctx, code, white, black)
	if err != nil {
		return nil, err
	}

	// Update lobby state
	lobby.State = model.LobbyStateInGame
	lobby.CurrentGame = &g.ID
	lobby.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}

	return g, nil
}

// assignColors resolves the HostColor config for the two seated players.
// When the host spectates, the first seated player takes the host's side.
func (c *Controller) assignColors(lobby *model.Lobby, players []model.LobbyMember) (white, black model.PlayerID) {
	first, second := players[0].Player.ID, players[1].Player.ID
	if host := lobby.GetHost(); host != nil && host.Player.ID == second {
		first, second = second, first
	}

	hostColor := lobby.Config.HostColor
	if hostColor == model.HostColorRandom || hostColor == "" {
		if c.random.Intn(2) == 0 {
			hostColor = model.HostColorWhite
		} else {
			hostColor = model.HostColorBlack
		}
	}

	if hostColor == model.HostColorBlack {
		return second, first
	}
	return first, second
}

// AbandonGame ends the current game
func (c *Controller) AbandonGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	// Seated players and the host may abandon; spectators may not
	member := lobby.GetMember(requestingPlayer)
	if member == nil {
		return model.ErrNotInLobby
	}
	if member.Role != model.RolePlayer && !member.IsHost {
		return model.ErrNotHost
	}

	// Must have game in progress
	if lobby.State != model.LobbyStateInGame || lobby.CurrentGame == nil {
		return model.ErrNoGameInProgress
	}

	// Abandon the game
	if err := c.gameController.AbandonGame(ctx, *lobby.CurrentGame); err != nil {
		return err
	}

	if summary, err := c.gameController.CreateGameSummary(ctx, *lobby.CurrentGame); err == nil {
		lobby.GameHistory = append(lobby.GameHistory, *summary)
	}

	// Update lobby state
	lobby.State = model.LobbyStateWaiting
	lobby.CurrentGame = nil
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// CompleteGame records a finished game in the lobby history and reopens the
// lobby for the next match
func (c *Controller) CompleteGame(ctx context.Context, code model.LobbyCode) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.CurrentGame == nil {
		return model.ErrNoGameInProgress
	}

	// Create game summary
	summary, err := c.gameController.CreateGameSummary(ctx, *lobby.CurrentGame)
	if err != nil {
		return err
	}

	// Add to history
	lobby.GameHistory = append(lobby.GameHistory, *summary)
	lobby.State = model.LobbyStateWaiting
	lobby.CurrentGame = nil
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// UpdateConfig updates the lobby configuration
func (c *Controller) UpdateConfig(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, config model.LobbyConfig) error {
	lobby, err := c.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	// Verify requester is host
	host := lobby.GetHost()
	if host == nil || host.Player.ID != requestingPlayer {
		return model.ErrNotHost
	}

	// Cannot change config during game
	if lobby.State == model.LobbyStateInGame {
		return model.ErrGameInProgress
	}

	switch config.HostColor {
	case model.HostColorWhite, model.HostColorBlack, model.HostColorRandom:
	default:
		return model.ErrInvalidHostColor
	}

	lobby.Config = config
	lobby.UpdatedAt = c.clock.Now()

	return c.storage.SaveLobby(ctx, lobby)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateLobby(ctx context.Context, host model.Player) (*model.Lobby, error)
	GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error)
	JoinLobby(ctx context.Context, code model.LobbyCode, player model.Player) error
	LeaveLobby(ctx context.Context, code model.LobbyCode, playerID model.PlayerID) error
	SetRole(ctx context.Context, code model.LobbyCode, playerID model.PlayerID, role model.LobbyMemberRole) error
	TransferHost(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, newHostID model.PlayerID) error
	StartGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) (*model.Game, error)
	AbandonGame(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID) error
	CompleteGame(ctx context.Context, code model.LobbyCode) error
	UpdateConfig(ctx context.Context, code model.LobbyCode, requestingPlayer model.PlayerID, config model.LobbyConfig) error
}

var _ ControllerInterface = (*Controller)(nil)
