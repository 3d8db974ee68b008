package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/pawnchess-go/internal/model"
)

// Broadcaster pushes lobby and game updates to SSE clients as JSON events
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// memberPayload mirrors a lobby member for event data
type memberPayload struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsHost      bool   `json:"is_host"`
}

// memberUpdatePayload is the data for member-update events
type memberUpdatePayload struct {
	State   string          `json:"state"`
	Members []memberPayload `json:"members"`
}

// gameStartedPayload is the data for game-started events
type gameStartedPayload struct {
	GameID string `json:"game_id"`
	White  string `json:"white"`
	Black  string `json:"black"`
}

// movePlayedPayload is the data for move-played events
type movePlayedPayload struct {
	PlayerID  string `json:"player_id"`
	Move      string `json:"move"`
	Capture   bool   `json:"capture"`
	EnPassant bool   `json:"en_passant"`
	Board     string `json:"board"`
	State     string `json:"state"`
	NextTurn  string `json:"next_turn,omitempty"`
}

// gameCompletePayload is the data for game-complete events
type gameCompletePayload struct {
	Outcome string `json:"outcome"`
	Winner  string `json:"winner,omitempty"`
}

// BroadcastMemberUpdate broadcasts the current member list to all lobby clients
func (b *Broadcaster) BroadcastMemberUpdate(lobby *model.Lobby) {
	hub := b.hubManager.GetHub(lobby.Code)
	if hub == nil {
		return
	}

	members := make([]memberPayload, len(lobby.Members))
	for i, m := range lobby.Members {
		members[i] = memberPayload{
			PlayerID:    string(m.Player.ID),
			DisplayName: m.Player.DisplayName,
			Role:        string(m.Role),
			IsHost:      m.IsHost,
		}
	}
	b.broadcastJSON(hub, lobby.Code, "member-update", memberUpdatePayload{
		State:   string(lobby.State),
		Members: members,
	})
}

// BroadcastGameStarted broadcasts that a game has started with the color
// assignments
func (b *Broadcaster) BroadcastGameStarted(lobbyCode model.LobbyCode, game *model.Game) {
	hub := b.hubManager.GetHub(lobbyCode)
	if hub == nil {
		return
	}

	b.broadcastJSON(hub, lobbyCode, "game-started", gameStartedPayload{
		GameID: string(game.ID),
		White:  string(game.White),
		Black:  string(game.Black),
	})
}

// BroadcastMovePlayed broadcasts an accepted move along with the resulting
// board so clients can redraw without a refetch
func (b *Broadcaster) BroadcastMovePlayed(lobbyCode model.LobbyCode, game *model.Game, move model.Move, captured bool) {
	hub := b.hubManager.GetHub(lobbyCode)
	if hub == nil {
		return
	}

	payload := movePlayedPayload{
		Move:      move.String(),
		Capture:   captured,
		EnPassant: move.IsEnPassant(),
		Board:     game.Board.Render(),
		State:     string(game.State),
	}
	// The mover is whoever no longer holds the turn
	if game.State == model.GameStateInProgress {
		payload.PlayerID = string(game.PlayerOf(game.CurrentColor.Opponent()))
		payload.NextTurn = string(game.CurrentPlayer())
	} else {
		payload.PlayerID = string(game.PlayerOf(game.CurrentColor))
	}
	b.broadcastJSON(hub, lobbyCode, "move-played", payload)
}

// BroadcastGameComplete broadcasts a finished game's outcome
func (b *Broadcaster) BroadcastGameComplete(lobbyCode model.LobbyCode, game *model.Game) {
	hub := b.hubManager.GetHub(lobbyCode)
	if hub == nil {
		return
	}

	b.broadcastJSON(hub, lobbyCode, "game-complete", gameCompletePayload{
		Outcome: string(game.State),
		Winner:  string(game.Winner()),
	})
}

// BroadcastGameAbandoned broadcasts that the game has been abandoned
func (b *Broadcaster) BroadcastGameAbandoned(lobbyCode model.LobbyCode) {
	hub := b.hubManager.GetHub(lobbyCode)
	if hub == nil {
		return
	}

	hub.BroadcastEvent("game-abandoned", `{"reason":"abandoned"}`)
}

func (b *Broadcaster) broadcastJSON(hub *Hub, lobbyCode model.LobbyCode, eventName string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("sse failed to marshal event payload",
			slog.String("lobby", string(lobbyCode)),
			slog.String("event", eventName),
			slog.Any("error", err))
		return
	}
	hub.BroadcastEvent(eventName, string(data))
}
