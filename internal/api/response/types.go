package response

import (
	"time"

	"github.com/mcoot/pawnchess-go/internal/model"
	"github.com/mcoot/pawnchess-go/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// LobbyConfig represents lobby configuration
type LobbyConfig struct {
	HostColor string `json:"host_color"`
}

// LobbyConfigFromModel converts model.LobbyConfig
func LobbyConfigFromModel(c model.LobbyConfig) LobbyConfig {
	return LobbyConfig{
		HostColor: c.HostColor,
	}
}

// LobbyMember represents a lobby member
type LobbyMember struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsHost      bool   `json:"is_host"`
}

// LobbyMemberFromModel converts model.LobbyMember
func LobbyMemberFromModel(m model.LobbyMember) LobbyMember {
	return LobbyMember{
		PlayerID:    string(m.Player.ID),
		DisplayName: m.Player.DisplayName,
		Role:        string(m.Role),
		IsHost:      m.IsHost,
	}
}

// GameSummary represents a completed game summary
type GameSummary struct {
	ID          string    `json:"id"`
	Outcome     string    `json:"outcome"`
	Winner      *string   `json:"winner"`
	Moves       int       `json:"moves"`
	CompletedAt time.Time `json:"completed_at"`
}

// GameSummaryFromModel converts model.GameSummary
func GameSummaryFromModel(g model.GameSummary) GameSummary {
	var winner *string
	if g.Winner != "" {
		w := string(g.Winner)
		winner = &w
	}
	return GameSummary{
		ID:          string(g.ID),
		Outcome:     string(g.Outcome),
		Winner:      winner,
		Moves:       g.Moves,
		CompletedAt: g.CompletedAt,
	}
}

// Lobby represents a lobby in API responses
type Lobby struct {
	Code        string        `json:"code"`
	State       string        `json:"state"`
	Config      LobbyConfig   `json:"config"`
	Members     []LobbyMember `json:"members"`
	CurrentGame *string       `json:"current_game"`
	GameHistory []GameSummary `json:"game_history,omitempty"`
}

// LobbyFromModel converts model.Lobby
func LobbyFromModel(l *model.Lobby) Lobby {
	members := make([]LobbyMember, len(l.Members))
	for i, m := range l.Members {
		members[i] = LobbyMemberFromModel(m)
	}

	history := make([]GameSummary, len(l.GameHistory))
	for i, g := range l.GameHistory {
		history[i] = GameSummaryFromModel(g)
	}

	var currentGame *string
	if l.CurrentGame != nil {
		g := string(*l.CurrentGame)
		currentGame = &g
	}

	return Lobby{
		Code:        string(l.Code),
		State:       string(l.State),
		Config:      LobbyConfigFromModel(l.Config),
		Members:     members,
		CurrentGame: currentGame,
		GameHistory: history,
	}
}

// Board represents the game board. Cells holds "W"/"B" for occupied squares
// and empty strings for empty ones, row 0 at the top (rank 8); Render is a
// fixed-width text diagram of the same position.
type Board struct {
	Cells  [][]string `json:"cells"`
	Render string     `json:"render"`
}

// BoardFromModel converts model.Board to response Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]string, model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		cells[row] = make([]string, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			if p := b.At(model.Position{Row: row, Col: col}); p != nil {
				cells[row][col] = p.Color.Code()
			}
		}
	}
	return Board{Cells: cells, Render: b.Render()}
}

// GameState represents the current game state
type GameState struct {
	ID           string  `json:"id"`
	State        string  `json:"state"`
	White        string  `json:"white"`
	Black        string  `json:"black"`
	CurrentTurn  string  `json:"current_turn,omitempty"`
	CurrentColor string  `json:"current_color,omitempty"`
	MoveCount    int     `json:"move_count"`
	LastMove     *string `json:"last_move,omitempty"`
	Board        Board   `json:"board"`
	Winner       *string `json:"winner,omitempty"`
}

// GameStateFromModel converts model.Game to response GameState
func GameStateFromModel(g *model.Game) GameState {
	resp := GameState{
		ID:        string(g.ID),
		State:     string(g.State),
		White:     string(g.White),
		Black:     string(g.Black),
		MoveCount: g.MoveCount,
		Board:     BoardFromModel(g.Board),
	}

	if g.LastMove != nil {
		m := g.LastMove.String()
		resp.LastMove = &m
	}

	if g.IsOver() {
		if winner := g.Winner(); winner != "" {
			w := string(winner)
			resp.Winner = &w
		}
	} else {
		resp.CurrentTurn = string(g.CurrentPlayer())
		resp.CurrentColor = string(g.CurrentColor)
	}

	return resp
}

// MoveResponse is the response after playing a move
type MoveResponse struct {
	Move      string    `json:"move"`
	Capture   bool      `json:"capture"`
	EnPassant bool      `json:"en_passant"`
	Game      GameState `json:"game"`
}

// LegalMovesResponse lists the caller's legal moves in coordinate notation
type LegalMovesResponse struct {
	Moves []string `json:"moves"`
}
