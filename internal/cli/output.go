package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Lobby:
		o.printLobby(v)
	case LobbyConfig:
		o.printLobbyConfig(v)
	case GameState:
		o.printGameState(v)
	case MoveResult:
		o.printMoveResult(v)
	case LegalMoves:
		o.printLegalMoves(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Lobby response type
type Lobby struct {
	Code        string        `json:"code"`
	State       string        `json:"state"`
	Config      LobbyConfig   `json:"config"`
	Members     []LobbyMember `json:"members"`
	CurrentGame *string       `json:"current_game"`
	GameHistory []GameSummary `json:"game_history,omitempty"`
}

// LobbyConfig response type
type LobbyConfig struct {
	HostColor string `json:"host_color"`
}

// LobbyMember response type
type LobbyMember struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	IsHost      bool   `json:"is_host"`
}

// GameSummary response type
type GameSummary struct {
	ID      string  `json:"id"`
	Outcome string  `json:"outcome"`
	Winner  *string `json:"winner"`
	Moves   int     `json:"moves"`
}

// GameState response type
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

// Board response type
type Board struct {
	Cells  [][]string `json:"cells"`
	Render string     `json:"render"`
}

// MoveResult response type
type MoveResult struct {
	Move      string    `json:"move"`
	Capture   bool      `json:"capture"`
	EnPassant bool      `json:"en_passant"`
	Game      GameState `json:"game"`
}

// LegalMoves response type
type LegalMoves struct {
	Moves []string `json:"moves"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLobby(l Lobby) {
	fmt.Printf("Lobby: %s\n", l.Code)
	fmt.Printf("State: %s\n", l.State)
	fmt.Printf("Host Color: %s\n", l.Config.HostColor)
	if l.CurrentGame != nil {
		fmt.Printf("Current Game: %s\n", *l.CurrentGame)
	}
	fmt.Printf("Members (%d):\n", len(l.Members))
	for _, m := range l.Members {
		hostStr := ""
		if m.IsHost {
			hostStr = " [host]"
		}
		fmt.Printf("  - %s (%s) - %s%s\n", m.DisplayName, m.PlayerID, m.Role, hostStr)
	}
	if len(l.GameHistory) > 0 {
		fmt.Printf("Game History (%d):\n", len(l.GameHistory))
		for _, g := range l.GameHistory {
			winnerStr := ""
			if g.Winner != nil {
				winnerStr = fmt.Sprintf(", winner %s", *g.Winner)
			}
			fmt.Printf("  - %s: %s after %d moves%s\n", g.ID, g.Outcome, g.Moves, winnerStr)
		}
	}
}

func (o *Output) printLobbyConfig(c LobbyConfig) {
	fmt.Printf("Host Color: %s\n", c.HostColor)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("White: %s\n", g.White)
	fmt.Printf("Black: %s\n", g.Black)
	fmt.Printf("Moves Played: %d\n", g.MoveCount)

	if g.LastMove != nil {
		fmt.Printf("Last Move: %s\n", *g.LastMove)
	}
	if g.CurrentTurn != "" {
		fmt.Printf("To Move: %s (%s)\n", g.CurrentTurn, g.CurrentColor)
	}

	fmt.Println()
	o.printBoard(g.Board)

	if g.Winner != nil {
		fmt.Printf("\nWinner: %s\n", *g.Winner)
	}
}

func (o *Output) printBoard(b Board) {
	if b.Render != "" {
		fmt.Print(b.Render)
		return
	}

	for _, row := range b.Cells {
		for _, cell := range row {
			if cell == "" {
				fmt.Print(" . ")
			} else {
				fmt.Printf(" %s ", cell)
			}
		}
		fmt.Println()
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	desc := m.Move
	if m.EnPassant {
		desc += " (en passant)"
	} else if m.Capture {
		desc += " (capture)"
	}
	fmt.Printf("Played: %s\n\n", desc)
	o.printGameState(m.Game)
}

func (o *Output) printLegalMoves(l LegalMoves) {
	if len(l.Moves) == 0 {
		fmt.Println("No legal moves")
		return
	}
	fmt.Printf("Legal moves (%d): %s\n", len(l.Moves), strings.Join(l.Moves, " "))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
