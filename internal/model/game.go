package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Match underway
	GameStateWhiteWon   GameState = "white_won"   // White reached the back rank or captured out black
	GameStateBlackWon   GameState = "black_won"   // Black reached the back rank or captured out white
	GameStateStalemate  GameState = "stalemate"   // Side to move has no legal move
	GameStateAbandoned  GameState = "abandoned"   // Game was cancelled
)

// Game represents a single pawn chess match
type Game struct {
	ID        GameID
	LobbyCode LobbyCode
	State     GameState

	// Players keyed by color (snapshot at game start)
	White PlayerID
	Black PlayerID

	Board *Board

	// Turn management
	CurrentColor Color
	MoveCount    int

	// En-passant offers opened by the immediately preceding two-square
	// advance. Replaced wholesale on every accepted move; an offer never
	// survives past the turn after it was created.
	PendingEnPassant []Move

	LastMove *Move

	// Timing
	TurnStartedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOver returns true once the game has reached a terminal state
func (g *Game) IsOver() bool {
	return g.State != GameStateInProgress
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() PlayerID {
	return g.PlayerOf(g.CurrentColor)
}

// PlayerOf returns the player holding the given color
func (g *Game) PlayerOf(color Color) PlayerID {
	if color == White {
		return g.White
	}
	return g.Black
}

// ColorOf returns the color held by the given player, and false if the
// player is not in the game
func (g *Game) ColorOf(playerID PlayerID) (Color, bool) {
	switch playerID {
	case g.White:
		return White, true
	case g.Black:
		return Black, true
	default:
		return "", false
	}
}

// Players returns both player IDs, white first
func (g *Game) Players() []PlayerID {
	return []PlayerID{g.White, g.Black}
}

// Winner returns the winning player for a won game, or empty for any other
// state
func (g *Game) Winner() PlayerID {
	switch g.State {
	case GameStateWhiteWon:
		return g.White
	case GameStateBlackWon:
		return g.Black
	default:
		return ""
	}
}

// GameSummary is a lightweight record of a finished game
type GameSummary struct {
	ID          GameID
	Outcome     GameState
	Winner      PlayerID // Empty for stalemate or abandonment
	Moves       int
	CompletedAt time.Time
}
