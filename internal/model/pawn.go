package model

// Color identifies a side
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Direction returns the row delta for a forward move: white pawns travel
// toward row 0, black pawns toward row 7.
func (c Color) Direction() int {
	if c == White {
		return -1
	}
	return 1
}

// StartRow returns the home rank's row index for this side
func (c Color) StartRow() int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// BackRankRow returns the opponent's home row. A pawn reaching it wins
// the game.
func (c Color) BackRankRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// Code returns the one-letter code used in board diagrams
func (c Color) Code() string {
	if c == White {
		return "W"
	}
	return "B"
}

// PawnID uniquely identifies a pawn for its whole lifetime ("w1".."w8",
// "b1".."b8")
type PawnID string

// Pawn is a live piece. Pawns have identity: the board tracks them by ID and
// removal is by ID, never by value.
type Pawn struct {
	ID       PawnID   `json:"id"`
	Color    Color    `json:"color"`
	Position Position `json:"position"`
}

// OnStartRow returns true if the pawn still stands on its home rank
func (p *Pawn) OnStartRow() bool {
	return p.Position.Row == p.Color.StartRow()
}

// ReachedBackRank returns true if the pawn stands on the opponent's home rank
func (p *Pawn) ReachedBackRank() bool {
	return p.Position.Row == p.Color.BackRankRow()
}
