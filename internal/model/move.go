package model

import "fmt"

// Move describes a from-to transition. Captured is set only for en-passant
// moves and names the pawn removed from beside the destination square; for
// plain captures the victim is whatever occupies To at application time.
type Move struct {
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured PawnID   `json:"captured,omitempty"`
}

// ParseMove parses four-character coordinate notation ("e2e4") into a plain
// move
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	from, err := ParsePosition(text[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	to, err := ParsePosition(text[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrMalformedMove, text)
	}
	return Move{From: from, To: to}, nil
}

// String renders the move in coordinate notation
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// IsEnPassant returns true if the move carries an en-passant victim
func (m Move) IsEnPassant() bool {
	return m.Captured != ""
}

// IsDoubleAdvance returns true if the move is a straight two-row advance
func (m Move) IsDoubleAdvance() bool {
	if m.From.Col != m.To.Col {
		return false
	}
	delta := m.To.Row - m.From.Row
	return delta == 2 || delta == -2
}

// Equal compares the squares alone, so a plain parsed move matches an offered
// en-passant move to the same squares
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To
}
