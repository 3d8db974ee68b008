package model

import (
	"fmt"
	"strings"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Position identifies a square on the board.
// Row 0 is rank 8 (black's home side), row 7 is rank 1 (white's home side).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ParsePosition parses a square in algebraic notation ("a1".."h8").
func ParsePosition(text string) (Position, error) {
	if len(text) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, text)
	}
	file := text[0]
	rank := text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, text)
	}
	return Position{
		Row: BoardSize - 1 - int(rank-'1'),
		Col: int(file - 'a'),
	}, nil
}

// String renders the square in algebraic notation
func (p Position) String() string {
	file := byte('a' + p.Col)
	rank := byte('1' + byte(BoardSize-1-p.Row))
	return string([]byte{file, rank})
}

// OnBoard returns true if both coordinates are within the 8x8 grid
func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by the given deltas. The result may be
// off the board; callers filter with OnBoard.
func (p Position) Offset(rowDelta, colDelta int) Position {
	return Position{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// Board holds the live pawns of a match. It is the single owner of pawn
// lifetime: a pawn removed from the board is gone from the game.
type Board struct {
	Pawns []*Pawn `json:"pawns"`
}

// NewBoard sets up the sixteen pawns on their home ranks
func NewBoard() *Board {
	b := &Board{}
	for col := 0; col < BoardSize; col++ {
		b.Pawns = append(b.Pawns,
			&Pawn{
				ID:       PawnID(fmt.Sprintf("w%d", col+1)),
				Color:    White,
				Position: Position{Row: White.StartRow(), Col: col},
			},
			&Pawn{
				ID:       PawnID(fmt.Sprintf("b%d", col+1)),
				Color:    Black,
				Position: Position{Row: Black.StartRow(), Col: col},
			},
		)
	}
	return b
}

// At returns the pawn occupying pos, or nil if the square is empty.
// Linear scan; there are at most sixteen pawns.
func (b *Board) At(pos Position) *Pawn {
	for _, p := range b.Pawns {
		if p.Position == pos {
			return p
		}
	}
	return nil
}

// Get returns the pawn with the given ID, or nil if it has been captured
func (b *Board) Get(id PawnID) *Pawn {
	for _, p := range b.Pawns {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PawnsOf returns the live pawns of one color
func (b *Board) PawnsOf(color Color) []*Pawn {
	var pawns []*Pawn
	for _, p := range b.Pawns {
		if p.Color == color {
			pawns = append(pawns, p)
		}
	}
	return pawns
}

// Remove deletes a pawn by identity and returns true if it was present
func (b *Board) Remove(id PawnID) bool {
	for i, p := range b.Pawns {
		if p.ID == id {
			b.Pawns = append(b.Pawns[:i], b.Pawns[i+1:]...)
			return true
		}
	}
	return false
}

// Contains returns true if the position lies within the board. Occupancy is
// not considered.
func (b *Board) Contains(pos Position) bool {
	return pos.OnBoard()
}

// Render produces a fixed-width text diagram with rank 8 at the top and file
// labels underneath
func (b *Board) Render() string {
	var sb strings.Builder
	sb.WriteString("   +-------------------------+\n")
	for row := 0; row < BoardSize; row++ {
		rank := BoardSize - row
		sb.WriteString(fmt.Sprintf(" %d |", rank))
		for col := 0; col < BoardSize; col++ {
			if p := b.At(Position{Row: row, Col: col}); p != nil {
				sb.WriteString(" " + p.Color.Code() + " ")
			} else {
				sb.WriteString(" . ")
			}
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("   +-------------------------+\n")
	sb.WriteString("     a  b  c  d  e  f  g  h\n")
	return sb.String()
}
