package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		text string
		want Position
	}{
		{"a1", Position{Row: 7, Col: 0}},
		{"a8", Position{Row: 0, Col: 0}},
		{"h1", Position{Row: 7, Col: 7}},
		{"h8", Position{Row: 0, Col: 7}},
		{"e2", Position{Row: 6, Col: 4}},
		{"d5", Position{Row: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			pos, err := ParsePosition(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestParsePositionRejectsBadInput(t *testing.T) {
	for _, text := range []string{"", "e", "e22", "i4", "a0", "a9", "4e", "E2"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParsePosition(text)
			assert.ErrorIs(t, err, ErrInvalidPosition)
		})
	}
}

func TestPositionStringRoundTrips(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			parsed, err := ParsePosition(pos.String())
			require.NoError(t, err)
			assert.Equal(t, pos, parsed)
		}
	}
}

func TestNewBoardSetsUpHomeRanks(t *testing.T) {
	board := NewBoard()

	assert.Len(t, board.Pawns, 16)
	assert.Len(t, board.PawnsOf(White), 8)
	assert.Len(t, board.PawnsOf(Black), 8)

	for col := 0; col < BoardSize; col++ {
		white := board.At(Position{Row: 6, Col: col})
		require.NotNil(t, white)
		assert.Equal(t, White, white.Color)
		assert.True(t, white.OnStartRow())

		black := board.At(Position{Row: 1, Col: col})
		require.NotNil(t, black)
		assert.Equal(t, Black, black.Color)
		assert.True(t, black.OnStartRow())
	}
}

func TestBoardAtReturnsNilForEmptySquare(t *testing.T) {
	board := NewBoard()
	assert.Nil(t, board.At(Position{Row: 4, Col: 4}))
}

func TestBoardRemoveByIdentity(t *testing.T) {
	board := NewBoard()
	pawn := board.At(Position{Row: 6, Col: 0})
	require.NotNil(t, pawn)

	assert.True(t, board.Remove(pawn.ID))
	assert.Nil(t, board.At(Position{Row: 6, Col: 0}))
	assert.Nil(t, board.Get(pawn.ID))
	assert.Len(t, board.Pawns, 15)

	// Removing again is a no-op
	assert.False(t, board.Remove(pawn.ID))
}

func TestBoardGetByID(t *testing.T) {
	board := NewBoard()

	pawn := board.Get("w3")
	require.NotNil(t, pawn)
	assert.Equal(t, White, pawn.Color)
	assert.Equal(t, Position{Row: 6, Col: 2}, pawn.Position)

	assert.Nil(t, board.Get("nope"))
}

func TestBoardRender(t *testing.T) {
	board := NewBoard()
	rendered := board.Render()

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Contains(t, lines[1], "8 |")
	assert.Contains(t, lines[2], "B  B  B  B  B  B  B  B")
	assert.Contains(t, lines[7], "W  W  W  W  W  W  W  W")
	assert.Contains(t, lines[10], "a  b  c  d  e  f  g  h")
}

func TestColorDirections(t *testing.T) {
	assert.Equal(t, -1, White.Direction())
	assert.Equal(t, 1, Black.Direction())
	assert.Equal(t, 6, White.StartRow())
	assert.Equal(t, 1, Black.StartRow())
	assert.Equal(t, 0, White.BackRankRow())
	assert.Equal(t, 7, Black.BackRankRow())
	assert.Equal(t, Black, White.Opponent())
	assert.Equal(t, White, Black.Opponent())
}
