package rules

import (
	"github.com/mcoot/pawnchess-go/internal/model"
)

// Service implements pawn movement legality and move application. It is
// stateless; all inputs come from the caller's board.
type Service struct{}

// New creates a new rules service
func New() *Service {
	return &Service{}
}

// ValidMoves returns the legal moves for a single pawn under current
// occupancy. En-passant captures are not generated here; they are opened by
// the opposing pawn's double advance and tracked on the game.
func (s *Service) ValidMoves(board *model.Board, pawn *model.Pawn) []model.Move {
	dir := pawn.Color.Direction()
	from := pawn.Position

	candidates := []model.Position{
		from.Offset(dir, 0),
		from.Offset(dir, -1),
		from.Offset(dir, 1),
	}
	if pawn.OnStartRow() {
		// The two-square advance checks only its destination, never the
		// square it jumps over.
		candidates = append(candidates, from.Offset(2*dir, 0))
	}

	var moves []model.Move
	for _, to := range candidates {
		if !board.Contains(to) {
			continue
		}
		occupant := board.At(to)
		if to.Col == from.Col {
			// Straight moves require an empty destination
			if occupant != nil {
				continue
			}
		} else {
			// Diagonal moves require an enemy occupant
			if occupant == nil || occupant.Color == pawn.Color {
				continue
			}
		}
		moves = append(moves, model.Move{From: from, To: to})
	}
	return moves
}

// Apply mutates the board: the en-passant victim (if any) is removed first,
// then any occupant of the destination, then the mover is relocated.
// Returns the captured pawn, or nil for a quiet move.
func (s *Service) Apply(board *model.Board, move model.Move) *model.Pawn {
	var captured *model.Pawn
	if move.IsEnPassant() {
		captured = board.Get(move.Captured)
		if captured != nil {
			board.Remove(captured.ID)
		}
	}
	if occupant := board.At(move.To); occupant != nil {
		captured = occupant
		board.Remove(occupant.ID)
	}
	if mover := board.At(move.From); mover != nil {
		mover.Position = move.To
	}
	return captured
}

// EnPassantOffers returns the capture moves opened for the opposing side by
// the move just applied. mover is the pawn now standing on move.To. Only a
// straight two-row advance opens offers, and only to enemy pawns standing
// directly alongside it.
func (s *Service) EnPassantOffers(board *model.Board, move model.Move, mover *model.Pawn) []model.Move {
	if !move.IsDoubleAdvance() {
		return nil
	}

	// The capture lands on the square the advance jumped over
	behind := move.To.Offset(-mover.Color.Direction(), 0)

	var offers []model.Move
	for _, colDelta := range []int{-1, 1} {
		adjacent := move.To.Offset(0, colDelta)
		if !board.Contains(adjacent) {
			continue
		}
		neighbor := board.At(adjacent)
		if neighbor == nil || neighbor.Color == mover.Color {
			continue
		}
		offers = append(offers, model.Move{
			From:     neighbor.Position,
			To:       behind,
			Captured: mover.ID,
		})
	}
	return offers
}

// MovesFor returns every legal move for one side: the pending en-passant
// offers plus each pawn's valid moves
func (s *Service) MovesFor(board *model.Board, color model.Color, pending []model.Move) []model.Move {
	moves := append([]model.Move{}, pending...)
	for _, pawn := range board.PawnsOf(color) {
		moves = append(moves, s.ValidMoves(board, pawn)...)
	}
	return moves
}

// HasAnyMove is the stalemate predicate: false when the side has no pending
// offer and no pawn with a valid move
func (s *Service) HasAnyMove(board *model.Board, color model.Color, pending []model.Move) bool {
	if len(pending) > 0 {
		return true
	}
	for _, pawn := range board.PawnsOf(color) {
		if len(s.ValidMoves(board, pawn)) > 0 {
			return true
		}
	}
	return false
}
