package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pawnchess-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// emptyBoard returns a board with no pawns on it
func (s *ServiceSuite) emptyBoard() *model.Board {
	return &model.Board{}
}

// place puts a pawn on the board at the given square
func (s *ServiceSuite) place(board *model.Board, id model.PawnID, color model.Color, square string) *model.Pawn {
	pos, err := model.ParsePosition(square)
	s.Require().NoError(err)
	pawn := &model.Pawn{ID: id, Color: color, Position: pos}
	board.Pawns = append(board.Pawns, pawn)
	return pawn
}

// moveStrings renders moves in coordinate notation for easy comparison
func moveStrings(moves []model.Move) []string {
	var out []string
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

// ValidMoves tests

func (s *ServiceSuite) TestStartRowPawnHasSingleAndDoubleAdvance() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e2")

	moves := s.service.ValidMoves(board, pawn)

	s.ElementsMatch([]string{"e2e3", "e2e4"}, moveStrings(moves))
}

func (s *ServiceSuite) TestAdvancedPawnHasSingleAdvanceOnly() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e4")

	moves := s.service.ValidMoves(board, pawn)

	s.ElementsMatch([]string{"e4e5"}, moveStrings(moves))
}

func (s *ServiceSuite) TestBlackPawnAdvancesTowardRankOne() {
	board := s.emptyBoard()
	pawn := s.place(board, "b4", model.Black, "d7")

	moves := s.service.ValidMoves(board, pawn)

	s.ElementsMatch([]string{"d7d6", "d7d5"}, moveStrings(moves))
}

func (s *ServiceSuite) TestStraightAdvanceBlockedByAnyPawn() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e4")
	s.place(board, "w4", model.White, "e5")

	s.Empty(s.service.ValidMoves(board, pawn))

	// An enemy blocker is no different
	board = s.emptyBoard()
	pawn = s.place(board, "w5", model.White, "e4")
	s.place(board, "b5", model.Black, "e5")

	s.Empty(s.service.ValidMoves(board, pawn))
}

func (s *ServiceSuite) TestDoubleAdvanceIgnoresBlockedIntermediateSquare() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e2")
	s.place(board, "b5", model.Black, "e3")

	moves := s.service.ValidMoves(board, pawn)

	// Only the destination square is checked, so the pawn may jump the
	// blocker.
	s.ElementsMatch([]string{"e2e4"}, moveStrings(moves))
}

func (s *ServiceSuite) TestDoubleAdvanceBlockedByOccupiedDestination() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e2")
	s.place(board, "b5", model.Black, "e4")

	moves := s.service.ValidMoves(board, pawn)

	s.ElementsMatch([]string{"e2e3"}, moveStrings(moves))
}

func (s *ServiceSuite) TestDiagonalCaptureRequiresEnemyOccupant() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e4")
	s.place(board, "b4", model.Black, "d5")
	s.place(board, "w6", model.White, "f5")

	moves := s.service.ValidMoves(board, pawn)

	s.ElementsMatch([]string{"e4e5", "e4d5"}, moveStrings(moves))
}

func (s *ServiceSuite) TestEdgePawnCandidatesStayOnBoard() {
	board := s.emptyBoard()
	pawn := s.place(board, "w1", model.White, "a4")
	s.place(board, "b2", model.Black, "b5")

	moves := s.service.ValidMoves(board, pawn)

	s.ElementsMatch([]string{"a4a5", "a4b5"}, moveStrings(moves))
}

func (s *ServiceSuite) TestPawnOnLastRankHasNoMoves() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e8")

	s.Empty(s.service.ValidMoves(board, pawn))
}

// Apply tests

func (s *ServiceSuite) TestApplyQuietMoveRelocatesPawn() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e2")

	move, _ := model.ParseMove("e2e4")
	captured := s.service.Apply(board, move)

	s.Nil(captured)
	s.Equal("e4", pawn.Position.String())
	s.Nil(board.At(move.From))
}

func (s *ServiceSuite) TestApplyCaptureRemovesOccupant() {
	board := s.emptyBoard()
	pawn := s.place(board, "w5", model.White, "e4")
	s.place(board, "b4", model.Black, "d5")

	move, _ := model.ParseMove("e4d5")
	captured := s.service.Apply(board, move)

	s.Require().NotNil(captured)
	s.Equal(model.PawnID("b4"), captured.ID)
	s.Nil(board.Get("b4"))
	s.Equal(pawn, board.At(move.To))
	s.Len(board.Pawns, 1)
}

func (s *ServiceSuite) TestApplyEnPassantRemovesTrackedVictim() {
	board := s.emptyBoard()
	white := s.place(board, "w4", model.White, "d5")
	s.place(board, "b5", model.Black, "e5")

	// Black just double-advanced to e5 alongside the white pawn; white
	// captures to the square the advance jumped over.
	move := model.Move{
		From:     white.Position,
		To:       model.Position{Row: 2, Col: 4}, // e6
		Captured: "b5",
	}
	captured := s.service.Apply(board, move)

	s.Require().NotNil(captured)
	s.Equal(model.PawnID("b5"), captured.ID)
	s.Nil(board.Get("b5"))
	s.Equal(white, board.At(move.To))
	s.Len(board.Pawns, 1)
}

// EnPassantOffers tests

func (s *ServiceSuite) TestDoubleAdvanceOpensOfferToAdjacentEnemy() {
	board := s.emptyBoard()
	s.place(board, "b4", model.Black, "d4")
	white := s.place(board, "w5", model.White, "e2")

	move, _ := model.ParseMove("e2e4")
	s.service.Apply(board, move)

	offers := s.service.EnPassantOffers(board, move, white)

	s.Require().Len(offers, 1)
	s.Equal("d4e3", offers[0].String())
	s.Equal(model.PawnID("w5"), offers[0].Captured)
}

func (s *ServiceSuite) TestDoubleAdvanceOpensOffersOnBothSides() {
	board := s.emptyBoard()
	s.place(board, "b4", model.Black, "d4")
	s.place(board, "b6", model.Black, "f4")
	white := s.place(board, "w5", model.White, "e2")

	move, _ := model.ParseMove("e2e4")
	s.service.Apply(board, move)

	offers := s.service.EnPassantOffers(board, move, white)

	s.ElementsMatch([]string{"d4e3", "f4e3"}, moveStrings(offers))
}

func (s *ServiceSuite) TestEnPassantNotOfferedToSameColor() {
	board := s.emptyBoard()
	s.place(board, "w4", model.White, "d4")
	white := s.place(board, "w5", model.White, "e2")

	move, _ := model.ParseMove("e2e4")
	s.service.Apply(board, move)

	s.Empty(s.service.EnPassantOffers(board, move, white))
}

func (s *ServiceSuite) TestSingleAdvanceOpensNoOffers() {
	board := s.emptyBoard()
	s.place(board, "b4", model.Black, "d3")
	white := s.place(board, "w5", model.White, "e2")

	move, _ := model.ParseMove("e2e3")
	s.service.Apply(board, move)

	s.Empty(s.service.EnPassantOffers(board, move, white))
}

// MovesFor / HasAnyMove tests

func (s *ServiceSuite) TestMovesForIncludesPendingOffers() {
	board := s.emptyBoard()
	s.place(board, "b4", model.Black, "d4")
	white := s.place(board, "w5", model.White, "e2")

	move, _ := model.ParseMove("e2e4")
	s.service.Apply(board, move)
	offers := s.service.EnPassantOffers(board, move, white)

	moves := s.service.MovesFor(board, model.Black, offers)

	s.Contains(moveStrings(moves), "d4e3")
	s.Contains(moveStrings(moves), "d4d3")
}

func (s *ServiceSuite) TestHasAnyMoveFalseWhenFullyBlocked() {
	board := s.emptyBoard()
	s.place(board, "w5", model.White, "e4")
	s.place(board, "b5", model.Black, "e5")

	// Head-to-head pawns with no diagonal targets: neither side can move
	s.False(s.service.HasAnyMove(board, model.White, nil))
	s.False(s.service.HasAnyMove(board, model.Black, nil))
}

func (s *ServiceSuite) TestHasAnyMoveTrueWithOnlyPendingOffer() {
	board := s.emptyBoard()
	s.place(board, "w4", model.White, "d4")
	s.place(board, "b5", model.Black, "d5")

	s.False(s.service.HasAnyMove(board, model.Black, nil))

	pending := []model.Move{{
		From:     model.Position{Row: 3, Col: 3}, // d5
		To:       model.Position{Row: 4, Col: 2}, // c4
		Captured: "w3",
	}}
	s.True(s.service.HasAnyMove(board, model.Black, pending))
}
