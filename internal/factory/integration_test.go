package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pawnchess-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) createPlayer(id, name string) model.Player {
	return model.Player{
		ID:          model.PlayerID(id),
		DisplayName: name,
		IsGuest:     true,
		CreatedAt:   s.app.MockClock.Now(),
	}
}

// setupMatch creates a lobby with the host playing white and a second seated
// player, and starts a game
func (s *IntegrationSuite) setupMatch(host, opponent model.Player) (*model.Lobby, *model.Game) {
	s.app.MockRandom.QueueString("LOBBY1", "GAME01")

	lobby, err := s.app.LobbyController.CreateLobby(s.ctx, host)
	s.Require().NoError(err)
	s.Require().NoError(s.app.LobbyController.JoinLobby(s.ctx, lobby.Code, opponent))
	s.Require().NoError(s.app.LobbyController.UpdateConfig(s.ctx, lobby.Code, host.ID,
		model.LobbyConfig{HostColor: model.HostColorWhite}))

	game, err := s.app.LobbyController.StartGame(s.ctx, lobby.Code, host.ID)
	s.Require().NoError(err)
	return lobby, game
}

// Test: Complete match from lobby creation through a back-rank win
func (s *IntegrationSuite) TestCompleteGameFlow() {
	host := s.createPlayer("host", "Host Player")
	opponent := s.createPlayer("player2", "Player Two")
	lobby, game := s.setupMatch(host, opponent)

	s.Equal(model.LobbyCode("LOBBY1"), lobby.Code)
	s.Equal(model.GameStateInProgress, game.State)
	s.Equal(host.ID, game.White)
	s.Equal(opponent.ID, game.Black)

	// White marches up the b-file via captures and wins on b8
	moves := []struct {
		player model.PlayerID
		move   string
	}{
		{host.ID, "e2e4"}, {opponent.ID, "d7d5"},
		{host.ID, "e4d5"}, {opponent.ID, "c7c6"},
		{host.ID, "d5c6"}, {opponent.ID, "a7a6"},
		{host.ID, "c6b7"}, {opponent.ID, "a6a5"},
		{host.ID, "b7b8"},
	}
	for _, m := range moves {
		_, err := s.app.GameController.SubmitMove(s.ctx, game.ID, m.player, m.move)
		s.Require().NoError(err, "move %s by %s", m.move, m.player)
	}

	// Game is won by white reaching the back rank
	finished, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateWhiteWon, finished.State)
	s.Equal(host.ID, finished.Winner())
	s.Equal(9, finished.MoveCount)

	// Record the result and reopen the lobby
	s.Require().NoError(s.app.LobbyController.CompleteGame(s.ctx, lobby.Code))

	updatedLobby, err := s.app.LobbyController.GetLobby(s.ctx, lobby.Code)
	s.Require().NoError(err)
	s.Equal(model.LobbyStateWaiting, updatedLobby.State)
	s.Nil(updatedLobby.CurrentGame)
	s.Require().Len(updatedLobby.GameHistory, 1)
	s.Equal(model.GameStateWhiteWon, updatedLobby.GameHistory[0].Outcome)
	s.Equal(host.ID, updatedLobby.GameHistory[0].Winner)
}

// Test: En-passant capture across the full stack
func (s *IntegrationSuite) TestEnPassantFlow() {
	host := s.createPlayer("host", "Host")
	opponent := s.createPlayer("player2", "Player Two")
	_, game := s.setupMatch(host, opponent)

	setup := []struct {
		player model.PlayerID
		move   string
	}{
		{host.ID, "e2e4"}, {opponent.ID, "a7a6"},
		{host.ID, "e4e5"}, {opponent.ID, "d7d5"},
	}
	for _, m := range setup {
		_, err := s.app.GameController.SubmitMove(s.ctx, game.ID, m.player, m.move)
		s.Require().NoError(err)
	}

	// The double advance past e5 opened an en-passant capture to d6
	moves, err := s.app.GameController.LegalMoves(s.ctx, game.ID, host.ID)
	s.Require().NoError(err)
	found := false
	for _, m := range moves {
		if m.String() == "e5d6" {
			found = true
			s.True(m.IsEnPassant())
		}
	}
	s.True(found, "en-passant capture should be offered")

	result, err := s.app.GameController.SubmitMove(s.ctx, game.ID, host.ID, "e5d6")
	s.Require().NoError(err)
	s.Require().NotNil(result.Captured)
	s.Equal(model.Black, result.Captured.Color)

	// The victim on d5 is gone and the capturing pawn stands on d6
	updated, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	d5, _ := model.ParsePosition("d5")
	d6, _ := model.ParsePosition("d6")
	s.Nil(updated.Board.At(d5))
	s.Require().NotNil(updated.Board.At(d6))
	s.Equal(model.White, updated.Board.At(d6).Color)
}

// Test: A seated player leaving mid-game forfeits to the opponent
func (s *IntegrationSuite) TestPlayerLeavesDuringGameForfeits() {
	host := s.createPlayer("host", "Host")
	opponent := s.createPlayer("player2", "Player Two")
	lobby, game := s.setupMatch(host, opponent)

	err := s.app.LobbyController.LeaveLobby(s.ctx, lobby.Code, opponent.ID)
	s.Require().NoError(err)

	// Black left, so white wins by forfeit
	finished, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateWhiteWon, finished.State)

	updatedLobby, err := s.app.LobbyController.GetLobby(s.ctx, lobby.Code)
	s.Require().NoError(err)
	s.Equal(model.LobbyStateWaiting, updatedLobby.State)
	s.Nil(updatedLobby.CurrentGame)
	s.Require().Len(updatedLobby.GameHistory, 1)
	s.Equal(host.ID, updatedLobby.GameHistory[0].Winner)
}

// Test: All players leaving abandons the game and deletes the lobby
func (s *IntegrationSuite) TestAllPlayersLeaveDeletesLobby() {
	host := s.createPlayer("host", "Host")
	opponent := s.createPlayer("player2", "Player Two")
	lobby, _ := s.setupMatch(host, opponent)

	_ = s.app.LobbyController.LeaveLobby(s.ctx, lobby.Code, host.ID)
	_ = s.app.LobbyController.LeaveLobby(s.ctx, lobby.Code, opponent.ID)

	_, err := s.app.LobbyController.GetLobby(s.ctx, lobby.Code)
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

// Test: Joining mid-game makes a spectator; a seat opens only when a player
// leaves
func (s *IntegrationSuite) TestSpectatorFlowDuringGame() {
	host := s.createPlayer("host", "Host")
	opponent := s.createPlayer("player2", "Player Two")
	lobby, _ := s.setupMatch(host, opponent)

	spectator := s.createPlayer("spectator", "Spectator")
	s.Require().NoError(s.app.LobbyController.JoinLobby(s.ctx, lobby.Code, spectator))

	updatedLobby, _ := s.app.LobbyController.GetLobby(s.ctx, lobby.Code)
	s.Equal(model.RoleSpectator, updatedLobby.GetMember(spectator.ID).Role)

	// Roles are frozen while the game runs
	err := s.app.LobbyController.SetRole(s.ctx, lobby.Code, spectator.ID, model.RolePlayer)
	s.ErrorIs(err, model.ErrGameInProgress)

	s.Require().NoError(s.app.LobbyController.AbandonGame(s.ctx, lobby.Code, host.ID))

	// Both seats are still taken
	err = s.app.LobbyController.SetRole(s.ctx, lobby.Code, spectator.ID, model.RolePlayer)
	s.ErrorIs(err, model.ErrLobbyFull)

	// A seat opens once the opponent leaves
	s.Require().NoError(s.app.LobbyController.LeaveLobby(s.ctx, lobby.Code, opponent.ID))
	s.Require().NoError(s.app.LobbyController.SetRole(s.ctx, lobby.Code, spectator.ID, model.RolePlayer))

	updatedLobby, _ = s.app.LobbyController.GetLobby(s.ctx, lobby.Code)
	s.Equal(model.RolePlayer, updatedLobby.GetMember(spectator.ID).Role)
}

// Test: Host transfer hands over start/abandon rights
func (s *IntegrationSuite) TestHostTransfer() {
	s.app.MockRandom.QueueString("LOBBY1")

	host := s.createPlayer("host", "Host")
	player2 := s.createPlayer("player2", "Player Two")

	lobby, _ := s.app.LobbyController.CreateLobby(s.ctx, host)
	_ = s.app.LobbyController.JoinLobby(s.ctx, lobby.Code, player2)
	s.Require().NoError(s.app.LobbyController.UpdateConfig(s.ctx, lobby.Code, host.ID,
		model.LobbyConfig{HostColor: model.HostColorWhite}))

	// Transfer host to player2
	s.Require().NoError(s.app.LobbyController.TransferHost(s.ctx, lobby.Code, host.ID, player2.ID))

	// Original host can no longer start a game
	_, err := s.app.LobbyController.StartGame(s.ctx, lobby.Code, host.ID)
	s.ErrorIs(err, model.ErrNotHost)

	// New host can, and plays white
	s.app.MockRandom.QueueString("GAME01")
	game, err := s.app.LobbyController.StartGame(s.ctx, lobby.Code, player2.ID)
	s.Require().NoError(err)
	s.Equal(player2.ID, game.White)

	// A spectator cannot abandon
	spectator := s.createPlayer("spectator", "Spectator")
	s.Require().NoError(s.app.LobbyController.JoinLobby(s.ctx, lobby.Code, spectator))
	err = s.app.LobbyController.AbandonGame(s.ctx, lobby.Code, spectator.ID)
	s.ErrorIs(err, model.ErrNotHost)

	// The new host can
	s.Require().NoError(s.app.LobbyController.AbandonGame(s.ctx, lobby.Code, player2.ID))
}

// Test: Random color assignment consumes the random source
func (s *IntegrationSuite) TestRandomColorAssignment() {
	s.app.MockRandom.QueueString("LOBBY1")

	host := s.createPlayer("host", "Host")
	player2 := s.createPlayer("player2", "Player Two")

	lobby, _ := s.app.LobbyController.CreateLobby(s.ctx, host)
	_ = s.app.LobbyController.JoinLobby(s.ctx, lobby.Code, player2)

	// Default config is random; 1 means the host takes black
	s.app.MockRandom.QueueIntn(1)
	s.app.MockRandom.QueueString("GAME01")
	game, err := s.app.LobbyController.StartGame(s.ctx, lobby.Code, host.ID)
	s.Require().NoError(err)
	s.Equal(player2.ID, game.White)
	s.Equal(host.ID, game.Black)
}

// Test: Multiple games in same lobby accumulate history
func (s *IntegrationSuite) TestMultipleGamesInLobby() {
	host := s.createPlayer("host", "Host")
	opponent := s.createPlayer("player2", "Player Two")
	lobby, game1 := s.setupMatch(host, opponent)

	s.Require().NoError(s.app.LobbyController.AbandonGame(s.ctx, lobby.Code, host.ID))

	s.app.MockRandom.QueueString("GAME02")
	game2, err := s.app.LobbyController.StartGame(s.ctx, lobby.Code, host.ID)
	s.Require().NoError(err)
	s.NotEqual(game1.ID, game2.ID)

	s.Require().NoError(s.app.LobbyController.AbandonGame(s.ctx, lobby.Code, host.ID))

	updatedLobby, _ := s.app.LobbyController.GetLobby(s.ctx, lobby.Code)
	s.Require().Len(updatedLobby.GameHistory, 2)
	s.Equal(game1.ID, updatedLobby.GameHistory[0].ID)
	s.Equal(game2.ID, updatedLobby.GameHistory[1].ID)
	s.Equal(model.GameStateAbandoned, updatedLobby.GameHistory[0].Outcome)
}
