package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Lobby errors
	ErrLobbyNotFound       = errors.New("lobby not found")
	ErrLobbyFull           = errors.New("lobby is full")
	ErrAlreadyInLobby      = errors.New("player is already in lobby")
	ErrNotInLobby          = errors.New("player is not in lobby")
	ErrNotHost             = errors.New("player is not the host")
	ErrGameInProgress      = errors.New("game is in progress")
	ErrNoGameInProgress    = errors.New("no game in progress")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrInvalidHostColor    = errors.New("invalid host color")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrNotPlayerTurn   = errors.New("not this player's turn")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrMalformedMove   = errors.New("malformed move")
	ErrNoPawnAtSquare  = errors.New("no pawn of yours on that square")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameComplete    = errors.New("game is already complete")
	ErrGameAbandoned   = errors.New("game has been abandoned")
)
