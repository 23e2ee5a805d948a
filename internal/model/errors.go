package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrNotInRoom     = errors.New("player is not in the room")
	ErrAlreadyInRoom = errors.New("player is already in the room")

	// Game lifecycle errors
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists for room")
	ErrWrongPhase        = errors.New("operation not allowed in current game phase")
	ErrNotEnoughPlayers  = errors.New("not enough players to start a game")
	ErrPlayersNotReady   = errors.New("not all players are ready")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Deck errors
	ErrDeckTooSmall = errors.New("deck too small for requested deal")
)
