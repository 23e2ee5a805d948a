package model

import "time"

// RoomID identifies the room a game is attached to. Room IDs are
// minted by the external room service; the engine only keys state by
// them.
type RoomID string

// Room is the lobby-side record a game belongs to. Room creation,
// membership, persistence and expiry live outside the engine; the
// engine reads rooms to validate seating and writes status back so
// lobby listings stay consistent with the game phase.
type Room struct {
	ID         RoomID
	Name       string
	HostID     PlayerID
	MemberIDs  []PlayerID // Human players in join order
	MaxPlayers int
	NumBots    int // Automated seats appended after the humans
	Status     GameStatus
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// HasMember reports whether the given player has joined the room
func (r *Room) HasMember(playerID PlayerID) bool {
	for _, id := range r.MemberIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// Seats returns the number of seats the room's game will have
func (r *Room) Seats() int {
	return len(r.MemberIDs) + r.NumBots
}
