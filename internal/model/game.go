package model

import "time"

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusWaiting  GameStatus = "waiting"  // Room open, cards not yet dealt
	GameStatusSwapping GameStatus = "swapping" // Players arranging hand and face-up cards
	GameStatusPlaying  GameStatus = "playing"  // Turns in progress
	GameStatusEnded    GameStatus = "ended"    // A player has shed every card
)

// PlaySource names the pile a card is played from
type PlaySource string

const (
	PlaySourceHand   PlaySource = "hand"
	PlaySourceFaceUp PlaySource = "face_up"
)

// PlayResult describes the outcome of a play attempt
type PlayResult string

const (
	PlayResultSuccess     PlayResult = "success"      // Card accepted, turn advanced
	PlayResultIllegalCard PlayResult = "illegal_card" // Rejected, nothing changed
	PlayResultMustPickup  PlayResult = "must_pickup"  // No legal option, pile picked up
	PlayResultGameOver    PlayResult = "game_over"    // Card accepted and won the game
)

// GameState is the full authoritative state of one game. Deck and
// discard pile are stacks whose top is the end of the slice.
type GameState struct {
	RoomID             RoomID     `json:"room_id"`
	Players            []*Player  `json:"players"`
	CurrentPlayerIndex int        `json:"current_player_index"`
	Deck               []Card     `json:"deck"`
	DiscardPile        []Card     `json:"discard_pile"`
	Status             GameStatus `json:"game_status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CurrentPlayer returns the player whose turn it is, or nil for a game
// with no players
func (g *GameState) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.CurrentPlayerIndex]
}

// FindPlayer returns the player with the given ID, or nil if absent
func (g *GameState) FindPlayer(playerID PlayerID) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// CardsInPlay counts every card across the deck, the discard pile and
// all player piles
func (g *GameState) CardsInPlay() int {
	n := len(g.Deck) + len(g.DiscardPile)
	for _, p := range g.Players {
		n += len(p.Hand) + len(p.FaceUp) + len(p.FaceDown)
	}
	return n
}
