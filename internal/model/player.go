package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is one seat in a game, holding the three piles a player sheds
// over the course of a round
type Player struct {
	ID   PlayerID `json:"player_id"`
	Name string   `json:"name"`

	Hand     []Card `json:"hand"`      // Visible only to the owner
	FaceUp   []Card `json:"face_up"`   // Visible to everyone
	FaceDown []Card `json:"face_down"` // Hidden from everyone, owner included

	IsBot       bool        `json:"is_bot"`
	BotStrategy BotStrategy `json:"bot_strategy,omitempty"` // Empty for humans
	IsReady     bool        `json:"is_ready"`               // Set once the player commits their swap
	Score       int         `json:"score"`
}

// OutOfCards reports whether the player has emptied all three piles
func (p *Player) OutOfCards() bool {
	return len(p.Hand) == 0 && len(p.FaceUp) == 0 && len(p.FaceDown) == 0
}

// Pile returns the playable pile named by source, or nil for an
// unknown source. The returned slice aliases the player's pile; it is
// for inspection, mutation goes through the turn controller.
func (p *Player) Pile(source PlaySource) []Card {
	switch source {
	case PlaySourceHand:
		return p.Hand
	case PlaySourceFaceUp:
		return p.FaceUp
	default:
		return nil
	}
}
