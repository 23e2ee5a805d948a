package swap

import (
	"maps"

	"github.com/mcoot/palacegame-go/internal/model"
)

// Service handles the pre-game swap phase, where players rearrange
// their hand and face-up piles before committing to play
type Service struct{}

// New creates a new swap Service
func New() *Service {
	return &Service{}
}

// SwapAndReady applies a player's rearrangement of their hand and
// face-up piles. The new split must hold exactly the cards the player
// already has across both piles, duplicates counted. Any violation
// returns false with no mutation. Success overwrites both piles and
// marks the player ready.
func (s *Service) SwapAndReady(state *model.GameState, playerID model.PlayerID, newHand, newFaceUp []model.Card) bool {
	if state.Status != model.GameStatusSwapping {
		return false
	}

	player := state.FindPlayer(playerID)
	if player == nil {
		return false
	}

	if !maps.Equal(cardCounts(newHand, newFaceUp), cardCounts(player.Hand, player.FaceUp)) {
		return false
	}

	player.Hand = newHand
	player.FaceUp = newFaceUp
	player.IsReady = true
	return true
}

// AllPlayersReady reports whether every player has committed their swap
func (s *Service) AllPlayersReady(state *model.GameState) bool {
	for _, p := range state.Players {
		if !p.IsReady {
			return false
		}
	}
	return true
}

func cardCounts(piles ...[]model.Card) map[model.Card]int {
	counts := make(map[model.Card]int)
	for _, pile := range piles {
		for _, c := range pile {
			counts[c]++
		}
	}
	return counts
}

// Interface for dependency injection
type ServiceInterface interface {
	SwapAndReady(state *model.GameState, playerID model.PlayerID, newHand, newFaceUp []model.Card) bool
	AllPlayersReady(state *model.GameState) bool
}

var _ ServiceInterface = (*Service)(nil)
