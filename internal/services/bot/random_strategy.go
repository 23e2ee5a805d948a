package bot

import (
	"github.com/mcoot/palacegame-go/internal/dependencies/random"
	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/rules"
)

// RandomStrategy plays a uniformly random legal card, trying the hand
// first, then the face-up pile, then a blind face-down pick
type RandomStrategy struct {
	rulesService *rules.Service
	random       random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rulesService *rules.Service, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{
		rulesService: rulesService,
		random:       rnd,
	}
}

// ChoosePlay picks the bot's play in strict priority order: a random
// legal hand card, a random legal face-up card, a random face-down
// index. With none of those available the bot has no action.
func (s *RandomStrategy) ChoosePlay(state *model.GameState, player *model.Player) (Play, bool) {
	if legal := s.rulesService.LegalCards(player.Hand, state.DiscardPile); len(legal) > 0 {
		return Play{
			Source: model.PlaySourceHand,
			Card:   legal[s.random.Intn(len(legal))],
		}, true
	}

	if legal := s.rulesService.LegalCards(player.FaceUp, state.DiscardPile); len(legal) > 0 {
		return Play{
			Source: model.PlaySourceFaceUp,
			Card:   legal[s.random.Intn(len(legal))],
		}, true
	}

	// Blind pick; the strategy has no knowledge of the hidden ranks
	if len(player.FaceDown) > 0 {
		return Play{
			FaceDown:      true,
			FaceDownIndex: s.random.Intn(len(player.FaceDown)),
		}, true
	}

	return Play{}, false
}
