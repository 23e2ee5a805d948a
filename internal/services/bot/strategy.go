package bot

import "github.com/mcoot/palacegame-go/internal/model"

// Play is the card choice a strategy makes for one turn. Open plays
// name a source pile and a card; blind plays name a face-down index.
type Play struct {
	Source model.PlaySource
	Card   model.Card

	FaceDown      bool
	FaceDownIndex int
}

// Strategy defines how a bot chooses its play each turn
type Strategy interface {
	// ChoosePlay picks a play for the given player, or reports false
	// when the player has no possible action
	ChoosePlay(state *model.GameState, player *model.Player) (Play, bool)
}
