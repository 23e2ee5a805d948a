package game

import (
	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/rules"
)

// Controller manages the in-play state machine: card plays, forced
// pickups, turn advancement and game-over detection. All operations
// mutate the given state in memory; persistence and per-room
// serialization are the caller's responsibility.
type Controller struct {
	rulesService *rules.Service
}

// NewController creates a new turn Controller
func NewController(rulesService *rules.Service) *Controller {
	return &Controller{
		rulesService: rulesService,
	}
}

// PlayCard attempts to play a card from the player's hand or face-up
// pile. An illegal card is rejected outright while the pile still holds
// a legal option; with no legal option the player picks up the whole
// discard pile instead. A winning play ends the game without advancing
// the turn.
func (c *Controller) PlayCard(state *model.GameState, playerID model.PlayerID, card model.Card, source model.PlaySource) model.PlayResult {
	if state.Status != model.GameStatusPlaying {
		return model.PlayResultIllegalCard
	}

	player := state.FindPlayer(playerID)
	if player == nil {
		return model.PlayResultIllegalCard
	}

	pile := player.Pile(source)
	idx := indexOfCard(pile, card)
	if idx == -1 {
		return model.PlayResultIllegalCard
	}

	if !c.rulesService.IsLegalPlay(card, state.DiscardPile) {
		if c.rulesService.HasLegalPlay(pile, state.DiscardPile) {
			// A legal option exists, so the caller must pick it
			return model.PlayResultIllegalCard
		}

		// Nothing in the pile is playable
		c.PickupDiscardPile(state, playerID)
		c.AdvanceTurn(state)
		return model.PlayResultMustPickup
	}

	removeFromPile(player, source, idx)
	state.DiscardPile = append(state.DiscardPile, card)

	if _, over := c.CheckGameOver(state); over {
		return model.PlayResultGameOver
	}

	c.AdvanceTurn(state)
	return model.PlayResultSuccess
}

// PlayFaceDownCard plays the face-down card at the given index blind.
// The card is revealed first; if it is illegal it joins the player's
// hand along with the whole discard pile and the turn still advances.
func (c *Controller) PlayFaceDownCard(state *model.GameState, playerID model.PlayerID, index int) model.PlayResult {
	if state.Status != model.GameStatusPlaying {
		return model.PlayResultIllegalCard
	}

	player := state.FindPlayer(playerID)
	if player == nil {
		return model.PlayResultIllegalCard
	}

	if index < 0 || index >= len(player.FaceDown) {
		return model.PlayResultIllegalCard
	}

	card := player.FaceDown[index]
	player.FaceDown = append(player.FaceDown[:index], player.FaceDown[index+1:]...)

	if !c.rulesService.IsLegalPlay(card, state.DiscardPile) {
		// The revealed card goes to the hand before the pickup
		player.Hand = append(player.Hand, card)
		c.PickupDiscardPile(state, playerID)
		c.AdvanceTurn(state)
		return model.PlayResultMustPickup
	}

	state.DiscardPile = append(state.DiscardPile, card)

	if _, over := c.CheckGameOver(state); over {
		return model.PlayResultGameOver
	}

	c.AdvanceTurn(state)
	return model.PlayResultSuccess
}

// PickupDiscardPile moves the entire discard pile into the player's
// hand. Returns false without mutating anything if the pile is already
// empty, the game is not in play, or the player is unknown.
func (c *Controller) PickupDiscardPile(state *model.GameState, playerID model.PlayerID) bool {
	if state.Status != model.GameStatusPlaying {
		return false
	}

	player := state.FindPlayer(playerID)
	if player == nil {
		return false
	}

	if len(state.DiscardPile) == 0 {
		return false
	}

	player.Hand = append(player.Hand, state.DiscardPile...)
	state.DiscardPile = nil
	return true
}

// DrawCard moves the top card of the deck into the player's hand
// without advancing the turn. Returns false if the deck is empty, the
// game is not in play, or the player is unknown.
func (c *Controller) DrawCard(state *model.GameState, playerID model.PlayerID) bool {
	if state.Status != model.GameStatusPlaying {
		return false
	}

	player := state.FindPlayer(playerID)
	if player == nil {
		return false
	}

	if len(state.Deck) == 0 {
		return false
	}

	card := state.Deck[len(state.Deck)-1]
	state.Deck = state.Deck[:len(state.Deck)-1]
	player.Hand = append(player.Hand, card)
	return true
}

// CheckGameOver scans players in seating order for one who has shed
// every card, and ends the game on a hit.
func (c *Controller) CheckGameOver(state *model.GameState) (model.PlayerID, bool) {
	for _, p := range state.Players {
		if p.OutOfCards() {
			state.Status = model.GameStatusEnded
			return p.ID, true
		}
	}
	return "", false
}

// AdvanceTurn moves play to the next seat in order, wrapping at the
// end. Running an automated seat's turn is the caller's loop, not a
// side effect here.
func (c *Controller) AdvanceTurn(state *model.GameState) {
	state.CurrentPlayerIndex = (state.CurrentPlayerIndex + 1) % len(state.Players)
}

func indexOfCard(pile []model.Card, card model.Card) int {
	for i, c := range pile {
		if c == card {
			return i
		}
	}
	return -1
}

func removeFromPile(player *model.Player, source model.PlaySource, idx int) {
	switch source {
	case model.PlaySourceHand:
		player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	case model.PlaySourceFaceUp:
		player.FaceUp = append(player.FaceUp[:idx], player.FaceUp[idx+1:]...)
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	PlayCard(state *model.GameState, playerID model.PlayerID, card model.Card, source model.PlaySource) model.PlayResult
	PlayFaceDownCard(state *model.GameState, playerID model.PlayerID, index int) model.PlayResult
	PickupDiscardPile(state *model.GameState, playerID model.PlayerID) bool
	DrawCard(state *model.GameState, playerID model.PlayerID) bool
	CheckGameOver(state *model.GameState) (model.PlayerID, bool)
	AdvanceTurn(state *model.GameState)
}

var _ ControllerInterface = (*Controller)(nil)
