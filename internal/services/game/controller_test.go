package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/rules"
)

type ControllerSuite struct {
	suite.Suite
	controller *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.controller = NewController(rules.New())
}

func card(rank model.Rank) model.Card {
	return model.Card{Suit: model.SuitSpades, Rank: rank}
}

func pile(ranks ...model.Rank) []model.Card {
	cards := make([]model.Card, 0, len(ranks))
	for _, r := range ranks {
		cards = append(cards, card(r))
	}
	return cards
}

func playingState(players ...*model.Player) *model.GameState {
	return &model.GameState{
		RoomID:  "room-1",
		Players: players,
		Status:  model.GameStatusPlaying,
	}
}

// PlayCard tests

func (s *ControllerSuite) TestPlayCardLegalAdvancesTurn() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankNine, model.RankFour)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankSix)

	result := s.controller.PlayCard(state, "p1", card(model.RankNine), model.PlaySourceHand)

	s.Equal(model.PlayResultSuccess, result)
	s.Equal(pile(model.RankFour), state.Players[0].Hand)
	s.Equal(pile(model.RankSix, model.RankNine), state.DiscardPile)
	s.Equal(1, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayCardFromFaceUp() {
	state := playingState(
		&model.Player{ID: "p1", FaceUp: pile(model.RankAce, model.RankFour)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankTen)

	result := s.controller.PlayCard(state, "p1", card(model.RankAce), model.PlaySourceFaceUp)

	s.Equal(model.PlayResultSuccess, result)
	s.Equal(pile(model.RankFour), state.Players[0].FaceUp)
	s.Equal(card(model.RankAce), state.DiscardPile[len(state.DiscardPile)-1])
}

func (s *ControllerSuite) TestPlayCardSpecialRankOnHighTop() {
	for _, rank := range []model.Rank{model.RankTwo, model.RankThree, model.RankTen} {
		state := playingState(
			&model.Player{ID: "p1", Hand: pile(rank)},
			&model.Player{ID: "p2", Hand: pile(model.RankKing)},
			&model.Player{ID: "p3", Hand: pile(model.RankKing)},
		)
		state.DiscardPile = pile(model.RankKing)

		result := s.controller.PlayCard(state, "p1", card(rank), model.PlaySourceHand)
		s.NotEqual(model.PlayResultIllegalCard, result, "%s should be playable on a king", rank)
	}
}

func (s *ControllerSuite) TestPlayCardLowerCardOnSevenSucceeds() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFive, model.RankNine)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankSeven)

	result := s.controller.PlayCard(state, "p1", card(model.RankFive), model.PlaySourceHand)

	s.Equal(model.PlayResultSuccess, result)
	s.Equal(card(model.RankFive), state.DiscardPile[len(state.DiscardPile)-1])
}

func (s *ControllerSuite) TestPlayCardHigherCardOnSevenRejected() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankNine, model.RankFive)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankSeven)

	// The five is still playable, so the nine is rejected outright
	result := s.controller.PlayCard(state, "p1", card(model.RankNine), model.PlaySourceHand)

	s.Equal(model.PlayResultIllegalCard, result)
	s.Len(state.Players[0].Hand, 2)
	s.Equal(pile(model.RankSeven), state.DiscardPile)
	s.Equal(0, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayCardIllegalWhenPileHoldsLegalOption() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFive, model.RankAce)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankKing)

	result := s.controller.PlayCard(state, "p1", card(model.RankFive), model.PlaySourceHand)

	s.Equal(model.PlayResultIllegalCard, result)
	s.Equal(pile(model.RankFive, model.RankAce), state.Players[0].Hand)
	s.Equal(pile(model.RankKing), state.DiscardPile)
	s.Equal(0, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayCardForcedPickupWhenNoLegalOption() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFive, model.RankNine)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankEight, model.RankKing)

	result := s.controller.PlayCard(state, "p1", card(model.RankFive), model.PlaySourceHand)

	s.Equal(model.PlayResultMustPickup, result)
	s.Equal(pile(model.RankFive, model.RankNine, model.RankEight, model.RankKing), state.Players[0].Hand)
	s.Empty(state.DiscardPile)
	s.Equal(1, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayCardWinEndsGameWithoutAdvance() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankQueen)

	result := s.controller.PlayCard(state, "p1", card(model.RankTwo), model.PlaySourceHand)

	s.Equal(model.PlayResultGameOver, result)
	s.Equal(model.GameStatusEnded, state.Status)
	s.Equal(0, state.CurrentPlayerIndex)
	s.True(state.Players[0].OutOfCards())
}

func (s *ControllerSuite) TestPlayCardTurnWrapsToFirstPlayer() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankKing)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
		&model.Player{ID: "p3", Hand: pile(model.RankNine, model.RankFour)},
	)
	state.CurrentPlayerIndex = 2

	result := s.controller.PlayCard(state, "p3", card(model.RankNine), model.PlaySourceHand)

	s.Equal(model.PlayResultSuccess, result)
	s.Equal(0, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayCardRejectedOutsidePlayingPhase() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.Status = model.GameStatusSwapping

	result := s.controller.PlayCard(state, "p1", card(model.RankTwo), model.PlaySourceHand)

	s.Equal(model.PlayResultIllegalCard, result)
	s.Len(state.Players[0].Hand, 1)
}

func (s *ControllerSuite) TestPlayCardUnknownPlayerRejected() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)

	result := s.controller.PlayCard(state, "p999", card(model.RankTwo), model.PlaySourceHand)
	s.Equal(model.PlayResultIllegalCard, result)
}

func (s *ControllerSuite) TestPlayCardNotInPileRejected() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)

	result := s.controller.PlayCard(state, "p1", card(model.RankAce), model.PlaySourceHand)
	s.Equal(model.PlayResultIllegalCard, result)
}

func (s *ControllerSuite) TestPlayCardUnknownSourceRejected() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)

	result := s.controller.PlayCard(state, "p1", card(model.RankTwo), model.PlaySource("deck"))
	s.Equal(model.PlayResultIllegalCard, result)
}

// PlayFaceDownCard tests

func (s *ControllerSuite) TestPlayFaceDownLegalCardIsDiscarded() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour), FaceDown: pile(model.RankAce)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankNine)

	result := s.controller.PlayFaceDownCard(state, "p1", 0)

	s.Equal(model.PlayResultSuccess, result)
	s.Empty(state.Players[0].FaceDown)
	s.Equal(card(model.RankAce), state.DiscardPile[len(state.DiscardPile)-1])
	s.Equal(1, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayFaceDownIllegalCardJoinsHandWithPile() {
	state := playingState(
		&model.Player{ID: "p1", FaceDown: pile(model.RankFive)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankKing)

	result := s.controller.PlayFaceDownCard(state, "p1", 0)

	s.Equal(model.PlayResultMustPickup, result)
	// Revealed card first, then the picked-up pile
	s.Equal(pile(model.RankFive, model.RankKing), state.Players[0].Hand)
	s.Empty(state.Players[0].FaceDown)
	s.Empty(state.DiscardPile)
	s.Equal(1, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayFaceDownWinSuppressesAdvance() {
	state := playingState(
		&model.Player{ID: "p1", FaceDown: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankQueen)

	result := s.controller.PlayFaceDownCard(state, "p1", 0)

	s.Equal(model.PlayResultGameOver, result)
	s.Equal(model.GameStatusEnded, state.Status)
	s.Equal(0, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestPlayFaceDownIndexOutOfRange() {
	state := playingState(
		&model.Player{ID: "p1", FaceDown: pile(model.RankTwo)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)

	s.Equal(model.PlayResultIllegalCard, s.controller.PlayFaceDownCard(state, "p1", -1))
	s.Equal(model.PlayResultIllegalCard, s.controller.PlayFaceDownCard(state, "p1", 1))
	s.Len(state.Players[0].FaceDown, 1)
}

func (s *ControllerSuite) TestPlayFaceDownMiddleIndex() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankQueen), FaceDown: pile(model.RankFour, model.RankTen, model.RankSix)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankNine)

	result := s.controller.PlayFaceDownCard(state, "p1", 1)

	s.Equal(model.PlayResultSuccess, result)
	s.Equal(pile(model.RankFour, model.RankSix), state.Players[0].FaceDown)
	s.Equal(card(model.RankTen), state.DiscardPile[len(state.DiscardPile)-1])
}

// PickupDiscardPile tests

func (s *ControllerSuite) TestPickupMovesWholePileToHand() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.DiscardPile = pile(model.RankSix, model.RankSeven)

	s.True(s.controller.PickupDiscardPile(state, "p1"))
	s.Equal(pile(model.RankFour, model.RankSix, model.RankSeven), state.Players[0].Hand)
	s.Empty(state.DiscardPile)
}

func (s *ControllerSuite) TestPickupEmptyPileReturnsFalse() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)

	s.False(s.controller.PickupDiscardPile(state, "p1"))
	s.Equal(pile(model.RankFour), state.Players[0].Hand)
}

func (s *ControllerSuite) TestPickupOutsidePlayingPhaseReturnsFalse() {
	state := playingState(
		&model.Player{ID: "p1"},
		&model.Player{ID: "p2"},
	)
	state.Status = model.GameStatusSwapping
	state.DiscardPile = pile(model.RankSix)

	s.False(s.controller.PickupDiscardPile(state, "p1"))
	s.Len(state.DiscardPile, 1)
}

// DrawCard tests

func (s *ControllerSuite) TestDrawCardTakesTopOfDeck() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)
	state.Deck = pile(model.RankSix, model.RankSeven, model.RankEight)

	s.True(s.controller.DrawCard(state, "p1"))
	s.Equal(pile(model.RankFour, model.RankEight), state.Players[0].Hand)
	s.Equal(pile(model.RankSix, model.RankSeven), state.Deck)
	s.Equal(0, state.CurrentPlayerIndex)
}

func (s *ControllerSuite) TestDrawCardEmptyDeckReturnsFalse() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour)},
		&model.Player{ID: "p2", Hand: pile(model.RankKing)},
	)

	s.False(s.controller.DrawCard(state, "p1"))
	s.Len(state.Players[0].Hand, 1)
}

func (s *ControllerSuite) TestDrawCardUnknownPlayerReturnsFalse() {
	state := playingState(
		&model.Player{ID: "p1"},
		&model.Player{ID: "p2"},
	)
	state.Deck = pile(model.RankSix)

	s.False(s.controller.DrawCard(state, "p999"))
	s.Len(state.Deck, 1)
}

// CheckGameOver tests

func (s *ControllerSuite) TestCheckGameOverFindsFirstEmptyPlayer() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour)},
		&model.Player{ID: "p2"},
		&model.Player{ID: "p3"},
	)

	winner, over := s.controller.CheckGameOver(state)
	s.True(over)
	s.Equal(model.PlayerID("p2"), winner)
	s.Equal(model.GameStatusEnded, state.Status)
}

func (s *ControllerSuite) TestCheckGameOverNoWinner() {
	state := playingState(
		&model.Player{ID: "p1", Hand: pile(model.RankFour)},
		&model.Player{ID: "p2", FaceDown: pile(model.RankKing)},
	)

	_, over := s.controller.CheckGameOver(state)
	s.False(over)
	s.Equal(model.GameStatusPlaying, state.Status)
}

// AdvanceTurn tests

func (s *ControllerSuite) TestAdvanceTurnWrapsAround() {
	state := playingState(
		&model.Player{ID: "p1"},
		&model.Player{ID: "p2"},
		&model.Player{ID: "p3"},
	)
	state.CurrentPlayerIndex = 2

	s.controller.AdvanceTurn(state)
	s.Equal(0, state.CurrentPlayerIndex)
}
