package deck

import (
	"github.com/mcoot/palacegame-go/internal/dependencies/random"
	"github.com/mcoot/palacegame-go/internal/model"
)

// MultiDeckThreshold is the player count at which two decks are used
const MultiDeckThreshold = 4

// DeckSize is the number of cards in a single standard deck
const DeckSize = 52

// DealConfig holds the per-pile deal counts
type DealConfig struct {
	HandCount     int
	FaceUpCount   int
	FaceDownCount int
}

// DefaultDealConfig returns the standard deal of four cards per pile
func DefaultDealConfig() DealConfig {
	return DealConfig{
		HandCount:     4,
		FaceUpCount:   4,
		FaceDownCount: 4,
	}
}

// CardsPerPlayer returns the total cards one player receives
func (c DealConfig) CardsPerPlayer() int {
	return c.HandCount + c.FaceUpCount + c.FaceDownCount
}

// Service builds, shuffles and deals decks
type Service struct {
	random random.Random
}

// New creates a new deck Service
func New(rnd random.Random) *Service {
	return &Service{
		random: rnd,
	}
}

// Build returns a freshly shuffled deck sized for the player count:
// one deck below the multi-deck threshold, two concatenated decks at
// or above it.
func (s *Service) Build(playerCount int) []model.Card {
	decks := 1
	if playerCount >= MultiDeckThreshold {
		decks = 2
	}

	cards := make([]model.Card, 0, decks*DeckSize)
	for i := 0; i < decks; i++ {
		for _, suit := range model.AllSuits() {
			for _, rank := range model.AllRanks() {
				cards = append(cards, model.Card{Suit: suit, Rank: rank})
			}
		}
	}

	s.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// Deal moves cards off the end of the deck into each player's piles in
// seating order: hand first, then face-up, then face-down. The deck
// must already hold enough cards; nothing is mutated on error.
func (s *Service) Deal(state *model.GameState, cfg DealConfig) error {
	if cfg.CardsPerPlayer()*len(state.Players) > len(state.Deck) {
		return model.ErrDeckTooSmall
	}

	for _, p := range state.Players {
		p.Hand = drawN(state, cfg.HandCount)
		p.FaceUp = drawN(state, cfg.FaceUpCount)
		p.FaceDown = drawN(state, cfg.FaceDownCount)
	}
	return nil
}

// drawN removes n cards one at a time from the deck's end
func drawN(state *model.GameState, n int) []model.Card {
	cards := make([]model.Card, 0, n)
	for i := 0; i < n; i++ {
		card := state.Deck[len(state.Deck)-1]
		state.Deck = state.Deck[:len(state.Deck)-1]
		cards = append(cards, card)
	}
	return cards
}

// Interface for dependency injection
type ServiceInterface interface {
	Build(playerCount int) []model.Card
	Deal(state *model.GameState, cfg DealConfig) error
}

var _ ServiceInterface = (*Service)(nil)
