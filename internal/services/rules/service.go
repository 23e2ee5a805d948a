package rules

import "github.com/mcoot/palacegame-go/internal/model"

// specialRanks are always legal to play regardless of the pile
var specialRanks = map[model.Rank]bool{
	model.RankTwo:   true,
	model.RankThree: true,
	model.RankTen:   true,
}

// rankOrder positions ranks for legality comparison, low to high. A
// played 2 never reaches a comparison (it short-circuits as special),
// but a 2 sitting on top of the pile still needs an order so anything
// can be played onto it.
var rankOrder = map[model.Rank]int{
	model.RankTwo:   2,
	model.RankThree: 3,
	model.RankFour:  4,
	model.RankFive:  5,
	model.RankSix:   6,
	model.RankSeven: 7,
	model.RankEight: 8,
	model.RankNine:  9,
	model.RankTen:   10,
	model.RankJack:  11,
	model.RankQueen: 12,
	model.RankKing:  13,
	model.RankAce:   14,
}

// Service evaluates play legality against the discard pile. It is
// pure: no method mutates its arguments.
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// IsLegalPlay reports whether card may be played onto the discard
// pile. Special ranks are always legal; otherwise the card is compared
// against the effective top: equal-or-higher normally, equal-or-lower
// when the effective top is a 7.
func (s *Service) IsLegalPlay(card model.Card, discardPile []model.Card) bool {
	if specialRanks[card.Rank] {
		return true
	}

	top, ok := s.EffectiveTop(discardPile)
	if !ok {
		// Empty pile, or nothing but 3s
		return true
	}

	if top.Rank == model.RankSeven {
		return rankOrder[card.Rank] <= rankOrder[model.RankSeven]
	}
	return rankOrder[card.Rank] >= rankOrder[top.Rank]
}

// EffectiveTop returns the card legality is compared against: the
// first card from the top of the pile that is not part of the trailing
// run of 3s. ok is false when the pile is empty or entirely 3s.
func (s *Service) EffectiveTop(discardPile []model.Card) (model.Card, bool) {
	for i := len(discardPile) - 1; i >= 0; i-- {
		if discardPile[i].Rank != model.RankThree {
			return discardPile[i], true
		}
	}
	return model.Card{}, false
}

// HasLegalPlay reports whether any card in pile is legal against the
// discard pile
func (s *Service) HasLegalPlay(pile []model.Card, discardPile []model.Card) bool {
	for _, c := range pile {
		if s.IsLegalPlay(c, discardPile) {
			return true
		}
	}
	return false
}

// LegalCards returns the subset of pile that is legal against the
// discard pile, preserving pile order
func (s *Service) LegalCards(pile []model.Card, discardPile []model.Card) []model.Card {
	var legal []model.Card
	for _, c := range pile {
		if s.IsLegalPlay(c, discardPile) {
			legal = append(legal, c)
		}
	}
	return legal
}

// Interface for dependency injection
type ServiceInterface interface {
	IsLegalPlay(card model.Card, discardPile []model.Card) bool
	EffectiveTop(discardPile []model.Card) (model.Card, bool)
	HasLegalPlay(pile []model.Card, discardPile []model.Card) bool
	LegalCards(pile []model.Card, discardPile []model.Card) []model.Card
}

var _ ServiceInterface = (*Service)(nil)
