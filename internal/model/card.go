package model

import "fmt"

// Suit identifies one of the four French suits
type Suit string

const (
	SuitSpades   Suit = "spades"
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
)

// Rank identifies a card rank; values double as the wire representation
type Rank string

const (
	RankAce   Rank = "ace"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "jack"
	RankQueen Rank = "queen"
	RankKing  Rank = "king"
)

// Card is a single playing card. Cards are plain values comparing by
// (suit, rank); a two-deck game holds two indistinguishable copies of
// each combination.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String formats a card for logs and CLI output
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// AllSuits returns every suit in a fixed order
func AllSuits() []Suit {
	return []Suit{SuitSpades, SuitHearts, SuitDiamonds, SuitClubs}
}

// AllRanks returns every rank in a fixed order
func AllRanks() []Rank {
	return []Rank{
		RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
		RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
	}
}
