package cli

import (
	"fmt"
	"strings"

	"github.com/mcoot/palacegame-go/internal/model"
)

// Shorthand card codes: a rank code optionally followed by a suit
// letter, e.g. "7", "10c", "as", "Kh". Legality never depends on the
// suit, so a bare rank defaults to spades.

var rankCodes = map[string]model.Rank{
	"a": model.RankAce, "2": model.RankTwo, "3": model.RankThree,
	"4": model.RankFour, "5": model.RankFive, "6": model.RankSix,
	"7": model.RankSeven, "8": model.RankEight, "9": model.RankNine,
	"10": model.RankTen, "j": model.RankJack, "q": model.RankQueen,
	"k": model.RankKing,
}

var suitCodes = map[byte]model.Suit{
	's': model.SuitSpades,
	'h': model.SuitHearts,
	'd': model.SuitDiamonds,
	'c': model.SuitClubs,
}

// ParseCard parses a shorthand card code
func ParseCard(code string) (model.Card, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return model.Card{}, fmt.Errorf("empty card code")
	}

	suit := model.SuitSpades
	rankPart := normalized
	if len(normalized) > 1 {
		if s, ok := suitCodes[normalized[len(normalized)-1]]; ok {
			if _, isRank := rankCodes[normalized[:len(normalized)-1]]; isRank {
				suit = s
				rankPart = normalized[:len(normalized)-1]
			}
		}
	}

	rank, ok := rankCodes[rankPart]
	if !ok {
		return model.Card{}, fmt.Errorf("invalid card code %q", code)
	}
	return model.Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a comma-separated list of shorthand card codes
func ParseCards(list string) ([]model.Card, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	cards := make([]model.Card, 0, len(parts))
	for _, part := range parts {
		card, err := ParseCard(part)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// FormatCard renders a card as a shorthand code
func FormatCard(c model.Card) string {
	rank := string(c.Rank)
	switch c.Rank {
	case model.RankAce:
		rank = "A"
	case model.RankJack:
		rank = "J"
	case model.RankQueen:
		rank = "Q"
	case model.RankKing:
		rank = "K"
	}
	return rank + string(c.Suit[0])
}

// FormatCards renders a pile as space-separated shorthand codes
func FormatCards(cards []model.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = FormatCard(c)
	}
	return strings.Join(codes, " ")
}
