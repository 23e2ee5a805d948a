package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/rules"
)

func newRulesCmd() *cobra.Command {
	var cardCode string
	var discardCodes string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Explain whether a play would be legal",
		Long: `rules evaluates a hypothetical play against a discard pile and explains
the verdict. Cards use shorthand codes: a rank (a, 2-10, j, q, k) with
an optional suit letter (s, h, d, c), e.g. "7", "10c", "as".

The discard pile is given bottom-first, so --discard 7,3,3 is a pile
with two threes on top of a seven.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			card, err := ParseCard(cardCode)
			if err != nil {
				return err
			}
			discard, err := ParseCards(discardCodes)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(explainPlay(card, discard))
			return nil
		},
	}

	cmd.Flags().StringVar(&cardCode, "card", "", "Card to play (required)")
	cmd.Flags().StringVar(&discardCodes, "discard", "", "Discard pile, bottom first, comma-separated")
	_ = cmd.MarkFlagRequired("card")

	return cmd
}

func explainPlay(card model.Card, discard []model.Card) RulesResult {
	rulesService := rules.New()

	result := RulesResult{
		Card:  FormatCard(card),
		Legal: rulesService.IsLegalPlay(card, discard),
	}
	for _, c := range discard {
		result.Discard = append(result.Discard, FormatCard(c))
	}

	top, hasTop := rulesService.EffectiveTop(discard)
	if hasTop {
		result.EffectiveTop = FormatCard(top)
	}

	switch {
	case card.Rank == model.RankTwo || card.Rank == model.RankThree || card.Rank == model.RankTen:
		result.Reason = fmt.Sprintf("a %s plays on any pile", card.Rank)
	case !hasTop && len(discard) == 0:
		result.Reason = "an empty pile accepts any card"
	case !hasTop:
		result.Reason = "the pile holds only threes, which are skipped, so it accepts any card"
	case top.Rank == model.RankSeven:
		if result.Legal {
			result.Reason = fmt.Sprintf("a seven caps the pile and %s is seven or lower", card.Rank)
		} else {
			result.Reason = fmt.Sprintf("a seven caps the pile and %s is above seven", card.Rank)
		}
	default:
		if result.Legal {
			result.Reason = fmt.Sprintf("%s meets or beats the %s on top", card.Rank, top.Rank)
		} else {
			result.Reason = fmt.Sprintf("%s does not beat the %s on top", card.Rank, top.Rank)
		}
	}

	return result
}
