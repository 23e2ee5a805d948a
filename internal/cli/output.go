package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mcoot/palacegame-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SimulationResult:
		o.printSimulation(v)
	case DealResult:
		o.printDeal(v)
	case RulesResult:
		o.printRules(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SimulationResult reports a batch of bot self-play games
type SimulationResult struct {
	Games    int            `json:"games"`
	Players  int            `json:"players"`
	Strategy string         `json:"strategy"`
	Seed     int64          `json:"seed"`
	Results  []GameResult   `json:"results"`
	Wins     map[string]int `json:"wins"`
}

// GameResult reports a single simulated game
type GameResult struct {
	Game    int    `json:"game"`
	Winner  string `json:"winner,omitempty"`
	Turns   int    `json:"turns"`
	Stalled bool   `json:"stalled,omitempty"`
}

// DealResult shows a dealt table from every player's viewpoint
type DealResult struct {
	Players   int              `json:"players"`
	Seed      int64            `json:"seed"`
	DeckCount int              `json:"deck_count"`
	Views     []ViewerSnapshot `json:"views"`
}

// ViewerSnapshot pairs a viewer with their redacted table view
type ViewerSnapshot struct {
	ViewerID string         `json:"viewer_id"`
	View     model.GameView `json:"view"`
}

// RulesResult explains the legality of a hypothetical play
type RulesResult struct {
	Card         string   `json:"card"`
	Discard      []string `json:"discard"`
	EffectiveTop string   `json:"effective_top,omitempty"`
	Legal        bool     `json:"legal"`
	Reason       string   `json:"reason"`
}

func (o *Output) printSimulation(r SimulationResult) {
	fmt.Printf("Simulated %d game(s), %d players, %s strategy, seed %d\n",
		r.Games, r.Players, r.Strategy, r.Seed)
	for _, g := range r.Results {
		switch {
		case g.Stalled:
			fmt.Printf("  game %d: stalled after %d turns\n", g.Game, g.Turns)
		case g.Winner == "":
			fmt.Printf("  game %d: no winner after %d turns\n", g.Game, g.Turns)
		default:
			fmt.Printf("  game %d: %s won in %d turns\n", g.Game, g.Winner, g.Turns)
		}
	}

	if len(r.Wins) > 0 {
		fmt.Println("Wins:")
		names := make([]string, 0, len(r.Wins))
		for name := range r.Wins {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s: %d\n", name, r.Wins[name])
		}
	}
}

func (o *Output) printDeal(r DealResult) {
	fmt.Printf("Dealt %d players, seed %d, %d cards left in the deck\n",
		r.Players, r.Seed, r.DeckCount)

	for _, snapshot := range r.Views {
		fmt.Printf("\nFrom %s's seat:\n", snapshot.ViewerID)
		for _, p := range snapshot.View.Players {
			hand := fmt.Sprintf("%d hidden", p.HandCount)
			if string(p.ID) == snapshot.ViewerID {
				hand = FormatCards(p.Hand)
			}
			fmt.Printf("  %-10s hand: %-14s up: %-14s down: %d hidden\n",
				p.ID, hand, FormatCards(p.FaceUp), len(p.FaceDown))
		}
	}
}

func (o *Output) printRules(r RulesResult) {
	verdict := "ILLEGAL"
	if r.Legal {
		verdict = "LEGAL"
	}
	pile := "empty"
	if len(r.Discard) > 0 {
		pile = strings.Join(r.Discard, " ")
	}
	fmt.Printf("Play %s on [%s]: %s\n", r.Card, pile, verdict)
	if r.EffectiveTop != "" {
		fmt.Printf("Effective top: %s\n", r.EffectiveTop)
	}
	fmt.Printf("Reason: %s\n", r.Reason)
}
