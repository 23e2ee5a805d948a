package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/palacegame-go/internal/dependencies/random"
	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/bot"
	"github.com/mcoot/palacegame-go/internal/services/deck"
	"github.com/mcoot/palacegame-go/internal/services/game"
	"github.com/mcoot/palacegame-go/internal/services/rules"
)

type simulateOptions struct {
	players  int
	games    int
	seed     int64
	strategy string
	deal     deck.DealConfig
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run bot self-play games and report the outcomes",
		Long: `simulate seats the requested number of bots at a table and lets them
play full games against each other. Games use consecutive seeds counting
up from the base seed, so a run is reproducible from that seed. Card
conservation is checked after every turn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.players < 2 {
				return fmt.Errorf("at least 2 players required")
			}
			if opts.games < 1 {
				return fmt.Errorf("at least 1 game required")
			}
			if !validStrategy(opts.strategy) {
				return fmt.Errorf("unknown strategy %q", opts.strategy)
			}
			if opts.deal.HandCount < 0 || opts.deal.FaceUpCount < 0 || opts.deal.FaceDownCount < 0 {
				return fmt.Errorf("deal counts must not be negative")
			}
			if opts.deal.CardsPerPlayer() < 1 {
				return fmt.Errorf("deal must give each player at least one card")
			}

			result, err := runSimulation(opts, simulationLogger(cfg.Verbose))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.players, "players", 2, "Number of bot players")
	cmd.Flags().IntVar(&opts.games, "games", 1, "Number of games to play")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Base random seed")
	cmd.Flags().StringVar(&opts.strategy, "strategy", string(model.BotStrategyRandom), "Bot strategy")
	cmd.Flags().IntVar(&opts.deal.HandCount, "hand", 4, "Cards dealt to each hand")
	cmd.Flags().IntVar(&opts.deal.FaceUpCount, "face-up", 4, "Cards dealt face up")
	cmd.Flags().IntVar(&opts.deal.FaceDownCount, "face-down", 4, "Cards dealt face down")

	return cmd
}

func validStrategy(name string) bool {
	for _, s := range model.ValidBotStrategies() {
		if string(s) == name {
			return true
		}
	}
	return false
}

func simulationLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func runSimulation(opts simulateOptions, logger *slog.Logger) (SimulationResult, error) {
	result := SimulationResult{
		Games:    opts.games,
		Players:  opts.players,
		Strategy: model.BotStrategyDisplayName(model.BotStrategy(opts.strategy)),
		Seed:     opts.seed,
		Wins:     make(map[string]int),
	}

	for i := 0; i < opts.games; i++ {
		outcome, err := runGame(i+1, opts, logger)
		if err != nil {
			return SimulationResult{}, err
		}
		result.Results = append(result.Results, outcome)
		if outcome.Winner != "" {
			result.Wins[outcome.Winner]++
		}
	}

	return result, nil
}

func runGame(gameNum int, opts simulateOptions, logger *slog.Logger) (GameResult, error) {
	rnd := random.NewSeeded(opts.seed + int64(gameNum-1))
	rulesService := rules.New()
	deckService := deck.New(rnd)
	gameController := game.NewController(rulesService)
	strategies := map[model.BotStrategy]bot.Strategy{
		model.BotStrategyRandom: bot.NewRandomStrategy(rulesService, rnd),
	}
	botService := bot.NewService(gameController, strategies, logger)

	state := &model.GameState{
		RoomID: model.RoomID(fmt.Sprintf("sim-%d", gameNum)),
		Status: model.GameStatusWaiting,
	}
	for p := 0; p < opts.players; p++ {
		state.Players = append(state.Players, &model.Player{
			ID:          model.PlayerID(fmt.Sprintf("bot-%d", p+1)),
			Name:        fmt.Sprintf("Bot %d", p+1),
			IsBot:       true,
			IsReady:     true,
			BotStrategy: model.BotStrategy(opts.strategy),
		})
	}

	state.Deck = deckService.Build(len(state.Players))
	if err := deckService.Deal(state, opts.deal); err != nil {
		return GameResult{}, err
	}
	state.Status = model.GameStatusPlaying
	expected := state.CardsInPlay()

	turns := 0
	for state.Status == model.GameStatusPlaying && turns < bot.MaxBotIterations {
		current := state.Players[state.CurrentPlayerIndex]
		action, acted := botService.TakeTurn(state, current.ID)
		if !acted {
			return GameResult{Game: gameNum, Turns: turns, Stalled: true}, nil
		}
		turns++

		if got := state.CardsInPlay(); got != expected {
			return GameResult{}, fmt.Errorf(
				"game %d: cards in play drifted from %d to %d on turn %d",
				gameNum, expected, got, turns)
		}

		if action.Result == model.PlayResultGameOver {
			return GameResult{Game: gameNum, Winner: string(action.PlayerID), Turns: turns}, nil
		}
	}

	return GameResult{Game: gameNum, Turns: turns}, nil
}
