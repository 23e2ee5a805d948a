package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/palacegame-go/internal/dependencies/random"
	"github.com/mcoot/palacegame-go/internal/factory"
	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/deck"
)

func newDealCmd() *cobra.Command {
	var players int
	var seed int64

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a table and show it from every player's viewpoint",
		Long: `deal sets up a room, deals a table from a seeded shuffle, and prints
the game as each player would see it: own hand visible, other hands and
all face-down cards hidden.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if players < 2 {
				return fmt.Errorf("at least 2 players required")
			}

			result, err := runDeal(players, seed)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&players, "players", 2, "Number of players at the table")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for the shuffle")

	return cmd
}

func runDeal(players int, seed int64) (DealResult, error) {
	app, err := factory.New(factory.Config{Random: random.NewSeeded(seed)})
	if err != nil {
		return DealResult{}, err
	}

	ctx := context.Background()
	roomID := model.RoomID("table")

	playerIDs := make([]model.PlayerID, players)
	seats := make([]model.Player, players)
	for i := 0; i < players; i++ {
		playerIDs[i] = model.PlayerID(fmt.Sprintf("player-%d", i+1))
		seats[i] = model.Player{ID: playerIDs[i], Name: fmt.Sprintf("Player %d", i+1)}
	}

	if _, err := app.Rooms.CreateRoom(ctx, roomID, "Dealt table", playerIDs[0], players, 0); err != nil {
		return DealResult{}, err
	}
	for _, id := range playerIDs[1:] {
		if err := app.Rooms.JoinRoom(ctx, roomID, id); err != nil {
			return DealResult{}, err
		}
	}

	if _, err := app.Manager.CreateGameState(ctx, roomID, seats); err != nil {
		return DealResult{}, err
	}
	if err := app.Manager.DealCards(ctx, roomID, deck.DefaultDealConfig()); err != nil {
		return DealResult{}, err
	}

	result := DealResult{Players: players, Seed: seed}
	for _, id := range playerIDs {
		view, err := app.Manager.GetPlayerView(ctx, roomID, id)
		if err != nil {
			return DealResult{}, err
		}
		result.DeckCount = view.DeckCount
		result.Views = append(result.Views, ViewerSnapshot{
			ViewerID: string(id),
			View:     *view,
		})
	}

	return result, nil
}
