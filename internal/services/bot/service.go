package bot

import (
	"log/slog"

	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/services/game"
)

// MaxBotIterations is a safety limit for bot turn-chaining loops
const MaxBotIterations = 1000

// ActionType classifies what a bot did with its turn
type ActionType string

const (
	ActionPlayCard     ActionType = "play_card"
	ActionPlayFaceDown ActionType = "play_face_down"
	ActionNone         ActionType = "none"
)

// Action records a single bot turn so callers can log and broadcast it
type Action struct {
	Type          ActionType
	PlayerID      model.PlayerID
	Source        model.PlaySource
	Card          model.Card
	FaceDownIndex int
	Result        model.PlayResult
}

// Service runs automated turns for bot seats
type Service struct {
	gameController *game.Controller
	strategies     map[model.BotStrategy]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	strategies map[model.BotStrategy]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// TakeTurn plays one full turn for the given bot seat, routing the
// chosen play through the regular turn controller entry points.
// Returns false when no mutating play was submitted, which ends any
// chaining loop the caller is running.
func (s *Service) TakeTurn(state *model.GameState, playerID model.PlayerID) (Action, bool) {
	player := state.FindPlayer(playerID)
	if player == nil || !player.IsBot {
		return Action{}, false
	}

	strategy := s.strategyForPlayer(player)
	play, ok := strategy.ChoosePlay(state, player)
	if !ok {
		// Stuck with no possible action; the turn stays where it is
		s.logger.Debug("bot has no possible action",
			slog.String("room_id", string(state.RoomID)),
			slog.String("player_id", string(playerID)),
		)
		return Action{Type: ActionNone, PlayerID: playerID}, false
	}

	action := Action{PlayerID: playerID}
	if play.FaceDown {
		action.Type = ActionPlayFaceDown
		action.FaceDownIndex = play.FaceDownIndex
		action.Result = s.gameController.PlayFaceDownCard(state, playerID, play.FaceDownIndex)
	} else {
		action.Type = ActionPlayCard
		action.Source = play.Source
		action.Card = play.Card
		action.Result = s.gameController.PlayCard(state, playerID, play.Card, play.Source)
	}

	s.logger.Debug("bot turn taken",
		slog.String("room_id", string(state.RoomID)),
		slog.String("player_id", string(playerID)),
		slog.String("action", string(action.Type)),
		slog.String("result", string(action.Result)),
	)

	return action, true
}

// strategyForPlayer returns the strategy for a bot player, falling back
// to the first registered strategy if the player's strategy is unknown
func (s *Service) strategyForPlayer(player *model.Player) Strategy {
	if st, ok := s.strategies[player.BotStrategy]; ok {
		return st
	}
	for _, st := range s.strategies {
		return st
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	TakeTurn(state *model.GameState, playerID model.PlayerID) (Action, bool)
}

var _ ServiceInterface = (*Service)(nil)
