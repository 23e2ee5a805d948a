package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mcoot/palacegame-go/internal/dependencies/clock"
	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/rooms"
	"github.com/mcoot/palacegame-go/internal/services/bot"
	"github.com/mcoot/palacegame-go/internal/services/deck"
	"github.com/mcoot/palacegame-go/internal/services/game"
	"github.com/mcoot/palacegame-go/internal/services/swap"
	"github.com/mcoot/palacegame-go/internal/storage"
)

// Manager is the façade in front of the game engine. It owns loading
// and saving game state, serializes all mutating calls per room, runs
// bot turns after human actions, and keeps the room's status mirror in
// step with the game.
type Manager struct {
	storage        storage.Storage
	rooms          rooms.Service
	deckService    *deck.Service
	gameController *game.Controller
	swapService    *swap.Service
	botService     *bot.Service
	clock          clock.Clock
	logger         *slog.Logger

	mu    sync.Mutex
	locks map[model.RoomID]*sync.Mutex
}

// New creates a new Manager
func New(
	store storage.Storage,
	roomsService rooms.Service,
	deckService *deck.Service,
	gameController *game.Controller,
	swapService *swap.Service,
	botService *bot.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		storage:        store,
		rooms:          roomsService,
		deckService:    deckService,
		gameController: gameController,
		swapService:    swapService,
		botService:     botService,
		clock:          clk,
		logger:         logger.With(slog.String("component", "game-manager")),
		locks:          make(map[model.RoomID]*sync.Mutex),
	}
}

// roomLock returns the mutex serializing mutations for one room
func (m *Manager) roomLock(roomID model.RoomID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[roomID] = lock
	}
	return lock
}

// CreateGameState creates the game for a room with the given human
// players seated in order, followed by the room's configured bots. The
// game starts in the waiting phase with nothing dealt.
func (m *Manager) CreateGameState(ctx context.Context, roomID model.RoomID, players []model.Player) (*model.GameState, error) {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	room, err := m.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if len(players) == 0 {
		return nil, model.ErrNotEnoughPlayers
	}
	for _, p := range players {
		if !room.HasMember(p.ID) {
			return nil, model.ErrNotInRoom
		}
	}

	seats := len(players) + room.NumBots
	if seats < 2 {
		return nil, model.ErrNotEnoughPlayers
	}
	if seats > room.MaxPlayers {
		return nil, model.ErrRoomFull
	}

	exists, err := m.storage.GameStateExists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrGameAlreadyExists
	}

	now := m.clock.Now()
	state := &model.GameState{
		RoomID:             roomID,
		Players:            make([]*model.Player, 0, seats),
		CurrentPlayerIndex: 0,
		Status:             model.GameStatusWaiting,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	for _, p := range players {
		state.Players = append(state.Players, &model.Player{
			ID:   p.ID,
			Name: p.Name,
		})
	}
	for i := 0; i < room.NumBots; i++ {
		state.Players = append(state.Players, &model.Player{
			ID:          model.PlayerID("bot-" + uuid.NewString()),
			Name:        botName(i),
			IsBot:       true,
			BotStrategy: model.BotStrategyRandom,
		})
	}

	if err := m.storage.SaveGameState(ctx, state); err != nil {
		m.logger.Error("failed to save game state",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	m.syncRoomStatus(ctx, roomID, model.GameStatusWaiting)

	m.logger.Info("game created",
		slog.String("room_id", string(roomID)),
		slog.Int("player_count", len(players)),
		slog.Int("bot_count", room.NumBots),
	)

	return state, nil
}

// GetGameState retrieves the game for a room
func (m *Manager) GetGameState(ctx context.Context, roomID model.RoomID) (*model.GameState, error) {
	return m.storage.GetGameState(ctx, roomID)
}

// DeleteGameState removes the game for a room, typically when the room
// expires. Deleting an absent game is not an error.
func (m *Manager) DeleteGameState(ctx context.Context, roomID model.RoomID) error {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	if err := m.storage.DeleteGameState(ctx, roomID); err != nil {
		return err
	}

	// The room's mutex stays in the table so a late caller still
	// serializes against any recreation of the game
	m.logger.Info("game deleted", slog.String("room_id", string(roomID)))
	return nil
}

// DealCards builds and shuffles the deck for the seated player count,
// deals every player their piles, and moves the game into the swap
// phase. Bots keep their dealt split and are marked ready immediately.
func (m *Manager) DealCards(ctx context.Context, roomID model.RoomID, cfg deck.DealConfig) error {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return err
	}

	if state.Status != model.GameStatusWaiting {
		return model.ErrWrongPhase
	}

	state.Deck = m.deckService.Build(len(state.Players))
	if err := m.deckService.Deal(state, cfg); err != nil {
		return err
	}

	for _, p := range state.Players {
		if p.IsBot {
			p.IsReady = true
		}
	}
	state.Status = model.GameStatusSwapping

	if err := m.save(ctx, state); err != nil {
		return err
	}

	m.syncRoomStatus(ctx, roomID, model.GameStatusSwapping)

	m.logger.Info("cards dealt",
		slog.String("room_id", string(roomID)),
		slog.Int("player_count", len(state.Players)),
		slog.Int("deck_count", len(state.Deck)),
	)

	return nil
}

// SwapAndReady applies a player's hand and face-up rearrangement and
// marks them ready. Returns false with no state change when the
// supplied split does not hold exactly the player's current cards.
func (m *Manager) SwapAndReady(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, newHand, newFaceUp []model.Card) (bool, error) {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return false, err
	}

	if state.Status != model.GameStatusSwapping {
		return false, model.ErrWrongPhase
	}
	if state.FindPlayer(playerID) == nil {
		return false, model.ErrPlayerNotFound
	}

	if !m.swapService.SwapAndReady(state, playerID, newHand, newFaceUp) {
		return false, nil
	}

	if err := m.save(ctx, state); err != nil {
		return false, err
	}
	return true, nil
}

// AllPlayersReady reports whether every player has committed their swap
func (m *Manager) AllPlayersReady(ctx context.Context, roomID model.RoomID) (bool, error) {
	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return false, err
	}
	return m.swapService.AllPlayersReady(state), nil
}

// StartPlaying moves the game from the swap phase into play once every
// player is ready. If the opening seat belongs to a bot, its turns run
// before this returns.
func (m *Manager) StartPlaying(ctx context.Context, roomID model.RoomID) error {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return err
	}

	if state.Status != model.GameStatusSwapping {
		return model.ErrWrongPhase
	}
	if !m.swapService.AllPlayersReady(state) {
		return model.ErrPlayersNotReady
	}

	state.Status = model.GameStatusPlaying
	m.runBotChain(state)

	if err := m.save(ctx, state); err != nil {
		return err
	}

	m.syncRoomStatus(ctx, roomID, state.Status)

	m.logger.Info("game started",
		slog.String("room_id", string(roomID)),
		slog.Int("player_count", len(state.Players)),
	)

	return nil
}

// PlayCard plays a card from the player's hand or face-up pile. Any
// bot seats that follow take their turns before this returns. An
// illegal card leaves the game untouched and the error nil; the caller
// is expected to resubmit a corrected play.
func (m *Manager) PlayCard(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, card model.Card, source model.PlaySource) (model.PlayResult, error) {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return "", err
	}

	result := m.gameController.PlayCard(state, playerID, card, source)
	if result == model.PlayResultIllegalCard {
		return result, nil
	}

	if err := m.finishPlay(ctx, state); err != nil {
		return result, err
	}
	return result, nil
}

// PlayFaceDownCard plays one of the player's face-down cards blind,
// with the same bot chaining as PlayCard
func (m *Manager) PlayFaceDownCard(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, index int) (model.PlayResult, error) {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return "", err
	}

	result := m.gameController.PlayFaceDownCard(state, playerID, index)
	if result == model.PlayResultIllegalCard {
		return result, nil
	}

	if err := m.finishPlay(ctx, state); err != nil {
		return result, err
	}
	return result, nil
}

// DrawCard moves the top card of the deck into the player's hand.
// Returns false when the deck is empty.
func (m *Manager) DrawCard(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) (bool, error) {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return false, err
	}

	if state.Status != model.GameStatusPlaying {
		return false, model.ErrWrongPhase
	}
	if state.FindPlayer(playerID) == nil {
		return false, model.ErrPlayerNotFound
	}

	if !m.gameController.DrawCard(state, playerID) {
		return false, nil
	}

	if err := m.save(ctx, state); err != nil {
		return false, err
	}
	return true, nil
}

// finishPlay completes a mutating play: chains any following bot
// turns, persists the state, and mirrors a finished game to the room
func (m *Manager) finishPlay(ctx context.Context, state *model.GameState) error {
	m.runBotChain(state)

	if err := m.save(ctx, state); err != nil {
		return err
	}

	if state.Status == model.GameStatusEnded {
		m.syncRoomStatus(ctx, state.RoomID, model.GameStatusEnded)
		m.logger.Info("game ended",
			slog.String("room_id", string(state.RoomID)),
		)
	}
	return nil
}

// runBotChain plays through consecutive bot seats until a human seat,
// game over, a stuck bot, or the iteration cap
func (m *Manager) runBotChain(state *model.GameState) {
	for i := 0; i < bot.MaxBotIterations; i++ {
		if state.Status != model.GameStatusPlaying {
			return
		}

		current := state.CurrentPlayer()
		if current == nil || !current.IsBot {
			return
		}

		if _, acted := m.botService.TakeTurn(state, current.ID); !acted {
			m.logger.Warn("bot chain halted with no action",
				slog.String("room_id", string(state.RoomID)),
				slog.String("player_id", string(current.ID)),
			)
			return
		}
	}

	m.logger.Warn("bot chain hit iteration limit",
		slog.String("room_id", string(state.RoomID)),
	)
}

func (m *Manager) save(ctx context.Context, state *model.GameState) error {
	state.UpdatedAt = m.clock.Now()
	if err := m.storage.SaveGameState(ctx, state); err != nil {
		m.logger.Error("failed to save game state",
			slog.String("room_id", string(state.RoomID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// syncRoomStatus mirrors the game's status onto the room. The game
// state is authoritative, so a failed sync is logged and not returned.
func (m *Manager) syncRoomStatus(ctx context.Context, roomID model.RoomID, status model.GameStatus) {
	if err := m.rooms.SetRoomStatus(ctx, roomID, status); err != nil {
		m.logger.Error("failed to sync room status",
			slog.String("room_id", string(roomID)),
			slog.String("status", string(status)),
			slog.String("error", err.Error()),
		)
	}
}

func botName(i int) string {
	return fmt.Sprintf("Bot %d", i+1)
}

// Interface for dependency injection
type ManagerInterface interface {
	CreateGameState(ctx context.Context, roomID model.RoomID, players []model.Player) (*model.GameState, error)
	GetGameState(ctx context.Context, roomID model.RoomID) (*model.GameState, error)
	DeleteGameState(ctx context.Context, roomID model.RoomID) error
	DealCards(ctx context.Context, roomID model.RoomID, cfg deck.DealConfig) error
	SwapAndReady(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, newHand, newFaceUp []model.Card) (bool, error)
	AllPlayersReady(ctx context.Context, roomID model.RoomID) (bool, error)
	StartPlaying(ctx context.Context, roomID model.RoomID) error
	PlayCard(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, card model.Card, source model.PlaySource) (model.PlayResult, error)
	PlayFaceDownCard(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, index int) (model.PlayResult, error)
	DrawCard(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) (bool, error)
	GetPlayerView(ctx context.Context, roomID model.RoomID, viewerID model.PlayerID) (*model.GameView, error)
}

var _ ManagerInterface = (*Manager)(nil)
