package memory

import (
	"context"
	"sync"

	"github.com/mcoot/palacegame-go/internal/model"
	"github.com/mcoot/palacegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games map[model.RoomID]*model.GameState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.RoomID]*model.GameState),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGameState(ctx context.Context, state *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[state.RoomID] = state
	return nil
}

func (s *Storage) GetGameState(ctx context.Context, roomID model.RoomID) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.games[roomID]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return state, nil
}

func (s *Storage) DeleteGameState(ctx context.Context, roomID model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, roomID)
	return nil
}

func (s *Storage) GameStateExists(ctx context.Context, roomID model.RoomID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[roomID]
	return ok, nil
}
