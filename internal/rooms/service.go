package rooms

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/palacegame-go/internal/dependencies/clock"
	"github.com/mcoot/palacegame-go/internal/model"
)

// Service is the interface the game engine consumes from the room
// collaborator: membership and configuration reads, plus the status
// write that keeps room listings in step with the game phase.
type Service interface {
	GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error)
	SetRoomStatus(ctx context.Context, roomID model.RoomID, status model.GameStatus) error
}

// RoomTTL is how long an in-memory room lives before it expires
const RoomTTL = 24 * time.Hour

// InMemory is a self-contained room service backing tests, local play
// and simulations. Deployments wire the engine to the real room
// service instead.
type InMemory struct {
	mu    sync.RWMutex
	rooms map[model.RoomID]*model.Room
	clock clock.Clock
}

// NewInMemory creates an empty in-memory room service
func NewInMemory(clk clock.Clock) *InMemory {
	return &InMemory{
		rooms: make(map[model.RoomID]*model.Room),
		clock: clk,
	}
}

// Ensure InMemory implements the interface
var _ Service = (*InMemory)(nil)

// CreateRoom registers a room. The host joins automatically and the
// room starts in the waiting phase with a fresh expiry window.
func (s *InMemory) CreateRoom(ctx context.Context, roomID model.RoomID, name string, hostID model.PlayerID, maxPlayers int, numBots int) (*model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	room := &model.Room{
		ID:         roomID,
		Name:       name,
		HostID:     hostID,
		MemberIDs:  []model.PlayerID{hostID},
		MaxPlayers: maxPlayers,
		NumBots:    numBots,
		Status:     model.GameStatusWaiting,
		CreatedAt:  now,
		ExpiresAt:  now.Add(RoomTTL),
	}
	s.rooms[roomID] = room
	return room, nil
}

// JoinRoom adds a player to a room. Joining an expired or full room
// fails, and joining twice is a no-op error.
func (s *InMemory) JoinRoom(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok || s.expired(room) {
		return model.ErrRoomNotFound
	}
	if room.HasMember(playerID) {
		return model.ErrAlreadyInRoom
	}
	if len(room.MemberIDs) >= room.MaxPlayers {
		return model.ErrRoomFull
	}

	room.MemberIDs = append(room.MemberIDs, playerID)
	return nil
}

// GetRoom returns the room, treating expired rooms as absent
func (s *InMemory) GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomID]
	if !ok || s.expired(room) {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

// SetRoomStatus mirrors the game phase onto the room record
func (s *InMemory) SetRoomStatus(ctx context.Context, roomID model.RoomID, status model.GameStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok || s.expired(room) {
		return model.ErrRoomNotFound
	}
	room.Status = status
	return nil
}

// CleanupExpired removes expired rooms and returns their IDs so the
// caller can drop the game state attached to each
func (s *InMemory) CleanupExpired(ctx context.Context) ([]model.RoomID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []model.RoomID
	for id, room := range s.rooms {
		if s.expired(room) {
			delete(s.rooms, id)
			removed = append(removed, id)
		}
	}
	return removed, nil
}

func (s *InMemory) expired(room *model.Room) bool {
	return s.clock.Now().After(room.ExpiresAt)
}
