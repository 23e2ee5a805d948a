package storage

import (
	"context"

	"github.com/mcoot/palacegame-go/internal/model"
)

// Storage defines the persistence interface for game state. States are
// keyed by the room that owns them; per-room write serialization is the
// caller's responsibility.
type Storage interface {
	SaveGameState(ctx context.Context, state *model.GameState) error
	GetGameState(ctx context.Context, roomID model.RoomID) (*model.GameState, error)
	DeleteGameState(ctx context.Context, roomID model.RoomID) error
	GameStateExists(ctx context.Context, roomID model.RoomID) (bool, error)
}
