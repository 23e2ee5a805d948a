package redis

import (
	"fmt"

	"github.com/mcoot/palacegame-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "palace"

// gameStateKey returns the Redis key for a room's GameState
func gameStateKey(roomID model.RoomID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, roomID)
}
