package model

// HiddenCard is the opaque placeholder standing in for a face-down
// card on the wire. It has no fields so it serialises as an empty
// object.
type HiddenCard struct{}

// PlayerView is the redacted projection of one seat for a particular
// viewer. Hand is populated only when the viewer owns the seat;
// HandCount is always populated.
type PlayerView struct {
	ID        PlayerID     `json:"player_id"`
	Name      string       `json:"name"`
	Hand      []Card       `json:"hand"`
	HandCount int          `json:"hand_count"`
	FaceUp    []Card       `json:"face_up"`
	FaceDown  []HiddenCard `json:"face_down"`
	IsBot     bool         `json:"is_bot"`
	IsReady   bool         `json:"is_ready"`
	Score     int          `json:"score"`
}

// GameView is the redacted projection of a game for one viewer. It is
// the only game representation handed to transport clients; deck
// contents never appear in it, only the count.
type GameView struct {
	RoomID             RoomID       `json:"room_id"`
	Players            []PlayerView `json:"players"`
	CurrentPlayerIndex int          `json:"current_player_index"`
	DeckCount          int          `json:"deck_count"`
	DiscardPile        []Card       `json:"discard_pile"`
	Status             GameStatus   `json:"game_status"`
}
