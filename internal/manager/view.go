package manager

import (
	"context"

	"github.com/mcoot/palacegame-go/internal/model"
)

// GetPlayerView produces the redacted projection of a game for one
// viewer. Every other player's hand is emptied, and every face-down
// pile, the viewer's own included, is replaced by opaque placeholders
// of the same length. The viewer does not have to be a player; a
// spectator simply sees no hand at all.
func (m *Manager) GetPlayerView(ctx context.Context, roomID model.RoomID, viewerID model.PlayerID) (*model.GameView, error) {
	lock := m.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()

	state, err := m.storage.GetGameState(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return buildView(state, viewerID), nil
}

func buildView(state *model.GameState, viewerID model.PlayerID) *model.GameView {
	view := &model.GameView{
		RoomID:             state.RoomID,
		Players:            make([]model.PlayerView, 0, len(state.Players)),
		CurrentPlayerIndex: state.CurrentPlayerIndex,
		DeckCount:          len(state.Deck),
		DiscardPile:        append([]model.Card{}, state.DiscardPile...),
		Status:             state.Status,
	}

	for _, p := range state.Players {
		pv := model.PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Hand:      []model.Card{},
			HandCount: len(p.Hand),
			FaceUp:    append([]model.Card{}, p.FaceUp...),
			FaceDown:  make([]model.HiddenCard, len(p.FaceDown)),
			IsBot:     p.IsBot,
			IsReady:   p.IsReady,
			Score:     p.Score,
		}
		if p.ID == viewerID {
			pv.Hand = append(pv.Hand, p.Hand...)
		}
		view.Players = append(view.Players, pv)
	}

	return view
}
