package manager_test

import (
	"encoding/json"

	"github.com/mcoot/palacegame-go/internal/model"
)

func (s *ManagerSuite) TestGetPlayerViewShowsOnlyOwnHand() {
	s.dealTwoPlayerGame()

	view, err := s.manager.GetPlayerView(s.ctx, "room-1", "p1")
	s.Require().NoError(err)

	s.Equal(model.RoomID("room-1"), view.RoomID)
	s.Equal(model.GameStatusSwapping, view.Status)
	s.Equal(0, view.CurrentPlayerIndex)
	s.Equal(28, view.DeckCount)
	s.Empty(view.DiscardPile)
	s.Require().Len(view.Players, 2)

	own := view.Players[0]
	s.Equal(model.PlayerID("p1"), own.ID)
	s.Equal([]model.Card{
		clubs(model.RankKing), clubs(model.RankQueen), clubs(model.RankJack), clubs(model.RankTen),
	}, own.Hand)
	s.Equal(4, own.HandCount)
	s.Equal([]model.Card{
		clubs(model.RankNine), clubs(model.RankEight), clubs(model.RankSeven), clubs(model.RankSix),
	}, own.FaceUp)
	s.Len(own.FaceDown, 4)

	other := view.Players[1]
	s.Equal(model.PlayerID("p2"), other.ID)
	s.Empty(other.Hand)
	s.Equal(4, other.HandCount)
	s.Len(other.FaceUp, 4)
	s.Len(other.FaceDown, 4)
}

func (s *ManagerSuite) TestGetPlayerViewSpectatorSeesNoHands() {
	s.dealTwoPlayerGame()

	view, err := s.manager.GetPlayerView(s.ctx, "room-1", "watcher")
	s.Require().NoError(err)

	for _, p := range view.Players {
		s.Empty(p.Hand)
		s.Equal(4, p.HandCount)
		s.Len(p.FaceUp, 4)
	}
}

func (s *ManagerSuite) TestGetPlayerViewDiscardVisibleToEveryone() {
	s.dealTwoPlayerGame()
	s.swapIdentity("room-1")
	s.Require().NoError(s.manager.StartPlaying(s.ctx, "room-1"))

	_, err := s.manager.PlayCard(s.ctx, "room-1", "p1", clubs(model.RankKing), model.PlaySourceHand)
	s.Require().NoError(err)

	for _, viewer := range []model.PlayerID{"p1", "p2"} {
		view, err := s.manager.GetPlayerView(s.ctx, "room-1", viewer)
		s.Require().NoError(err)
		s.Equal([]model.Card{clubs(model.RankKing)}, view.DiscardPile)
	}
}

func (s *ManagerSuite) TestGetPlayerViewJSONOmitsHiddenCards() {
	s.dealTwoPlayerGame()

	view, err := s.manager.GetPlayerView(s.ctx, "room-1", "p1")
	s.Require().NoError(err)

	encoded, err := json.Marshal(view)
	s.Require().NoError(err)
	payload := string(encoded)

	// The viewer's own cards are on the wire
	s.Contains(payload, `"rank":"king"`)
	s.Contains(payload, `"deck_count":28`)

	// Ranks 2 through 5 were dealt face-down only, and the only ace in
	// a pile sits in the opponent's hand; none of them may appear
	s.NotContains(payload, `"rank":"2"`)
	s.NotContains(payload, `"rank":"3"`)
	s.NotContains(payload, `"rank":"4"`)
	s.NotContains(payload, `"rank":"5"`)
	s.NotContains(payload, `"rank":"ace"`)
}

func (s *ManagerSuite) TestGetPlayerViewUnknownRoom() {
	_, err := s.manager.GetPlayerView(s.ctx, "nonexistent", "p1")
	s.ErrorIs(err, model.ErrGameNotFound)
}
