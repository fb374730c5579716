package engine

import (
	"context"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

// InputProvider answers for one seat. Console and bot are the two implementations.
type InputProvider interface {
	Bid(ctx context.Context, game *entity.Game, player *entity.Player, tile entity.Animal) (int, error)
	Placement(ctx context.Context, game *entity.Game, player *entity.Player, tile entity.Animal) (entity.Cell, error)
}

// DisplaySink receives every state change of a game, in order.
type DisplaySink interface {
	GameStarted(game *entity.Game)
	RoundStarted(game *entity.Game, tile entity.Animal)
	InputRejected(player *entity.Player, err error)
	AuctionResolved(game *entity.Game, auction *entity.Auction)
	TilePlaced(game *entity.Game, auction *entity.Auction)
	GameOver(game *entity.Game)
}

// Seats maps player 1 and player 2 to their input providers.
type Seats [2]InputProvider

// NopSink discards every event.
type NopSink struct{}

func (NopSink) GameStarted(*entity.Game) {}
func (NopSink) RoundStarted(*entity.Game, entity.Animal) {}
func (NopSink) InputRejected(*entity.Player, error) {}
func (NopSink) AuctionResolved(*entity.Game, *entity.Auction) {}
func (NopSink) TilePlaced(*entity.Game, *entity.Auction) {}
func (NopSink) GameOver(*entity.Game) {}
