package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

type randomizer interface {
	Intn(n int) int
}

// BotService plays a seat at random: any affordable bid, any empty cell.
type BotService struct {
	rng randomizer
}

func NewBotService(rng randomizer) *BotService {
	return &BotService{rng: rng}
}

func (that *BotService) Bid(_ context.Context, _ *entity.Game, player *entity.Player, _ entity.Animal) (int, error) {
	return that.rng.Intn(player.Chips + 1), nil
}

func (that *BotService) Placement(_ context.Context, game *entity.Game, _ *entity.Player, _ entity.Animal) (entity.Cell, error) {
	availableCells := game.Board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Cell{}, fmt.Errorf("bot failed to place: %w", apperror.ErrNoAvailableMoves)
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}
