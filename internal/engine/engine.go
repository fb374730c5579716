package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
	"github.com/rocketscienceinc/zoo-mahjong/internal/config"
	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

// SeatSpec describes a player before secrets are dealt.
type SeatSpec struct {
	Name string
	Bot  bool
}

type Engine struct {
	logger *slog.Logger
	rng    Randomizer

	startingChips    int
	winCheck         string
	maxInputAttempts int
}

func New(logger *slog.Logger, rng Randomizer, conf config.Game) *Engine {
	winCheck := conf.WinCheck
	if winCheck == "" {
		winCheck = config.WinCheckPlacer
	}

	return &Engine{
		logger: logger.With("component", "engine"),
		rng:    rng,

		startingChips:    conf.StartingChips,
		winCheck:         winCheck,
		maxInputAttempts: conf.MaxInputAttempts,
	}
}

// NewGame deals each seat a secret sequence, a secret condition and the starting chips.
func (that *Engine) NewGame(id string, seats [2]SeatSpec) *entity.Game {
	var players [2]*entity.Player
	for i, seat := range seats {
		pair := sampleAnimals(that.rng, 2)

		player := entity.NewPlayer(
			i+1,
			seat.Name,
			that.startingChips,
			sampleAnimals(that.rng, entity.SequenceLength),
			entity.Condition{More: pair[0], Less: pair[1]},
		)
		player.Bot = seat.Bot
		players[i] = player
	}

	return entity.NewGame(id, players[0], players[1])
}

// Run plays rounds until the game is won or drawn.
func (that *Engine) Run(ctx context.Context, game *entity.Game, seats Seats, sink DisplaySink) error {
	for !game.IsFinished() {
		if err := that.PlayRound(ctx, game, seats, sink); err != nil {
			return err
		}
	}

	return nil
}

// PlayRound runs one auction: draw, bid, resolve, place, win-check.
func (that *Engine) PlayRound(ctx context.Context, game *entity.Game, seats Seats, sink DisplaySink) error {
	log := that.logger.With("method", "PlayRound", "gameID", game.ID)

	if game.Status == entity.StatusSetup {
		game.Start()
		sink.GameStarted(game)
	}

	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if game.Board.IsFull() {
		that.finish(game, entity.PlayerNone, sink)
		return nil
	}

	tile := entity.Animals[that.rng.Intn(len(entity.Animals))]
	sink.RoundStarted(game, tile)

	auction := &entity.Auction{Round: game.Round + 1, Tile: tile}
	for i, player := range game.Players {
		bid, err := that.collectBid(ctx, game, player, seats[i], tile, sink)
		if err != nil {
			return err
		}
		auction.Bids[i] = bid
	}

	auction.Winner, auction.CoinFlip = entity.ResolveAuction(auction.Bids, func() int {
		return that.rng.Intn(2)
	})

	winner, err := game.Player(auction.Winner)
	if err != nil {
		return err
	}

	if err = winner.Pay(auction.WinningBid()); err != nil {
		return fmt.Errorf("failed to charge auction winner: %w", err)
	}

	sink.AuctionResolved(game, auction)

	cell, err := that.collectPlacement(ctx, game, winner, seats[auction.Winner-1], tile, sink)
	if err != nil {
		return err
	}

	if err = game.PlaceTile(auction, cell); err != nil {
		return fmt.Errorf("failed to place tile: %w", err)
	}

	sink.TilePlaced(game, auction)

	log.Debug("round played",
		"round", auction.Round, "tile", tile, "bids", auction.Bids,
		"winner", auction.Winner, "coinFlip", auction.CoinFlip, "cell", cell.String())

	if id := that.CheckWinner(game, auction.Winner); id != entity.PlayerNone {
		that.finish(game, id, sink)
		return nil
	}

	if game.Board.IsFull() {
		that.finish(game, entity.PlayerNone, sink)
	}

	return nil
}

// CheckWinner returns the player whose win condition holds, PlayerNone otherwise.
// With the placer policy only the auction winner is evaluated, so a condition
// completed by the opponent stays unnoticed until its owner next places a tile.
func (that *Engine) CheckWinner(game *entity.Game, placer int) int {
	candidates := []int{placer}
	if that.winCheck == config.WinCheckBoth {
		candidates = []int{entity.PlayerOne, entity.PlayerTwo}
	}

	for _, id := range candidates {
		player, err := game.Player(id)
		if err != nil {
			continue
		}

		if player.HasWon(&game.Board) {
			return id
		}
	}

	return entity.PlayerNone
}

func (that *Engine) finish(game *entity.Game, winner int, sink DisplaySink) {
	game.Finish(winner)
	sink.GameOver(game)

	that.logger.Info("game finished", "gameID", game.ID, "winner", winner, "rounds", game.Round)
}

func (that *Engine) collectBid(
	ctx context.Context, game *entity.Game, player *entity.Player, input InputProvider, tile entity.Animal, sink DisplaySink,
) (int, error) {
	bid, err := requestValid(ctx, that.maxInputAttempts,
		func() (int, error) { return input.Bid(ctx, game, player, tile) },
		player.ValidateBid,
		func(err error) { sink.InputRejected(player, err) },
	)
	if err != nil {
		return 0, fmt.Errorf("failed to get bid of player %d: %w", player.ID, err)
	}

	return bid, nil
}

func (that *Engine) collectPlacement(
	ctx context.Context, game *entity.Game, player *entity.Player, input InputProvider, tile entity.Animal, sink DisplaySink,
) (entity.Cell, error) {
	cell, err := requestValid(ctx, that.maxInputAttempts,
		func() (entity.Cell, error) { return input.Placement(ctx, game, player, tile) },
		game.Board.ValidatePlacement,
		func(err error) { sink.InputRejected(player, err) },
	)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to get placement of player %d: %w", player.ID, err)
	}

	return cell, nil
}

// requestValid asks until validate passes. maxAttempts 0 means no limit.
func requestValid[T any](
	ctx context.Context, maxAttempts int, get func() (T, error), validate func(T) error, reject func(error),
) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		value, err := get()
		if err != nil {
			return zero, err
		}

		err = validate(value)
		if err == nil {
			return value, nil
		}

		reject(err)

		if maxAttempts > 0 && attempt >= maxAttempts {
			return zero, fmt.Errorf("%w: last error: %w", apperror.ErrTooManyAttempts, err)
		}
	}
}
