package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
	"github.com/rocketscienceinc/zoo-mahjong/internal/engine"
)

var ErrResultsDisabled = errors.New("result ledger is not configured")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Expire(ctx context.Context, id string, ttl time.Duration) error
}

type resultRepo interface {
	Record(ctx context.Context, result *entity.Result) error
	List(ctx context.Context, limit int) ([]*entity.Result, error)
}

type rulesEngine interface {
	NewGame(id string, seats [2]engine.SeatSpec) *entity.Game
	PlayRound(ctx context.Context, game *entity.Game, seats engine.Seats, sink engine.DisplaySink) error
}

type GameManager struct {
	logger *slog.Logger

	engine     rulesEngine
	gameRepo   gameRepo
	resultRepo resultRepo

	finishedTTL time.Duration
}

// NewGameManager wires the engine to storage. resultRepo may be nil. Finished
// games stay readable for finishedTTL, 0 removes them at once.
func NewGameManager(
	logger *slog.Logger, rules rulesEngine, gameRepo gameRepo, resultRepo resultRepo, finishedTTL time.Duration,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		engine:     rules,
		gameRepo:   gameRepo,
		resultRepo: resultRepo,

		finishedTTL: finishedTTL,
	}
}

func (that *GameManager) StartGame(ctx context.Context, seats [2]engine.SeatSpec) (*entity.Game, error) {
	game := that.engine.NewGame(uuid.NewString(), seats)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

// Play runs the game to the end, saving a snapshot after every round. A finished game
// goes to the result ledger and its snapshot expires.
func (that *GameManager) Play(ctx context.Context, game *entity.Game, seats engine.Seats, sink engine.DisplaySink) error {
	log := that.logger.With("method", "Play", "gameID", game.ID)

	for !game.IsFinished() {
		if err := that.engine.PlayRound(ctx, game, seats, sink); err != nil {
			return fmt.Errorf("failed to play round %d: %w", game.Round+1, err)
		}

		if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
			return fmt.Errorf("failed to update game: %w", err)
		}

		log.Debug("round saved", "round", game.Round)
	}

	that.finishGame(ctx, game)

	return nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) ListResults(ctx context.Context, limit int) ([]*entity.Result, error) {
	if that.resultRepo == nil {
		return nil, ErrResultsDisabled
	}

	results, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if that.resultRepo != nil {
		if err := that.resultRepo.Record(ctx, entity.NewResult(game)); err != nil {
			log.Error("failed to record result", "error", err)
		}
	}

	if that.finishedTTL > 0 {
		if err := that.gameRepo.Expire(ctx, game.ID, that.finishedTTL); err != nil {
			log.Error("failed to expire game", "error", err)
		}
	} else if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	log.Info("game closed", "winner", game.Winner, "rounds", game.Round)
}
