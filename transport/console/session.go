package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/zoo-mahjong/internal/engine"
	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

var ErrNoBot = errors.New("no bot to play a computer seat")

type gameManager interface {
	StartGame(ctx context.Context, seats [2]engine.SeatSpec) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	Play(ctx context.Context, game *entity.Game, seats engine.Seats, sink engine.DisplaySink) error
}

// Session plays games on one console until the player stops. New games seat
// the bot as player 2 when ai is set; resumed games keep their stored seats.
type Session struct {
	console *Console
	manager gameManager
	bot     engine.InputProvider
	ai      bool
}

func NewSession(console *Console, manager gameManager, bot engine.InputProvider, ai bool) *Session {
	return &Session{
		console: console,
		manager: manager,
		bot:     bot,
		ai:      ai,
	}
}

func (that *Session) seatSpecs() [2]engine.SeatSpec {
	if that.ai {
		return [2]engine.SeatSpec{{Name: "Player 1"}, {Name: "Computer", Bot: true}}
	}

	return [2]engine.SeatSpec{{Name: "Player 1"}, {Name: "Player 2"}}
}

// Run plays a first game, resuming resumeID when set, then asks to play again.
func (that *Session) Run(ctx context.Context, resumeID string) error {
	for {
		var (
			game *entity.Game
			err  error
		)

		if resumeID != "" {
			game, err = that.manager.GetGame(ctx, resumeID)
			resumeID = ""
			if err == nil && game.IsOngoing() {
				that.console.GameResumed(game)
			}
		} else {
			game, err = that.manager.StartGame(ctx, that.seatSpecs())
		}

		if err != nil {
			return fmt.Errorf("failed to get game: %w", err)
		}

		seats, err := that.seatsFor(game)
		if err != nil {
			return err
		}

		if err = that.manager.Play(ctx, game, seats, that.console); err != nil {
			return fmt.Errorf("failed to play game %s: %w", game.ID, err)
		}

		if !that.console.PlayAgain(ctx) {
			return nil
		}
	}
}

// seatsFor follows the bot flags stored on the game, so a resumed game keeps its seats.
func (that *Session) seatsFor(game *entity.Game) (engine.Seats, error) {
	var seats engine.Seats
	for i, player := range game.Players {
		if !player.IsBot() {
			seats[i] = that.console
			continue
		}

		if that.bot == nil {
			return seats, fmt.Errorf("%w: %s", ErrNoBot, player.Name)
		}
		seats[i] = that.bot
	}

	return seats, nil
}
