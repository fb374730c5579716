package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
)

const (
	StatusSetup    = "setup"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownPlayer     = errors.New("unknown player")
)

type Game struct {
	ID          string     `json:"id"`
	Board       Board      `json:"board"`
	Players     [2]*Player `json:"players"`
	Status      string     `json:"status"`
	Round       int        `json:"round"`
	Winner      int        `json:"winner"`
	LastAuction *Auction   `json:"last_auction,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

func NewGame(id string, playerOne, playerTwo *Player) *Game {
	return &Game{
		ID:        id,
		Players:   [2]*Player{playerOne, playerTwo},
		Status:    StatusSetup,
		CreatedAt: time.Now().UTC(),
	}
}

func (that *Game) Player(id int) (*Player, error) {
	if id != PlayerOne && id != PlayerTwo {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return that.Players[id-1], nil
}

func (that *Game) Start() {
	if that.Status == StatusSetup {
		that.Status = StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerNone
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Status {
	case StatusOngoing:
		return nil
	case StatusSetup:
		return apperror.ErrGameIsNotStarted
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// PlaceTile puts the auctioned tile for the auction winner and advances the round.
// Nothing changes when the placement is rejected.
func (that *Game) PlaceTile(auction *Auction, cell Cell) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := that.Board.Place(cell, auction.Tile); err != nil {
		return err
	}

	placed := cell
	auction.Cell = &placed
	that.LastAuction = auction
	that.Round++

	return nil
}

// Finish ends the game. winner is PlayerNone for a draw.
func (that *Game) Finish(winner int) {
	now := time.Now().UTC()

	that.Status = StatusFinished
	that.Winner = winner
	that.FinishedAt = &now
}

// Masked hides both players' secrets while the game is still running.
func (that *Game) Masked() *Game {
	if that.IsFinished() {
		return that
	}

	masked := *that
	for i, player := range that.Players {
		if player != nil {
			masked.Players[i] = player.Masked()
		}
	}
	return &masked
}
