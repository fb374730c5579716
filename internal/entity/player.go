package entity

import (
	"fmt"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
)

const (
	PlayerNone = 0
	PlayerOne  = 1
	PlayerTwo  = 2

	SequenceLength = 3
	DefaultChips   = 10
)

// Condition wins when More is on the board strictly more often than Less.
type Condition struct {
	More Animal `json:"more"`
	Less Animal `json:"less"`
}

func (that Condition) String() string {
	return fmt.Sprintf("more %s than %s", that.More, that.Less)
}

type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Chips     int       `json:"chips"`
	Sequence  []Animal  `json:"sequence,omitempty"`
	Condition Condition `json:"condition"`
	Bot       bool      `json:"bot,omitempty"`
}

func NewPlayer(id int, name string, chips int, sequence []Animal, condition Condition) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Chips:     chips,
		Sequence:  sequence,
		Condition: condition,
	}
}

func (that *Player) IsBot() bool {
	return that.Bot
}

func (that *Player) ValidateBid(bid int) error {
	if bid < 0 || bid > that.Chips {
		return fmt.Errorf("%w: %d not in [0, %d]", apperror.ErrInvalidBid, bid, that.Chips)
	}
	return nil
}

// Pay charges a won bid. Chips never go up.
func (that *Player) Pay(bid int) error {
	if err := that.ValidateBid(bid); err != nil {
		return err
	}

	that.Chips -= bid

	return nil
}

func (that *Player) HasWon(board *Board) bool {
	return CheckSequence(board, that.Sequence) ||
		CheckCondition(board, that.Condition.More, that.Condition.Less)
}

// Masked returns a copy without the secret sequence and condition.
func (that *Player) Masked() *Player {
	return &Player{
		ID:    that.ID,
		Name:  that.Name,
		Chips: that.Chips,
		Bot:   that.Bot,
	}
}
