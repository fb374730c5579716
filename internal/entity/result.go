package entity

import "time"

// Result is the ledger entry kept for a finished game.
type Result struct {
	GameID     string    `json:"game_id"`
	Winner     int       `json:"winner"`
	Rounds     int       `json:"rounds"`
	Chips      [2]int    `json:"chips"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewResult(game *Game) *Result {
	result := &Result{
		GameID: game.ID,
		Winner: game.Winner,
		Rounds: game.Round,
	}

	for i, player := range game.Players {
		if player != nil {
			result.Chips[i] = player.Chips
		}
	}

	if game.FinishedAt != nil {
		result.FinishedAt = *game.FinishedAt
	} else {
		result.FinishedAt = time.Now().UTC()
	}

	return result
}

func (that *Result) IsDraw() bool {
	return that.Winner == PlayerNone
}
