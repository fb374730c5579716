package entity

type Auction struct {
	Round    int    `json:"round"`
	Tile     Animal `json:"tile"`
	Bids     [2]int `json:"bids"`
	Winner   int    `json:"winner"`
	CoinFlip bool   `json:"coin_flip,omitempty"`
	Cell     *Cell  `json:"cell,omitempty"`
}

// ResolveAuction picks the strictly higher bid. Equal bids go to player 1+flip(),
// where flip returns 0 or 1.
func ResolveAuction(bids [2]int, flip func() int) (int, bool) {
	switch {
	case bids[0] > bids[1]:
		return PlayerOne, false
	case bids[1] > bids[0]:
		return PlayerTwo, false
	}

	if flip() == 0 {
		return PlayerOne, true
	}
	return PlayerTwo, true
}

// WinningBid is what the auction winner pays.
func (that *Auction) WinningBid() int {
	if that.Winner == PlayerNone {
		return 0
	}
	return that.Bids[that.Winner-1]
}
