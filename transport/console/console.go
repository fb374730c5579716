package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
	"github.com/rocketscienceinc/zoo-mahjong/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

// Console is a hot-seat terminal: it reads bids and spots for human seats and
// prints every game event.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (that *Console) Bid(ctx context.Context, _ *entity.Game, player *entity.Player, _ entity.Animal) (int, error) {
	for {
		line, err := that.prompt(ctx, fmt.Sprintf("%s bids (chips left %d): ", player.Name, player.Chips))
		if err != nil {
			return 0, err
		}

		bid, err := strconv.Atoi(line)
		if err != nil {
			that.println("Enter a number.")
			continue
		}

		return bid, nil
	}
}

func (that *Console) Placement(ctx context.Context, _ *entity.Game, _ *entity.Player, _ entity.Animal) (entity.Cell, error) {
	for {
		line, err := that.prompt(ctx, "Choose spot as row,col: ")
		if err != nil {
			return entity.Cell{}, err
		}

		cell, ok := parseCell(line)
		if !ok {
			that.println("Invalid input. Use row,col format.")
			continue
		}

		return cell, nil
	}
}

// PlayAgain asks whether to start another game. EOF means no.
func (that *Console) PlayAgain(ctx context.Context) bool {
	line, err := that.prompt(ctx, "Play again? (y/n): ")
	if err != nil {
		return false
	}

	return strings.EqualFold(line, "y")
}

func (that *Console) GameStarted(game *entity.Game) {
	that.printSecrets(game)
}

// GameResumed reminds both players of their secrets before a saved game goes on.
func (that *Console) GameResumed(game *entity.Game) {
	that.printf("Resuming game %s, round %d\n", game.ID, game.Round+1)
	that.printSecrets(game)
}

func (that *Console) printSecrets(game *entity.Game) {
	for _, player := range game.Players {
		that.println("")
		that.printf("%s secret sequence: %s\n", player.Name, formatSequence(player.Sequence))
		that.printf("%s condition: %s\n", player.Name, player.Condition)
	}
	that.println("")
}

func (that *Console) RoundStarted(game *entity.Game, tile entity.Animal) {
	that.printf("--- Round %d ---\n", game.Round+1)
	that.printBoard(&game.Board)
	that.printf("Tile up for auction: %s\n", tile)
}

func (that *Console) InputRejected(_ *entity.Player, err error) {
	switch {
	case errors.Is(err, apperror.ErrInvalidBid):
		that.println("Invalid bid.")
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrCellOccupied):
		that.println("Invalid spot. Try again.")
	default:
		that.println(err.Error())
	}
}

func (that *Console) AuctionResolved(game *entity.Game, auction *entity.Auction) {
	for i, player := range game.Players {
		if !player.IsBot() {
			continue
		}

		chipsBefore := player.Chips
		if auction.Winner == player.ID {
			chipsBefore += auction.WinningBid()
		}
		that.printf("%s bids %d (chips left %d)\n", player.Name, auction.Bids[i], chipsBefore)
	}

	winner := game.Players[auction.Winner-1]
	if auction.CoinFlip {
		that.printf("Tie! %s wins the auction by coin flip.\n", winner.Name)
	}
	that.printf("%s wins and places the tile.\n", winner.Name)
}

func (that *Console) TilePlaced(game *entity.Game, auction *entity.Auction) {
	winner := game.Players[auction.Winner-1]
	if winner.IsBot() && auction.Cell != nil {
		that.printf("%s chooses spot %s\n", winner.Name, auction.Cell)
	}
}

func (that *Console) GameOver(game *entity.Game) {
	that.printBoard(&game.Board)

	if game.IsDraw() {
		that.println("The board is full. It's a draw!")
		return
	}

	that.printf("%s wins!\n", game.Players[game.Winner-1].Name)
}

func (that *Console) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.printf("%s", text)

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
	}

	return strings.TrimSpace(line), nil
}

func (that *Console) printBoard(board *entity.Board) {
	header := make([]string, 0, entity.BoardSize)
	for c := 0; c < entity.BoardSize; c++ {
		header = append(header, strconv.Itoa(c))
	}
	that.printf("  %s\n", strings.Join(header, " "))

	for r, row := range board {
		cells := make([]string, 0, entity.BoardSize)
		for _, animal := range row {
			cells = append(cells, animal.Initial())
		}
		that.printf("%d %s\n", r, strings.Join(cells, " "))
	}
	that.println("")
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}

func (that *Console) println(text string) {
	_, _ = fmt.Fprintln(that.out, text)
}

func parseCell(line string) (entity.Cell, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return entity.Cell{}, false
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return entity.Cell{}, false
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return entity.Cell{}, false
	}

	return entity.Cell{Row: row, Col: col}, true
}

func formatSequence(sequence []entity.Animal) string {
	names := make([]string, 0, len(sequence))
	for _, animal := range sequence {
		names = append(names, string(animal))
	}
	return "[" + strings.Join(names, ", ") + "]"
}
