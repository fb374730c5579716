package entity

import (
	"fmt"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
)

const (
	BoardSize = 5
	CellCount = BoardSize * BoardSize
)

// lineDirections are row/col steps: right, down, down-right and up-right.
var lineDirections = [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Cell) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Cell) String() string {
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

type Board [BoardSize][BoardSize]Animal

func (that *Board) At(cell Cell) Animal {
	if !cell.IsValid() {
		return NoAnimal
	}
	return that[cell.Row][cell.Col]
}

func (that *Board) IsEmpty(cell Cell) bool {
	return cell.IsValid() && that[cell.Row][cell.Col] == NoAnimal
}

// ValidatePlacement reports why a tile cannot go to cell, nil if it can.
func (that *Board) ValidatePlacement(cell Cell) error {
	if !cell.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, cell)
	}

	if that[cell.Row][cell.Col] != NoAnimal {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return nil
}

func (that *Board) Place(cell Cell, animal Animal) error {
	if !animal.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownAnimal, animal)
	}

	if err := that.ValidatePlacement(cell); err != nil {
		return err
	}

	that[cell.Row][cell.Col] = animal

	return nil
}

// EmptyCells lists free cells in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, CellCount)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if that[r][c] == NoAnimal {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

func (that *Board) Filled() int {
	return CellCount - len(that.EmptyCells())
}

func (that *Board) IsFull() bool {
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if that[r][c] == NoAnimal {
				return false
			}
		}
	}
	return true
}

func (that *Board) Count(animal Animal) int {
	if animal == NoAnimal {
		return 0
	}

	count := 0
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if that[r][c] == animal {
				count++
			}
		}
	}
	return count
}

// CheckSequence reports whether sequence appears contiguously, in order, along a row
// (left to right), a column (top to bottom) or either diagonal (down-right, up-right).
func CheckSequence(board *Board, sequence []Animal) bool {
	length := len(sequence)
	if length == 0 || length > BoardSize {
		return false
	}

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			for _, dir := range lineDirections {
				if matchesFrom(board, sequence, r, c, dir) {
					return true
				}
			}
		}
	}

	return false
}

func matchesFrom(board *Board, sequence []Animal, row, col int, dir [2]int) bool {
	for i, want := range sequence {
		cell := Cell{Row: row + i*dir[0], Col: col + i*dir[1]}
		if !cell.IsValid() {
			return false
		}

		got := board[cell.Row][cell.Col]
		if got == NoAnimal || got != want {
			return false
		}
	}
	return true
}

// CheckCondition is true iff more is placed strictly more often than less.
func CheckCondition(board *Board, more, less Animal) bool {
	return board.Count(more) > board.Count(less)
}
