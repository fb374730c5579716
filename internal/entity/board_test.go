package entity

import (
	"testing"

	"github.com/rocketscienceinc/zoo-mahjong/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSequence = []Animal{Lion, Monkey, Elephant}

func boardWith(t *testing.T, tiles map[Cell]Animal) *Board {
	t.Helper()

	board := &Board{}
	for cell, animal := range tiles {
		require.NoError(t, board.Place(cell, animal))
	}
	return board
}

func TestCheckSequence(t *testing.T) {
	t.Run("Finds sequence in a row left to right", func(t *testing.T) {
		// Given: Lion, Monkey, Elephant placed left to right in row 0
		board := boardWith(t, map[Cell]Animal{
			{0, 0}: Lion, {0, 1}: Monkey, {0, 2}: Elephant,
		})

		// When: checking the sequence
		found := CheckSequence(board, testSequence)

		// Then: it should be found
		assert.True(t, found)
	})

	t.Run("Finds sequence at the last offset of a row", func(t *testing.T) {
		// Given: the sequence ends in the last column
		board := boardWith(t, map[Cell]Animal{
			{4, 2}: Lion, {4, 3}: Monkey, {4, 4}: Elephant,
		})

		// Then: it should be found
		assert.True(t, CheckSequence(board, testSequence))
	})

	t.Run("Finds sequence in a column top to bottom", func(t *testing.T) {
		// Given: the sequence going down column 3
		board := boardWith(t, map[Cell]Animal{
			{1, 3}: Lion, {2, 3}: Monkey, {3, 3}: Elephant,
		})

		// Then: it should be found
		assert.True(t, CheckSequence(board, testSequence))
	})

	t.Run("Finds sequence on a down-right diagonal", func(t *testing.T) {
		// Given: the sequence from (2,0) to (4,2)
		board := boardWith(t, map[Cell]Animal{
			{2, 0}: Lion, {3, 1}: Monkey, {4, 2}: Elephant,
		})

		// Then: it should be found
		assert.True(t, CheckSequence(board, testSequence))
	})

	t.Run("Finds sequence on an up-right diagonal", func(t *testing.T) {
		// Given: the sequence read from bottom-left (4,0) to top-right (2,2)
		board := boardWith(t, map[Cell]Animal{
			{4, 0}: Lion, {3, 1}: Monkey, {2, 2}: Elephant,
		})

		// Then: it should be found
		assert.True(t, CheckSequence(board, testSequence))
	})

	t.Run("Does not match reversed or scrambled orders", func(t *testing.T) {
		// Given: the animals in the wrong order along every orientation
		board := boardWith(t, map[Cell]Animal{
			{0, 0}: Elephant, {0, 1}: Monkey, {0, 2}: Lion,
			{2, 4}: Monkey, {3, 4}: Lion, {4, 4}: Elephant,
			{1, 0}: Monkey, {2, 1}: Elephant, {3, 2}: Lion,
		})

		// Then: no orientation should match
		assert.False(t, CheckSequence(board, testSequence))
	})

	t.Run("Does not match a column read bottom to top", func(t *testing.T) {
		// Given: the sequence placed upwards in a column
		board := boardWith(t, map[Cell]Animal{
			{4, 0}: Lion, {3, 0}: Monkey, {2, 0}: Elephant,
		})

		// Then: only top-to-bottom columns count
		assert.False(t, CheckSequence(board, testSequence))
	})

	t.Run("Gap breaks the run", func(t *testing.T) {
		// Given: an empty cell between Lion and Monkey
		board := boardWith(t, map[Cell]Animal{
			{0, 0}: Lion, {0, 2}: Monkey, {0, 3}: Elephant,
		})

		// Then: it should not be found
		assert.False(t, CheckSequence(board, testSequence))
	})

	t.Run("Does not wrap around rows", func(t *testing.T) {
		// Given: Lion, Monkey at the end of row 0 and Elephant at the start of row 1
		board := boardWith(t, map[Cell]Animal{
			{0, 3}: Lion, {0, 4}: Monkey, {1, 0}: Elephant,
		})

		// Then: it should not be found
		assert.False(t, CheckSequence(board, testSequence))
	})

	t.Run("Empty board and empty sequence never match", func(t *testing.T) {
		board := &Board{}

		assert.False(t, CheckSequence(board, testSequence))
		assert.False(t, CheckSequence(board, nil))
	})
}

func TestCheckCondition(t *testing.T) {
	tests := []struct {
		name   string
		tigers int
		lions  int
		want   bool
	}{
		{name: "zero against zero", tigers: 0, lions: 0, want: false},
		{name: "two against two", tigers: 2, lions: 2, want: false},
		{name: "three against one", tigers: 3, lions: 1, want: true},
		{name: "one against three", tigers: 1, lions: 3, want: false},
		{name: "one against zero", tigers: 1, lions: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board with the requested counts laid out row-major
			board := &Board{}
			cells := board.EmptyCells()
			next := 0
			for i := 0; i < tt.tigers; i++ {
				require.NoError(t, board.Place(cells[next], Tiger))
				next++
			}
			for i := 0; i < tt.lions; i++ {
				require.NoError(t, board.Place(cells[next], Lion))
				next++
			}

			// When: checking "more Tiger than Lion"
			got := CheckCondition(board, Tiger, Lion)

			// Then: it follows the strict comparison
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a tile on an empty cell", func(t *testing.T) {
		board := &Board{}

		err := board.Place(Cell{Row: 2, Col: 3}, Giraffe)

		require.NoError(t, err)
		assert.Equal(t, Giraffe, board.At(Cell{Row: 2, Col: 3}))
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("Rejects an occupied cell and keeps the tile", func(t *testing.T) {
		// Given: a Lion on (0,0)
		board := boardWith(t, map[Cell]Animal{{0, 0}: Lion})

		// When: placing a Tiger on the same cell
		err := board.Place(Cell{Row: 0, Col: 0}, Tiger)

		// Then: ErrCellOccupied and the Lion stays
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, Lion, board.At(Cell{Row: 0, Col: 0}))
	})

	t.Run("Rejects off-grid cells", func(t *testing.T) {
		board := &Board{}

		assert.ErrorIs(t, board.Place(Cell{Row: 5, Col: 0}, Lion), apperror.ErrInvalidCell)
		assert.ErrorIs(t, board.Place(Cell{Row: 0, Col: -1}, Lion), apperror.ErrInvalidCell)
		assert.Equal(t, 0, board.Filled())
	})

	t.Run("Rejects unknown animals", func(t *testing.T) {
		board := &Board{}

		err := board.Place(Cell{Row: 0, Col: 0}, Animal("Penguin"))

		assert.ErrorIs(t, err, apperror.ErrUnknownAnimal)
	})

	t.Run("Board is full after every cell is placed", func(t *testing.T) {
		board := &Board{}
		for i, cell := range board.EmptyCells() {
			require.False(t, board.IsFull())
			require.NoError(t, board.Place(cell, Animals[i%len(Animals)]))
		}

		assert.True(t, board.IsFull())
		assert.Empty(t, board.EmptyCells())
		assert.Equal(t, CellCount, board.Filled())
	})
}

func TestAnimal(t *testing.T) {
	animal, err := ParseAnimal("Monkey")
	require.NoError(t, err)
	assert.Equal(t, Monkey, animal)
	assert.Equal(t, "M", animal.Initial())
	assert.Equal(t, ".", NoAnimal.Initial())

	_, err = ParseAnimal("Penguin")
	assert.ErrorIs(t, err, apperror.ErrUnknownAnimal)
}
