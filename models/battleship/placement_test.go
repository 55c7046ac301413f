package battleship

import (
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewBoard(t *testing.T, side int, counts ...int) Board {
	t.Helper()
	board, err := NewBoard(side, counts)
	require.NoError(t, err)
	return board
}

func mustPlace(t *testing.T, board Board, boat Boat, anchor Position) Board {
	t.Helper()
	placed, err := Place(board, boat, anchor)
	require.NoError(t, err, "placing %+v at %+v", boat, anchor)
	return placed
}

func TestPlaceBounds(t *testing.T) {
	tests := []struct {
		name        string
		boat        Boat
		anchor      Position
		expectedErr error
	}{
		{name: "horizontal past the edge", boat: NewBoat(4, AxisHorizontal), anchor: NewPosition(0, 17), expectedErr: cerr.ErrOutOfBounds},
		{name: "horizontal touching the edge", boat: NewBoat(4, AxisHorizontal), anchor: NewPosition(0, 16)},
		{name: "vertical past the edge", boat: NewBoat(4, AxisVertical), anchor: NewPosition(17, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "vertical touching the edge", boat: NewBoat(4, AxisVertical), anchor: NewPosition(16, 0)},
		{name: "row outside the grid", boat: NewBoat(1, AxisHorizontal), anchor: NewPosition(20, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "col outside the grid", boat: NewBoat(1, AxisVertical), anchor: NewPosition(0, 20), expectedErr: cerr.ErrOutOfBounds},
		{name: "horizontal boat with row outside", boat: NewBoat(2, AxisHorizontal), anchor: NewPosition(25, 3), expectedErr: cerr.ErrOutOfBounds},
		{name: "negative row", boat: NewBoat(1, AxisHorizontal), anchor: NewPosition(-1, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "negative col", boat: NewBoat(2, AxisVertical), anchor: NewPosition(0, -1), expectedErr: cerr.ErrOutOfBounds},
		{name: "last cell", boat: NewBoat(1, AxisVertical), anchor: NewPosition(19, 19)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mustNewBoard(t, DefaultSideLength, 4, 3, 2, 1)

			_, err := Place(board, test.boat, test.anchor)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPlaceOverlap(t *testing.T) {
	board := mustNewBoard(t, DefaultSideLength, 4, 3, 2, 1)
	board = mustPlace(t, board, NewBoat(3, AxisHorizontal), NewPosition(0, 0))

	_, err := Place(board, NewBoat(2, AxisHorizontal), NewPosition(0, 2))
	assert.ErrorIs(t, err, cerr.ErrOverlap)

	// A vertical boat crossing the middle of the first one
	_, err = Place(board, NewBoat(2, AxisVertical), NewPosition(0, 1))
	assert.ErrorIs(t, err, cerr.ErrOverlap)

	board = mustPlace(t, board, NewBoat(2, AxisHorizontal), NewPosition(0, 3))
	assert.Equal(t, 5, board.OccupiedCount())
}

func TestPlaceInventoryExhaustion(t *testing.T) {
	board := mustNewBoard(t, DefaultSideLength, 1, 0, 0, 0)

	for _, anchor := range []Position{NewPosition(0, 0), NewPosition(5, 5), NewPosition(18, 18)} {
		for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
			_, err := Place(board, NewBoat(2, axis), anchor)
			assert.ErrorIs(t, err, cerr.ErrBoatCount)
		}
	}

	board = mustPlace(t, board, NewBoat(1, AxisHorizontal), NewPosition(3, 3))
	assert.Zero(t, board.Remaining(1))

	_, err := Place(board, NewBoat(1, AxisHorizontal), NewPosition(10, 10))
	assert.ErrorIs(t, err, cerr.ErrBoatCount)
}

func TestPlaceCheckOrder(t *testing.T) {
	// bounds is reported before an empty inventory
	empty := mustNewBoard(t, DefaultSideLength, 0, 0, 0, 0)
	_, err := Place(empty, NewBoat(4, AxisHorizontal), NewPosition(0, 17))
	assert.ErrorIs(t, err, cerr.ErrOutOfBounds)

	// an empty inventory is reported before an overlap
	board := mustNewBoard(t, DefaultSideLength, 0, 1, 0, 0)
	board = mustPlace(t, board, NewBoat(2, AxisHorizontal), NewPosition(0, 0))
	_, err = Place(board, NewBoat(2, AxisHorizontal), NewPosition(0, 0))
	assert.ErrorIs(t, err, cerr.ErrBoatCount)
}

func TestPlaceInvalidLength(t *testing.T) {
	board := mustNewBoard(t, DefaultSideLength, 4, 3, 2, 1)

	for _, length := range []int{0, 5, -1} {
		assert.NotPanics(t, func() {
			_, err := Place(board, NewBoat(length, AxisHorizontal), NewPosition(0, 0))
			assert.ErrorIs(t, err, cerr.ErrInvalidBoatLength)
		})
	}
}

func TestPlaceIsAtomic(t *testing.T) {
	board := mustNewBoard(t, DefaultSideLength, 2, 2, 2, 2)
	board = mustPlace(t, board, NewBoat(1, AxisHorizontal), NewPosition(0, 3))
	before := Encode(board)

	// The first three cells are free, only the last one overlaps
	returned, err := Place(board, NewBoat(4, AxisHorizontal), NewPosition(0, 0))
	require.ErrorIs(t, err, cerr.ErrOverlap)

	assert.Equal(t, before, Encode(board))
	assert.True(t, returned.Equal(board))
}

func TestPlaceLeavesInputUntouched(t *testing.T) {
	board := mustNewBoard(t, DefaultSideLength, 4, 3, 2, 1)
	placed := mustPlace(t, board, NewBoat(3, AxisVertical), NewPosition(2, 5))

	assert.Zero(t, board.OccupiedCount())
	assert.Equal(t, 2, board.Remaining(3))

	assert.Equal(t, 3, placed.OccupiedCount())
	for row := 2; row < 5; row++ {
		assert.True(t, placed.Occupied(row, 5), "cell (%d, 5)", row)
	}
	assert.Equal(t, Inventory{4, 3, 1, 1}, placed.Inventory())
}

func TestPlaceSingleCellBothAxes(t *testing.T) {
	for _, axis := range []Axis{AxisHorizontal, AxisVertical} {
		t.Run(axis.String(), func(t *testing.T) {
			board := mustNewBoard(t, DefaultSideLength, 1, 0, 0, 0)
			placed := mustPlace(t, board, NewBoat(1, axis), NewPosition(7, 9))

			assert.Equal(t, 1, placed.OccupiedCount())
			assert.True(t, placed.Occupied(7, 9))
		})
	}
}

func TestPlaceAndEncode(t *testing.T) {
	board := mustNewBoard(t, DefaultSideLength, 4, 3, 2, 1)
	board = mustPlace(t, board, NewBoat(1, AxisVertical), NewPosition(0, 0))

	lines := strings.Split(Encode(board), "\n")
	assert.Equal(t, "3 3 2 1", lines[0])
	assert.Equal(t, "B"+strings.Repeat(" ", 19), lines[1])
}
