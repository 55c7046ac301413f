package battleship

import (
	"strings"
	"testing"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEmptyBoard(t *testing.T) {
	board, err := NewBoard(3, []int{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, "1 2 3 4\n   \n   \n   \n", Encode(board))
}

func TestEncodeDefaultSize(t *testing.T) {
	board, err := NewBoard(DefaultSideLength, []int{4, 3, 2, 1})
	require.NoError(t, err)

	lines := strings.Split(Encode(board), "\n")
	// header, 20 rows and the empty string after the last newline
	require.Len(t, lines, DefaultSideLength+2)
	assert.Equal(t, "4 3 2 1", lines[0])
	for _, row := range lines[1 : DefaultSideLength+1] {
		assert.Equal(t, strings.Repeat(" ", DefaultSideLength), row)
	}
	assert.Empty(t, lines[DefaultSideLength+1])
}

func TestDecodeRoundTrip(t *testing.T) {
	board, err := NewBoard(DefaultSideLength, []int{4, 3, 2, 1})
	require.NoError(t, err)

	placements := []struct {
		boat   Boat
		anchor Position
	}{
		{NewBoat(4, AxisHorizontal), NewPosition(0, 16)},
		{NewBoat(3, AxisVertical), NewPosition(17, 0)},
		{NewBoat(2, AxisHorizontal), NewPosition(10, 10)},
		{NewBoat(1, AxisVertical), NewPosition(19, 19)},
	}
	for _, p := range placements {
		board, err = Place(board, p.boat, p.anchor)
		require.NoError(t, err)
	}

	decoded, err := Decode(DefaultSideLength, Encode(board))
	require.NoError(t, err)

	assert.True(t, decoded.Equal(board))
	assert.Equal(t, Inventory{3, 2, 1, 0}, decoded.Inventory())
	assert.Equal(t, 10, decoded.OccupiedCount())
	assert.Equal(t, Encode(board), Encode(decoded))
}

func TestDecodeSmallBoard(t *testing.T) {
	board, err := Decode(3, "0 1 0 2\r\nB  \r\n B \r\n  B\r\n")
	require.NoError(t, err)

	assert.Equal(t, Inventory{0, 1, 0, 2}, board.Inventory())
	for i := 0; i < 3; i++ {
		assert.True(t, board.Occupied(i, i))
	}
	assert.Equal(t, 3, board.OccupiedCount())
}

func TestDecodeZeroAndMultiDigitCounts(t *testing.T) {
	board, err := Decode(2, "0 10 0 120\n  \n  \n")
	require.NoError(t, err)
	assert.Equal(t, Inventory{0, 10, 0, 120}, board.Inventory())
}

func TestDecodeWithoutTrailingNewline(t *testing.T) {
	board, err := Decode(2, "1 1 1 1\nBB\n  ")
	require.NoError(t, err)
	assert.Equal(t, 2, board.OccupiedCount())
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty text", text: ""},
		{name: "three counts", text: "1 1 1\n  \n  \n"},
		{name: "five counts", text: "1 1 1 1 1\n  \n  \n"},
		{name: "count is not a number", text: "1 x 1 1\n  \n  \n"},
		{name: "negative count", text: "1 -1 1 1\n  \n  \n"},
		{name: "double space between counts", text: "1  1 1 1\n  \n  \n"},
		{name: "count with a plus sign", text: "+1 1 1 1\n  \n  \n"},
		{name: "count with a leading zero", text: "1 01 1 1\n  \n  \n"},
		{name: "missing row", text: "1 1 1 1\n  \n"},
		{name: "extra row", text: "1 1 1 1\n  \n  \n  \n"},
		{name: "short row", text: "1 1 1 1\n \n  \n"},
		{name: "long row", text: "1 1 1 1\n   \n  \n"},
		{name: "unknown cell", text: "1 1 1 1\nX \n  \n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Decode(2, test.text)
			assert.ErrorIs(t, err, cerr.ErrMalformedBoard)
		})
	}
}

func TestDecodeInvalidSide(t *testing.T) {
	for _, side := range []int{0, -3, MaxSideLength + 1, 1 << 32} {
		_, err := Decode(side, "1 1 1 1\n")
		assert.ErrorIs(t, err, cerr.ErrInvalidSide)
	}
}
