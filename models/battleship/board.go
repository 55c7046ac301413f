package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

const (
	// Side length of the board when nothing else is configured
	DefaultSideLength int = 20
	// Largest side a board may have, keeps side*side cells
	// allocatable
	MaxSideLength int = 1000

	MinBoatLength int = 1
	MaxBoatLength int = 4
)

// Inventory holds the remaining boats per length.
// Index i is the count of boats of length i+1.
type Inventory [MaxBoatLength]int

func (inv Inventory) index(length int) (int, bool) {
	if length < MinBoatLength || length > MaxBoatLength {
		return 0, false
	}
	return length - 1, true
}

// Remaining returns how many boats of the given length
// can still be placed. Unknown lengths have none.
func (inv Inventory) Remaining(length int) int {
	i, ok := inv.index(length)
	if !ok {
		return 0
	}
	return inv[i]
}

func (inv Inventory) take(length int) Inventory {
	i, _ := inv.index(length)
	inv[i]--
	return inv
}

// Position is a zero-based cell on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Board is a square occupancy grid plus the inventory of
// boats left to place. It is a value: Place never changes
// the board it was given.
type Board struct {
	side      int
	inventory Inventory
	cells     []bool
}

// Creates an empty board with every cell unoccupied.
func NewBoard(side int, counts []int) (Board, error) {
	if err := ValidateSide(side); err != nil {
		return Board{}, err
	}
	if len(counts) != MaxBoatLength {
		return Board{}, cerr.ErrCountsLength(len(counts))
	}

	var inv Inventory
	for i, c := range counts {
		if c < 0 {
			return Board{}, cerr.ErrCountNegative(i+1, c)
		}
		inv[i] = c
	}

	return Board{
		side:      side,
		inventory: inv,
		cells:     make([]bool, side*side),
	}, nil
}

func ValidateSide(side int) error {
	if side < 1 || side > MaxSideLength {
		return cerr.ErrSideLength(side, MaxSideLength)
	}
	return nil
}

func (b Board) Side() int {
	return b.side
}

func (b Board) Inventory() Inventory {
	return b.inventory
}

func (b Board) Remaining(length int) int {
	return b.inventory.Remaining(length)
}

// Occupied reports whether a boat covers the cell. Callers
// must keep row and col inside [0, Side()).
func (b Board) Occupied(row, col int) bool {
	if row < 0 || row >= b.side || col < 0 || col >= b.side {
		panic(fmt.Sprintf("battleship: cell (%d, %d) outside %dx%d board", row, col, b.side, b.side))
	}
	return b.cells[row*b.side+col]
}

func (b Board) OccupiedCount() int {
	var n int
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

func (b Board) Equal(other Board) bool {
	if b.side != other.side || b.inventory != other.inventory || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid with a border and the remaining
// boats underneath, for humans rather than for storage.
func (b Board) String() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", b.side) + "+\n"

	sb.WriteString(border)
	for row := 0; row < b.side; row++ {
		sb.WriteByte('|')
		for col := 0; col < b.side; col++ {
			if b.Occupied(row, col) {
				sb.WriteByte(cellOccupied)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	for length := MinBoatLength; length <= MaxBoatLength; length++ {
		fmt.Fprintf(&sb, "length %d: %d left\n", length, b.Remaining(length))
	}
	return sb.String()
}

func (b Board) withCells() Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	b.cells = cells
	return b
}
