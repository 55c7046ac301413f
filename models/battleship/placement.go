package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// Place puts the boat on a copy of the board with its first
// cell at anchor. Checks run in a fixed order (bounds, then
// inventory, then overlap) so the reported error is stable
// when several apply. On error the input board is returned
// as is.
func Place(board Board, boat Boat, anchor Position) (Board, error) {
	if boat.Length < MinBoatLength || boat.Length > MaxBoatLength {
		return board, cerr.ErrBoatLength(boat.Length)
	}

	if !board.fits(boat, anchor) {
		return board, cerr.ErrBoatOutOfBounds(boat.Length, anchor.Row, anchor.Col)
	}

	if board.Remaining(boat.Length) == 0 {
		return board, cerr.ErrNoBoatsRemaining(boat.Length)
	}

	span := boat.span(anchor)
	for _, p := range span {
		if board.Occupied(p.Row, p.Col) {
			return board, cerr.ErrBoatOverlap(p.Row, p.Col)
		}
	}

	placed := board.withCells()
	for _, p := range span {
		placed.cells[p.Row*placed.side+p.Col] = true
	}
	placed.inventory = placed.inventory.take(boat.Length)

	return placed, nil
}

// The span end is exclusive, so a boat may touch the far edge.
func (b Board) fits(boat Boat, anchor Position) bool {
	if anchor.Row < 0 || anchor.Col < 0 || anchor.Row >= b.side || anchor.Col >= b.side {
		return false
	}

	end := anchor.Col + boat.Length
	if boat.Axis == AxisVertical {
		end = anchor.Row + boat.Length
	}
	return end <= b.side
}
