package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

const (
	axisTokenHorizontal byte = 'H'
	axisTokenVertical   byte = 'V'
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Boat is a placement request. Boats are not kept once
// placed, only the cells they cover are.
type Boat struct {
	Length int
	Axis   Axis
}

func NewBoat(length int, axis Axis) Boat {
	return Boat{Length: length, Axis: axis}
}

// ParseBoat reads a two character token such as "3H" or
// "1V": the boat length, then the axis.
func ParseBoat(token string) (Boat, error) {
	if len(token) != 2 {
		return Boat{}, cerr.ErrOrientationToken(token)
	}

	digit := token[0]
	if digit < '0' || digit > '9' {
		return Boat{}, cerr.ErrOrientationToken(token)
	}

	var axis Axis
	switch token[1] {
	case axisTokenHorizontal:
		axis = AxisHorizontal
	case axisTokenVertical:
		axis = AxisVertical
	default:
		return Boat{}, cerr.ErrOrientationToken(token)
	}

	length := int(digit - '0')
	if length < MinBoatLength || length > MaxBoatLength {
		return Boat{}, cerr.ErrBoatLength(length)
	}

	return NewBoat(length, axis), nil
}

// span returns the cells the boat covers from anchor, in
// order of increasing row or column.
func (bt Boat) span(anchor Position) []Position {
	cells := make([]Position, 0, bt.Length)
	for i := 0; i < bt.Length; i++ {
		if bt.Axis == AxisVertical {
			cells = append(cells, NewPosition(anchor.Row+i, anchor.Col))
		} else {
			cells = append(cells, NewPosition(anchor.Row, anchor.Col+i))
		}
	}
	return cells
}
