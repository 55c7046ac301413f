package error

import (
	"errors"
	"fmt"
)

// Placement rejections. The messages are stable so callers
// can print or match on them.
var (
	ErrOutOfBounds       = errors.New("boat placement is out of grid bounds")
	ErrBoatCount         = errors.New("no boats of this length remaining")
	ErrOverlap           = errors.New("boat placement overlaps an occupied cell")
	ErrInvalidBoatLength = errors.New("boat length must be between 1 and 4")
)

// Board construction and decoding.
var (
	ErrInventoryArity = errors.New("inventory must have exactly 4 counts")
	ErrNegativeCount  = errors.New("inventory count must not be negative")
	ErrInvalidSide    = errors.New("board side length out of range")
	ErrMalformedBoard = errors.New("malformed board text")
)

// Request arguments, checked before reaching the board.
var (
	ErrInvalidOrientation = errors.New("orientation must be a digit followed by V or H")
	ErrInvalidPosition    = errors.New("position needs 2 non-negative values")
	ErrInvalidCounts      = errors.New("boat counts need 4 non-negative values")
	ErrBoardNotExists     = errors.New("board does not exist")
)

func ErrBoatOutOfBounds(length, row, col int) error {
	return fmt.Errorf("%w\tlength: %d\trow: %d\tcol: %d", ErrOutOfBounds, length, row, col)
}

func ErrNoBoatsRemaining(length int) error {
	return fmt.Errorf("%w\tlength: %d", ErrBoatCount, length)
}

func ErrBoatOverlap(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOverlap, row, col)
}

func ErrBoatLength(length int) error {
	return fmt.Errorf("%w\tgot: %d", ErrInvalidBoatLength, length)
}

func ErrCountsLength(got int) error {
	return fmt.Errorf("%w\tgot: %d", ErrInventoryArity, got)
}

func ErrCountNegative(length, count int) error {
	return fmt.Errorf("%w\tlength: %d\tcount: %d", ErrNegativeCount, length, count)
}

func ErrSideLength(side, maxSide int) error {
	return fmt.Errorf("%w\tgot: %d\tmax: %d", ErrInvalidSide, side, maxSide)
}

func ErrMalformedLine(line int, reason string) error {
	return fmt.Errorf("%w\tline: %d\t%s", ErrMalformedBoard, line, reason)
}

func ErrOrientationToken(token string) error {
	return fmt.Errorf("%w\tgot: %q", ErrInvalidOrientation, token)
}

func ErrPositionValues(values []string) error {
	return fmt.Errorf("%w\tgot: %q", ErrInvalidPosition, values)
}

func ErrCountsValues(values []string) error {
	return fmt.Errorf("%w\tgot: %q", ErrInvalidCounts, values)
}

func ErrBoardNotFound(key string) error {
	return fmt.Errorf("%w\tkey: %s", ErrBoardNotExists, key)
}
