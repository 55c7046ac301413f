package battleship

import (
	"fmt"
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

const (
	cellEmpty    byte = ' '
	cellOccupied byte = 'B'
)

// Encode writes the board in its file format: the four
// inventory counts on the first line, then one line per row
// with ' ' for an empty cell and 'B' for an occupied one.
func Encode(b Board) string {
	var sb strings.Builder
	sb.Grow((b.side + 1) * (b.side + 1))

	counts := make([]string, len(b.inventory))
	for i, c := range b.inventory {
		counts[i] = strconv.Itoa(c)
	}
	sb.WriteString(strings.Join(counts, " "))
	sb.WriteByte('\n')

	for row := 0; row < b.side; row++ {
		for col := 0; col < b.side; col++ {
			if b.cells[row*b.side+col] {
				sb.WriteByte(cellOccupied)
			} else {
				sb.WriteByte(cellEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Decode parses text produced by Encode for a board of the
// given side. It rejects anything Encode would not write:
// a wrong number of counts, rows or columns, and cell
// characters other than ' ' and 'B'.
func Decode(side int, text string) (Board, error) {
	if err := ValidateSide(side); err != nil {
		return Board{}, err
	}

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) != side+1 {
		return Board{}, cerr.ErrMalformedLine(len(lines), fmt.Sprintf("expected %d lines, got %d", side+1, len(lines)))
	}

	counts, err := decodeCounts(strings.TrimSuffix(lines[0], "\r"))
	if err != nil {
		return Board{}, err
	}

	board, err := NewBoard(side, counts)
	if err != nil {
		return Board{}, cerr.ErrMalformedLine(1, err.Error())
	}

	for row, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != side {
			return Board{}, cerr.ErrMalformedLine(row+2, fmt.Sprintf("expected %d cells, got %d", side, len(line)))
		}

		for col := 0; col < side; col++ {
			switch line[col] {
			case cellEmpty:
			case cellOccupied:
				board.cells[row*side+col] = true
			default:
				return Board{}, cerr.ErrMalformedLine(row+2, fmt.Sprintf("unknown cell %q at column %d", line[col], col))
			}
		}
	}

	return board, nil
}

func decodeCounts(line string) ([]int, error) {
	fields := strings.Split(line, " ")
	if len(fields) != MaxBoatLength {
		return nil, cerr.ErrMalformedLine(1, fmt.Sprintf("expected %d counts, got %d", MaxBoatLength, len(fields)))
	}

	counts := make([]int, len(fields))
	for i, f := range fields {
		// Only the form Encode writes: no sign, no leading zeros
		c, err := strconv.Atoi(f)
		if err != nil || c < 0 || strconv.Itoa(c) != f {
			return nil, cerr.ErrMalformedLine(1, fmt.Sprintf("invalid count %q", f))
		}
		counts[i] = c
	}
	return counts, nil
}
