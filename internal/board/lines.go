package board

import (
	"fmt"

	"github.com/rocketscienceinc/xandos/internal/apperror"
)

// Size is the number of rows and columns on the board.
const Size = 3

// Position identifies a square by row and column.
type Position struct {
	Row    int
	Column int
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Column)
}

// line holds the flat indexes of three squares that win when uniformly marked.
type line [Size]int

// winningLines derives every line from the grid geometry: rows top to bottom,
// columns left to right, then the main and the anti diagonal.
func winningLines() []line {
	lines := make([]line, 0, 2*Size+2)

	for row := 0; row < Size; row++ {
		var l line
		for column := 0; column < Size; column++ {
			l[column] = row*Size + column
		}
		lines = append(lines, l)
	}

	for column := 0; column < Size; column++ {
		var l line
		for row := 0; row < Size; row++ {
			l[row] = row*Size + column
		}
		lines = append(lines, l)
	}

	var diagonal, antiDiagonal line
	for i := 0; i < Size; i++ {
		diagonal[i] = i*Size + i
		antiDiagonal[i] = i*Size + (Size - 1 - i)
	}

	return append(lines, diagonal, antiDiagonal)
}

func (that line) positions() [Size]Position {
	var positions [Size]Position
	for i, idx := range that {
		positions[i] = Position{Row: idx / Size, Column: idx % Size}
	}
	return positions
}

// index converts coordinates into a flat square index.
func index(row, column int) (int, error) {
	if row < 0 || row >= Size || column < 0 || column >= Size {
		return 0, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinates, row, column)
	}

	return row*Size + column, nil
}
