package viewmodel

import (
	"fmt"

	"github.com/rocketscienceinc/xandos/internal/apperror"
	"github.com/rocketscienceinc/xandos/internal/board"
)

// MarkCommand marks one square of a board on behalf of the player to move.
type MarkCommand struct {
	board  Board
	row    int
	column int
}

func NewMarkCommand(b Board, row, column int) (*MarkCommand, error) {
	if row < 0 || row >= board.Size || column < 0 || column >= board.Size {
		return nil, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinates, row, column)
	}

	return &MarkCommand{
		board:  b,
		row:    row,
		column: column,
	}, nil
}

// CanExecute reports whether the square is still blank.
func (that *MarkCommand) CanExecute() bool {
	mark, err := that.board.Get(that.row, that.column)
	if err != nil {
		return false
	}

	return mark == board.Blank
}

func (that *MarkCommand) Execute() error {
	if err := that.board.Mark(that.row, that.column); err != nil {
		return fmt.Errorf("failed to mark square: %w", err)
	}

	return nil
}
