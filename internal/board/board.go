// Package board implements the rules of a single game of noughts and crosses
// on a fixed 3x3 grid.
//
// A Board is not safe for concurrent use. Observers run synchronously inside
// Mark and must not call Mark on the same board.
package board

import (
	"fmt"

	"github.com/rocketscienceinc/xandos/internal/apperror"
)

const noLine = -1

type Board struct {
	squares  [Size * Size]square
	lines    []line
	nextMove Mark
	ended    bool

	// winningLine indexes lines, noLine until a line is completed.
	winningLine int
}

// New returns an empty board with Cross to move.
func New() *Board {
	return &Board{
		lines:       winningLines(),
		nextMove:    Cross,
		winningLine: noLine,
	}
}

// Get returns the mark at the given square.
func (that *Board) Get(row, column int) (Mark, error) {
	idx, err := index(row, column)
	if err != nil {
		return Blank, err
	}

	return that.squares[idx].mark, nil
}

// Mark places the mark whose turn it is on the given square, passes the turn
// and checks for the end of the game. Once the game has ended the call is
// ignored.
func (that *Board) Mark(row, column int) error {
	if that.ended {
		return nil
	}

	idx, err := index(row, column)
	if err != nil {
		return err
	}

	target := &that.squares[idx]
	if target.mark != Blank {
		return fmt.Errorf("%w: row %d, column %d holds %s", apperror.ErrSquareOccupied, row, column, target.mark)
	}

	target.set(that.nextMove)
	that.nextMove = that.nextMove.opponent()
	that.evaluate()

	return nil
}

// Subscribe registers an observer for the given square. Observers of one
// square are notified in the order they subscribed.
func (that *Board) Subscribe(row, column int, observer Observer) error {
	idx, err := index(row, column)
	if err != nil {
		return err
	}

	if observer == nil {
		return nil
	}

	that.squares[idx].observers = append(that.squares[idx].observers, observer)

	return nil
}

func (that *Board) IsGameEnded() bool {
	return that.ended
}

// NextMove returns the mark the next successful Mark call will place.
func (that *Board) NextMove() Mark {
	return that.nextMove
}

func (that *Board) Status() Status {
	switch {
	case that.winningLine != noLine:
		return Won
	case that.ended:
		return Drawn
	default:
		return InProgress
	}
}

// Winner returns the mark on the winning line, or Blank if nobody has won.
func (that *Board) Winner() Mark {
	if that.winningLine == noLine {
		return Blank
	}

	return that.squares[that.lines[that.winningLine][0]].mark
}

// WinningLine returns the squares of the completed line, if any.
func (that *Board) WinningLine() ([Size]Position, bool) {
	if that.winningLine == noLine {
		return [Size]Position{}, false
	}

	return that.lines[that.winningLine].positions(), true
}

// evaluate ends the game on a full board or on the first completed line in
// scan order. Only that line is reported.
func (that *Board) evaluate() {
	that.ended = that.isFull()

	for i, l := range that.lines {
		if !that.isWinning(l) {
			continue
		}

		that.ended = true
		that.winningLine = i

		for _, idx := range l {
			that.squares[idx].inWinningLine()
		}

		return
	}
}

func (that *Board) isFull() bool {
	for i := range that.squares {
		if that.squares[i].mark == Blank {
			return false
		}
	}

	return true
}

func (that *Board) isWinning(l line) bool {
	first := that.squares[l[0]].mark

	return first != Blank &&
		first == that.squares[l[1]].mark &&
		first == that.squares[l[2]].mark
}
