// Package viewmodel adapts a board to what a display needs: a glyph and a
// background per square, a command per square and a status line.
package viewmodel

import "github.com/rocketscienceinc/xandos/internal/board"

// Board is the part of the engine the views consume.
type Board interface {
	Get(row, column int) (board.Mark, error)
	Mark(row, column int) error
	Subscribe(row, column int, observer board.Observer) error

	Status() board.Status
	Winner() board.Mark
	NextMove() board.Mark
}

// Glyph returns the text shown for a mark.
func Glyph(mark board.Mark) string {
	switch mark {
	case board.Cross:
		return "X"
	case board.Naught:
		return "O"
	default:
		return ""
	}
}
