package viewmodel

import (
	"fmt"

	"github.com/rocketscienceinc/xandos/internal/board"
)

const (
	DefaultBackground = "#FFFFFF"
	DefaultHighlight  = "#228B22"
)

// Palette holds the background colours of a square, as hex strings.
type Palette struct {
	Background string
	Highlight  string
}

func DefaultPalette() Palette {
	return Palette{
		Background: DefaultBackground,
		Highlight:  DefaultHighlight,
	}
}

// SquareView follows one square: its glyph and whether it is on the winning line.
type SquareView struct {
	palette     Palette
	glyph       string
	highlighted bool

	command *MarkCommand
}

func NewSquareView(b Board, row, column int, palette Palette) (*SquareView, error) {
	command, err := NewMarkCommand(b, row, column)
	if err != nil {
		return nil, err
	}

	view := &SquareView{
		palette: palette,
		command: command,
	}

	if err = b.Subscribe(row, column, view); err != nil {
		return nil, fmt.Errorf("failed to subscribe square view: %w", err)
	}

	return view, nil
}

// SquareChanged implements board.Observer.
func (that *SquareView) SquareChanged(mark board.Mark, inWinningLine bool) {
	that.glyph = Glyph(mark)

	if inWinningLine {
		that.highlighted = true
	}
}

func (that *SquareView) Glyph() string {
	return that.glyph
}

func (that *SquareView) Highlighted() bool {
	return that.highlighted
}

func (that *SquareView) Background() string {
	if that.highlighted {
		return that.palette.Highlight
	}

	return that.palette.Background
}

func (that *SquareView) MarkCommand() *MarkCommand {
	return that.command
}
