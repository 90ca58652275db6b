package viewmodel

import (
	"fmt"

	"github.com/rocketscienceinc/xandos/internal/apperror"
	"github.com/rocketscienceinc/xandos/internal/board"
)

// MainView holds a view for every square of one board.
type MainView struct {
	board   Board
	squares [board.Size][board.Size]*SquareView
}

func NewMainView(b Board, palette Palette) (*MainView, error) {
	view := &MainView{board: b}

	for row := 0; row < board.Size; row++ {
		for column := 0; column < board.Size; column++ {
			square, err := NewSquareView(b, row, column, palette)
			if err != nil {
				return nil, fmt.Errorf("failed to create view for square (%d, %d): %w", row, column, err)
			}

			view.squares[row][column] = square
		}
	}

	return view, nil
}

func (that *MainView) Square(row, column int) (*SquareView, error) {
	if row < 0 || row >= board.Size || column < 0 || column >= board.Size {
		return nil, fmt.Errorf("%w: row %d, column %d", apperror.ErrInvalidCoordinates, row, column)
	}

	return that.squares[row][column], nil
}

func (that *MainView) TopLeft() *SquareView     { return that.squares[0][0] }
func (that *MainView) Top() *SquareView         { return that.squares[0][1] }
func (that *MainView) TopRight() *SquareView    { return that.squares[0][2] }
func (that *MainView) Left() *SquareView        { return that.squares[1][0] }
func (that *MainView) Middle() *SquareView      { return that.squares[1][1] }
func (that *MainView) Right() *SquareView       { return that.squares[1][2] }
func (that *MainView) BottomLeft() *SquareView  { return that.squares[2][0] }
func (that *MainView) Bottom() *SquareView      { return that.squares[2][1] }
func (that *MainView) BottomRight() *SquareView { return that.squares[2][2] }

// StatusLine describes the state of the game for a human.
func (that *MainView) StatusLine() string {
	switch that.board.Status() {
	case board.Won:
		return Glyph(that.board.Winner()) + " wins"
	case board.Drawn:
		return "Draw"
	default:
		return Glyph(that.board.NextMove()) + " to move"
	}
}

func (that *MainView) IsGameEnded() bool {
	return that.board.Status() != board.InProgress
}
