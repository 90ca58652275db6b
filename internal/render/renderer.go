package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/xandos/internal/board"
	"github.com/rocketscienceinc/xandos/internal/viewmodel"
)

const (
	ProfileAuto      = "auto"
	ProfileASCII     = "ascii"
	ProfileANSI      = "ansi"
	ProfileANSI256   = "ansi256"
	ProfileTrueColor = "truecolor"

	glyphColor = "#000000"
	separator  = "---+---+---"
)

var ErrUnknownProfile = errors.New("unknown color profile")

// Renderer draws a board view as a grid of coloured cells.
type Renderer struct {
	output *termenv.Output
}

// New returns a renderer writing to w. An empty or "auto" profile is detected
// from the environment.
func New(w io.Writer, profile string) (*Renderer, error) {
	var opts []termenv.OutputOption

	switch strings.ToLower(profile) {
	case "", ProfileAuto:
	case ProfileASCII:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	case ProfileANSI:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	case ProfileANSI256:
		opts = append(opts, termenv.WithProfile(termenv.ANSI256))
	case ProfileTrueColor:
		opts = append(opts, termenv.WithProfile(termenv.TrueColor))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, profile)
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}, nil
}

// Render writes the grid followed by the status line.
func (that *Renderer) Render(view *viewmodel.MainView) error {
	var sb strings.Builder

	sb.WriteString("   ")
	for column := 0; column < board.Size; column++ {
		sb.WriteString(" " + strconv.Itoa(column) + "  ")
	}
	sb.WriteString("\n")

	for row := 0; row < board.Size; row++ {
		sb.WriteString(strconv.Itoa(row) + "  ")

		for column := 0; column < board.Size; column++ {
			square, err := view.Square(row, column)
			if err != nil {
				return fmt.Errorf("failed to render square: %w", err)
			}

			sb.WriteString(that.cell(square))
			if column < board.Size-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")

		if row < board.Size-1 {
			sb.WriteString("   " + separator + "\n")
		}
	}

	sb.WriteString(view.StatusLine() + "\n")

	if _, err := that.output.WriteString(sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

// Notice writes a single line of text below the board.
func (that *Renderer) Notice(text string) error {
	if _, err := that.output.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("failed to write notice: %w", err)
	}

	return nil
}

func (that *Renderer) cell(square *viewmodel.SquareView) string {
	glyph := square.Glyph()
	if glyph == "" {
		glyph = " "
	}

	style := that.output.String(" " + glyph + " ").
		Foreground(that.output.Color(glyphColor)).
		Background(that.output.Color(square.Background()))

	if square.Highlighted() {
		style = style.Bold()
	}

	return style.String()
}
