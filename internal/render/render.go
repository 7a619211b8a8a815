package render

import (
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

const (
	colorX = "9"  // bright red
	colorO = "12" // bright blue
)

// Grid - a position as a 3-line grid, '_' for empty cells.
func Grid(position board.Position) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := position.Board[row*3+col]
			if cell == board.EmptyCell {
				sb.WriteByte('_')
			} else {
				sb.WriteString(cell)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Renderer - renders boards for a terminal, styling the marks when the
// output supports color and degrading to the plain grid when it doesn't.
type Renderer struct {
	output *termenv.Output
}

func New(output *termenv.Output) *Renderer {
	return &Renderer{output: output}
}

// NewDefault - a renderer on stdout with the detected color profile.
func NewDefault() *Renderer {
	return New(termenv.DefaultOutput())
}

// Grid - like the package-level Grid, with X and O colored.
func (that *Renderer) Grid(position board.Position) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			switch cell := position.Board[row*3+col]; cell {
			case board.PlayerX:
				sb.WriteString(that.output.String(cell).Foreground(that.output.Color(colorX)).String())
			case board.PlayerO:
				sb.WriteString(that.output.String(cell).Foreground(that.output.Color(colorO)).String())
			default:
				sb.WriteByte('_')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
