package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

const (
	StatusInProgress = "play"
	StatusWin        = "win"
	StatusLoss       = "loss"
	StatusTie        = "tie"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	// Cells is the number of cells on the board, and also the maximum depth.
	Cells = 9

	emptySymbol = '_'
)

// WinCombos - the 8 lines of the board: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Position - one reachable board configuration plus its derived facts.
// Positions are values; once decoded they are never mutated.
type Position struct {
	Board  [9]string
	Depth  int
	Mover  string
	Status string
}

// Decode - builds a Position from a raw encoding of at most 9 symbols.
// Accepted symbols are 'X', 'O', '_' and ' ' (the last two mean an empty
// cell); anything shorter than 9 symbols is padded with empty cells.
// Status is always evaluated from X's perspective, X moves first.
func Decode(raw string) (Position, error) {
	if len(raw) > Cells {
		return Position{}, fmt.Errorf("%w: got %d", apperror.ErrInvalidLength, len(raw))
	}

	var position Position

	countX, countO := 0, 0
	for i, symbol := range raw {
		switch symbol {
		case 'X':
			position.Board[i] = PlayerX
			countX++
		case 'O':
			position.Board[i] = PlayerO
			countO++
		case emptySymbol, ' ':
			position.Board[i] = EmptyCell
		default:
			return Position{}, fmt.Errorf("%w: %q at cell %d", apperror.ErrInvalidSymbol, symbol, i)
		}
	}

	if balance := countX - countO; balance != 0 && balance != 1 {
		return Position{}, fmt.Errorf("%w: %d X vs %d O", apperror.ErrIllegalMoveBalance, countX, countO)
	}

	position.Depth = countX + countO

	if countX == countO {
		position.Mover = PlayerX
	} else {
		position.Mover = PlayerO
	}

	position.Status = checkStatus(position.Board)

	return position, nil
}

// Encode - the canonical key of a position: 9 symbols, '_' for empty cells.
// It is the injective inverse of Decode over valid positions.
func Encode(position Position) string {
	var sb strings.Builder
	sb.Grow(Cells)

	for _, cell := range position.Board {
		if cell == EmptyCell {
			sb.WriteByte(emptySymbol)
		} else {
			sb.WriteString(cell)
		}
	}

	return sb.String()
}

// IsTerminal - reports whether the position has no legal continuation.
func (that *Position) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// checkStatus - inspects all 8 lines directly; a completed line decides the
// game even with empty cells remaining.
func checkStatus(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a == EmptyCell || a != b || b != c {
			continue
		}
		if a == PlayerX {
			return StatusWin
		}
		return StatusLoss
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return StatusInProgress
		}
	}

	return StatusTie
}
