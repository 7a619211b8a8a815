package board

import "fmt"

// Move - one legal continuation: the cell the mover takes and the position
// it leads to.
type Move struct {
	Cell     int
	Position Position
}

// Moves - every immediate successor of a position, one per empty cell in
// ascending cell order. Terminal positions have no successors. Successors
// are rebuilt through Decode so every Position in the graph goes through
// the same validation; a decode failure here means the parent itself was
// malformed and is returned as an error for the caller to treat as fatal.
func Moves(position Position) ([]Move, error) {
	if position.IsTerminal() {
		return nil, nil
	}

	moves := make([]Move, 0, Cells-position.Depth)

	for cell, mark := range position.Board {
		if mark != EmptyCell {
			continue
		}

		next := position.Board
		next[cell] = position.Mover

		child, err := Decode(Encode(Position{Board: next}))
		if err != nil {
			return nil, fmt.Errorf("successor of %q at cell %d: %w", Encode(position), cell, err)
		}

		moves = append(moves, Move{Cell: cell, Position: child})
	}

	return moves, nil
}
