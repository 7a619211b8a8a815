package report

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

// Summary - the aggregate outcome of one solved graph.
type Summary struct {
	Positions int `json:"positions"`
	Leaves    int `json:"leaves"`
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	Ties      int `json:"ties"`
	RootValue int `json:"root_value"`
}

// Summarize - counts leaves by outcome and reads the root value.
// The graph must be fully propagated.
func Summarize(graph *solver.Graph) (Summary, error) {
	summary := Summary{
		Positions: graph.Size(),
	}

	for _, key := range graph.Leaves() {
		node, err := graph.Lookup(key)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize leaf: %w", err)
		}

		summary.Leaves++

		switch node.Position.Status {
		case board.StatusWin:
			summary.Wins++
		case board.StatusLoss:
			summary.Losses++
		case board.StatusTie:
			summary.Ties++
		}
	}

	root, err := graph.Lookup(graph.RootKey())
	if err != nil {
		return Summary{}, fmt.Errorf("summarize root: %w", err)
	}

	summary.RootValue, err = root.Value()
	if err != nil {
		return Summary{}, fmt.Errorf("summarize root: %w", err)
	}

	return summary, nil
}

// OptimalLine - the keys of one optimal playout from the root: at every step
// the mover's best child (max for X, min for O), ties broken by ascending
// cell order. The graph must be fully propagated.
func OptimalLine(graph *solver.Graph) ([]string, error) {
	key := graph.RootKey()
	line := []string{key}

	for {
		node, err := graph.Lookup(key)
		if err != nil {
			return nil, fmt.Errorf("optimal line: %w", err)
		}

		if node.Position.IsTerminal() {
			return line, nil
		}

		var bestKey string
		var bestValue int

		for i, edge := range graph.Children(key) {
			child, err := graph.Lookup(edge.Child)
			if err != nil {
				return nil, fmt.Errorf("optimal line: %w", err)
			}

			value, err := child.Value()
			if err != nil {
				return nil, fmt.Errorf("optimal line: %w", err)
			}

			better := i == 0 ||
				(node.Position.Mover == board.PlayerX && value > bestValue) ||
				(node.Position.Mover == board.PlayerO && value < bestValue)
			if better {
				bestKey, bestValue = edge.Child, value
			}
		}

		key = bestKey
		line = append(line, key)
	}
}

// WriteLinks - emits every position's successor links, one position per
// block: the key on its own line, then "  cell -> child-key" per legal move
// in ascending cell order. Terminal positions list no moves.
func WriteLinks(w io.Writer, graph *solver.Graph) error {
	for _, key := range graph.Keys() {
		if _, err := fmt.Fprintln(w, key); err != nil {
			return fmt.Errorf("write links: %w", err)
		}

		for _, edge := range graph.Children(key) {
			if _, err := fmt.Fprintf(w, "  %d -> %s\n", edge.Cell, edge.Child); err != nil {
				return fmt.Errorf("write links: %w", err)
			}
		}
	}

	return nil
}
