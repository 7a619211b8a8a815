package solver

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

// Terminal values are taken from X's perspective and shifted by depth so
// that faster wins and slower losses score better.
func terminalValue(status string, depth int) int {
	switch status {
	case board.StatusWin:
		return 10 - depth
	case board.StatusLoss:
		return depth - 10
	default:
		return 0
	}
}

// Propagate - finalizes every node's value by backward induction.
//
// Terminal nodes get their terminal value directly; they can sit at any depth
// from 5 to 9, not only on a full board. Internal nodes are then swept in
// strictly decreasing depth order: every child of a depth-d node lives at
// depth d+1, so by the time a node is visited all of its children are final.
// A simple FIFO over parents of finalized nodes would not give that guarantee
// in a multi-parent graph, which is why the sweep is stratified by depth.
//
// A node's value is the max over its children's values when X is to move and
// the min when O is to move. Meeting a non-final child is an ordering bug and
// aborts the run.
func Propagate(graph *Graph) error {
	byDepth := make([][]string, board.Cells+1)

	for key, node := range graph.nodes {
		if node.Position.IsTerminal() {
			if err := node.finalize(terminalValue(node.Position.Status, node.Position.Depth)); err != nil {
				return fmt.Errorf("finalize leaf: %w", err)
			}
			continue
		}
		byDepth[node.Position.Depth] = append(byDepth[node.Position.Depth], key)
	}

	for depth := board.Cells - 1; depth >= 0; depth-- {
		for _, key := range byDepth[depth] {
			node := graph.nodes[key]

			edges := graph.Children(key)
			if len(edges) == 0 {
				return fmt.Errorf("%w: in-progress node %q has no children", ErrValueNotFinal, key)
			}

			best := 0
			for i, edge := range edges {
				child, err := graph.Lookup(edge.Child)
				if err != nil {
					return fmt.Errorf("propagate %q: %w", key, err)
				}

				value, err := child.Value()
				if err != nil {
					return fmt.Errorf("propagate %q: %w", key, err)
				}

				if i == 0 {
					best = value
					continue
				}

				if node.Position.Mover == board.PlayerX && value > best {
					best = value
				}
				if node.Position.Mover == board.PlayerO && value < best {
					best = value
				}
			}

			if err := node.finalize(best); err != nil {
				return fmt.Errorf("propagate %q: %w", key, err)
			}
		}
	}

	return nil
}

// Solve - builds the full state graph and propagates values through it.
func Solve() (*Graph, error) {
	graph, err := Build()
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	if err = Propagate(graph); err != nil {
		return nil, fmt.Errorf("propagate values: %w", err)
	}

	return graph, nil
}
