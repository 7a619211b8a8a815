package solver

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

// Build - explores the complete reachable state space from the empty board.
//
// A worklist holds discovered-but-unexpanded keys; positions are deduplicated
// by canonical key, so two move orders reaching the same board share one node
// and the result is a DAG with multiple parents per node. The order the
// worklist is drained in does not affect the final graph. Depth increases by
// exactly one along every edge, which keeps the graph acyclic.
//
// Codec errors cannot occur for positions generated here; one surfacing means
// an encoding bug and aborts the build.
func Build() (*Graph, error) {
	rootPosition, err := board.Decode("")
	if err != nil {
		return nil, fmt.Errorf("decode root: %w", err)
	}

	rootKey := board.Encode(rootPosition)
	graph := newGraph(rootKey)
	graph.nodes[rootKey] = &Node{Position: rootPosition}

	worklist := []string{rootKey}

	for len(worklist) > 0 {
		key := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		node := graph.nodes[key]

		moves, err := board.Moves(node.Position)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", key, err)
		}

		if len(moves) == 0 {
			graph.leaves[key] = struct{}{}
			continue
		}

		for _, move := range moves {
			childKey := board.Encode(move.Position)

			// Lookup by canonical key before insertion keeps every
			// distinct board a single node, whatever path found it.
			if _, seen := graph.nodes[childKey]; !seen {
				graph.nodes[childKey] = &Node{Position: move.Position}
				worklist = append(worklist, childKey)
			}

			graph.children[key] = append(graph.children[key], Edge{Cell: move.Cell, Child: childKey})

			if graph.parents[childKey] == nil {
				graph.parents[childKey] = make(map[string]struct{})
			}
			graph.parents[childKey][key] = struct{}{}
		}
	}

	return graph, nil
}
