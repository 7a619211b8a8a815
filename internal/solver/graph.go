package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

var (
	ErrPositionNotFound  = errors.New("position not found in graph")
	ErrValueNotFinal     = errors.New("value is not finalized yet")
	ErrValueAlreadyFinal = errors.New("value is already finalized")
)

// Edge - one outgoing move of a position: the cell played and the canonical
// key of the resulting position.
type Edge struct {
	Cell  int
	Child string
}

// Node - one distinct position in the graph. The position facts are fixed at
// discovery time; the value is set exactly once, during propagation.
type Node struct {
	Position board.Position

	value int
	final bool
}

// Value - the game-theoretic value of the node under optimal play.
// It is an error to read it before propagation has finalized the node.
func (that *Node) Value() (int, error) {
	if !that.final {
		return 0, fmt.Errorf("%w: %q", ErrValueNotFinal, board.Encode(that.Position))
	}
	return that.value, nil
}

// Final - reports whether the node's value has been set.
func (that *Node) Final() bool {
	return that.final
}

func (that *Node) finalize(value int) error {
	if that.final {
		return fmt.Errorf("%w: %q", ErrValueAlreadyFinal, board.Encode(that.Position))
	}

	that.value = value
	that.final = true

	return nil
}

// Graph - the full reachable state space for one run. It is the single owner
// of every Node; all edges reference nodes by canonical key, never by pointer.
type Graph struct {
	root     string
	nodes    map[string]*Node
	children map[string][]Edge
	parents  map[string]map[string]struct{}
	leaves   map[string]struct{}
}

func newGraph(root string) *Graph {
	return &Graph{
		root:     root,
		nodes:    make(map[string]*Node),
		children: make(map[string][]Edge),
		parents:  make(map[string]map[string]struct{}),
		leaves:   make(map[string]struct{}),
	}
}

// RootKey - the canonical key of the empty board.
func (that *Graph) RootKey() string {
	return that.root
}

// Size - the number of distinct positions in the graph.
func (that *Graph) Size() int {
	return len(that.nodes)
}

// Lookup - the node for a canonical key.
func (that *Graph) Lookup(key string) (*Node, error) {
	node, ok := that.nodes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPositionNotFound, key)
	}
	return node, nil
}

// Children - the outgoing edges of a key in ascending cell order. Terminal
// and unknown keys have none.
func (that *Graph) Children(key string) []Edge {
	return that.children[key]
}

// Parents - the keys of every predecessor, sorted. A position reached by
// several move orders has several parents; the root has none.
func (that *Graph) Parents(key string) []string {
	set := that.parents[key]
	if len(set) == 0 {
		return nil
	}

	keys := make([]string, 0, len(set))
	for parent := range set {
		keys = append(keys, parent)
	}
	sort.Strings(keys)

	return keys
}

// Leaves - the keys of every terminal position, sorted.
func (that *Graph) Leaves() []string {
	keys := make([]string, 0, len(that.leaves))
	for key := range that.leaves {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// IsLeaf - reports whether a key is a terminal position.
func (that *Graph) IsLeaf(key string) bool {
	_, ok := that.leaves[key]
	return ok
}

// Keys - every canonical key in the graph, sorted.
func (that *Graph) Keys() []string {
	keys := make([]string, 0, len(that.nodes))
	for key := range that.nodes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
