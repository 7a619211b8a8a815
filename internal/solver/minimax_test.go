package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
)

func TestPropagate(t *testing.T) {
	graph, err := Solve()
	require.NoError(t, err)

	t.Run("Root is a forced draw", func(t *testing.T) {
		root, err := graph.Lookup(graph.RootKey())
		require.NoError(t, err)

		value, err := root.Value()
		require.NoError(t, err)
		require.Equal(t, 0, value)
	})

	t.Run("Every node is finalized", func(t *testing.T) {
		for _, key := range graph.Keys() {
			node, err := graph.Lookup(key)
			require.NoError(t, err)
			require.True(t, node.Final(), "key %q", key)
		}
	})

	t.Run("Values stay in range and match terminal depth", func(t *testing.T) {
		for _, key := range graph.Keys() {
			node, err := graph.Lookup(key)
			require.NoError(t, err)

			value, err := node.Value()
			require.NoError(t, err)
			require.GreaterOrEqual(t, value, -10)
			require.LessOrEqual(t, value, 10)

			depth := node.Position.Depth
			switch node.Position.Status {
			case board.StatusTie:
				require.Equal(t, 0, value, "key %q", key)
			case board.StatusWin:
				require.Equal(t, 10-depth, value, "key %q", key)
			case board.StatusLoss:
				require.Equal(t, depth-10, value, "key %q", key)
			}
		}
	})

	t.Run("X to move takes the immediate win", func(t *testing.T) {
		// Given: X can complete the top row at cell 2
		node, err := graph.Lookup("XX_OO____")
		require.NoError(t, err)
		require.Equal(t, board.PlayerX, node.Position.Mover)

		// Then: the value is a win at depth 5
		value, err := node.Value()
		require.NoError(t, err)
		require.Equal(t, 5, value)
	})

	t.Run("O to move takes the immediate win", func(t *testing.T) {
		// Given: O can complete the middle row at cell 5
		node, err := graph.Lookup("XX_OO___X")
		require.NoError(t, err)
		require.Equal(t, board.PlayerO, node.Position.Mover)

		// Then: the value is a loss at depth 6
		value, err := node.Value()
		require.NoError(t, err)
		require.Equal(t, -4, value)
	})
}

func TestPropagate_Finalization(t *testing.T) {
	t.Run("Value is unreadable before propagation", func(t *testing.T) {
		// Given: a built but not propagated graph
		graph, err := Build()
		require.NoError(t, err)

		root, err := graph.Lookup(graph.RootKey())
		require.NoError(t, err)

		// When: reading the root value
		_, err = root.Value()

		// Then: the read is rejected
		assert.ErrorIs(t, err, ErrValueNotFinal)
	})

	t.Run("Propagating twice is rejected", func(t *testing.T) {
		graph, err := Build()
		require.NoError(t, err)

		require.NoError(t, Propagate(graph))

		// When: propagating a second time
		err = Propagate(graph)

		// Then: the second finalization attempt fails
		assert.ErrorIs(t, err, ErrValueAlreadyFinal)
	})
}

func TestTerminalValue(t *testing.T) {
	assert.Equal(t, 0, terminalValue(board.StatusTie, 9))
	assert.Equal(t, 5, terminalValue(board.StatusWin, 5))
	assert.Equal(t, 1, terminalValue(board.StatusWin, 9))
	assert.Equal(t, -4, terminalValue(board.StatusLoss, 6))
}
