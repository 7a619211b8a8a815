package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

func TestSummarize(t *testing.T) {
	// Given: a fully solved graph
	graph, err := solver.Solve()
	require.NoError(t, err)

	// When: summarizing it
	summary, err := Summarize(graph)
	require.NoError(t, err)

	// Then: the aggregates match the known totals of the game
	require.Equal(t, Summary{
		Positions: 5478,
		Leaves:    958,
		Wins:      626,
		Losses:    316,
		Ties:      16,
		RootValue: 0,
	}, summary)
}

func TestSummarize_Unpropagated(t *testing.T) {
	// Given: a graph that was built but never propagated
	graph, err := solver.Build()
	require.NoError(t, err)

	// When: summarizing it
	_, err = Summarize(graph)

	// Then: the unread root value surfaces as an error
	require.ErrorIs(t, err, solver.ErrValueNotFinal)
}

func TestOptimalLine(t *testing.T) {
	graph, err := solver.Solve()
	require.NoError(t, err)

	// When: tracing one optimal playout from the root
	line, err := OptimalLine(graph)
	require.NoError(t, err)

	// Then: optimal play fills the board and ends in a tie, with every
	// position on the line a draw
	require.Len(t, line, 10)

	last, err := graph.Lookup(line[len(line)-1])
	require.NoError(t, err)
	require.Equal(t, "tie", last.Position.Status)

	for _, key := range line {
		node, err := graph.Lookup(key)
		require.NoError(t, err)

		value, err := node.Value()
		require.NoError(t, err)
		require.Equal(t, 0, value, "key %q", key)
	}
}

func TestWriteLinks(t *testing.T) {
	graph, err := solver.Solve()
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteLinks(&sb, graph))

	out := sb.String()

	t.Run("Root block lists all nine moves", func(t *testing.T) {
		rootBlock := "_________\n" +
			"  0 -> X________\n" +
			"  1 -> _X_______\n" +
			"  2 -> __X______\n" +
			"  3 -> ___X_____\n" +
			"  4 -> ____X____\n" +
			"  5 -> _____X___\n" +
			"  6 -> ______X__\n" +
			"  7 -> _______X_\n" +
			"  8 -> ________X\n"
		require.Contains(t, out, rootBlock)
	})

	t.Run("Terminal positions list no moves", func(t *testing.T) {
		// the key line starts a block; edge lines are indented
		idx := strings.Index(out, "\nXXXOO____\n")
		require.NotEqual(t, -1, idx)

		rest := out[idx+len("\nXXXOO____\n"):]
		require.False(t, strings.HasPrefix(rest, "  "))
	})
}
