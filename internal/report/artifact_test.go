package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

func TestWriteArtifacts(t *testing.T) {
	graph, err := solver.Solve()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteArtifacts(dir, graph))

	t.Run("One page per position", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, graph.Size())
	})

	t.Run("Root page links every cell", func(t *testing.T) {
		page, err := os.ReadFile(filepath.Join(dir, "_________.html"))
		require.NoError(t, err)

		for _, edge := range graph.Children(graph.RootKey()) {
			require.Contains(t, string(page), edge.Child+".html")
		}
	})

	t.Run("Terminal page has no move links", func(t *testing.T) {
		// Given: a finished game's page
		page, err := os.ReadFile(filepath.Join(dir, "XXXOO____.html"))
		require.NoError(t, err)

		// Then: no cell links to a successor; cell links always wrap a '_'
		require.NotContains(t, string(page), ">_</a>")
	})
}
