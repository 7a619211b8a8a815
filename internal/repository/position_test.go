package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
)

func TestNewPositionRecord(t *testing.T) {
	graph, err := solver.Solve()
	require.NoError(t, err)

	t.Run("Root record", func(t *testing.T) {
		// When: building the record for the root key
		record, err := NewPositionRecord(graph, graph.RootKey())

		// Then: it carries the facts, the value and all nine edges
		require.NoError(t, err)
		require.Equal(t, graph.RootKey(), record.Key)
		require.Equal(t, 0, record.Depth)
		require.Equal(t, "X", record.Mover)
		require.Equal(t, 0, record.Value)
		require.Len(t, record.Children, 9)
		require.Empty(t, record.Parents)
	})

	t.Run("Unknown key", func(t *testing.T) {
		_, err := NewPositionRecord(graph, "XXXXXXXXX")
		assert.ErrorIs(t, err, solver.ErrPositionNotFound)
	})
}

func TestPositionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	positionRepo := NewPositionRepository(st.Storage)

	// Given: a solved position record
	record := &PositionRecord{
		Key:    "XXXOO____",
		Depth:  5,
		Mover:  "O",
		Status: "win",
		Value:  5,
	}

	// When: Save is called
	err := positionRepo.Save(ctx, record)

	// Then: no error should be returned, and the record is stored
	require.NoError(t, err)

	stored, err := positionRepo.GetByKey(ctx, record.Key)
	require.NoError(t, err)
	require.Equal(t, record, stored)
}

func TestPositionRepository_GetByKey(t *testing.T) {
	t.Run("GetByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		positionRepo := NewPositionRepository(st.Storage)

		// When: GetByKey is called with a key that was never saved
		stored, err := positionRepo.GetByKey(ctx, "_________")

		// Then: an ErrPositionNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrPositionNotFound, err)
		assert.Empty(t, stored.Key)
	})
}

func TestPositionRepository_SaveAll(t *testing.T) {
	ctx, st := suite.New(t)

	positionRepo := NewPositionRepository(st.Storage)

	// Given: records of two adjacent positions
	records := []*PositionRecord{
		{
			Key:      "_________",
			Mover:    "X",
			Status:   "play",
			Children: []EdgeRecord{{Cell: 0, Child: "X________"}},
		},
		{
			Key:     "X________",
			Depth:   1,
			Mover:   "O",
			Status:  "play",
			Parents: []string{"_________"},
		},
	}

	// When: SaveAll is called
	err := positionRepo.SaveAll(ctx, records)

	// Then: both records are retrievable
	require.NoError(t, err)

	for _, record := range records {
		stored, err := positionRepo.GetByKey(ctx, record.Key)
		require.NoError(t, err)
		require.Equal(t, record, stored)
	}
}

func TestPositionRepository_DeleteByKey(t *testing.T) {
	ctx, st := suite.New(t)

	positionRepo := NewPositionRepository(st.Storage)

	// Given: a stored record
	record := &PositionRecord{
		Key:    "XXXOO____",
		Status: "win",
	}

	err := positionRepo.Save(ctx, record)
	require.NoError(t, err)

	// When: DeleteByKey is called
	err = positionRepo.DeleteByKey(ctx, record.Key)

	// Then: the record is gone
	require.NoError(t, err)

	_, err = positionRepo.GetByKey(ctx, record.Key)
	require.Error(t, err)
	assert.Equal(t, ErrPositionNotFound, err)
}
