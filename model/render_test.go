package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Apply(EditTerrain(TERRAIN_WALL, 6, 15)))
	require.NoError(t, c.Apply(EditTerrain(TERRAIN_MUD, 6, 14)))

	rm := c.Snapshot()
	assert.Equal(t, COLS, rm.Cols)
	assert.Equal(t, ROWS, rm.Rows)
	assert.Equal(t, Pos{START_COL, START_ROW}, rm.Start)
	assert.Equal(t, Pos{END_COL, END_ROW}, rm.End)
	assert.Equal(t, CellView{Wall: true}, rm.Cells[6][15])
	assert.Equal(t, CellView{Mud: true}, rm.Cells[6][14])
	assert.Equal(t, MODE_IDLE, rm.Mode)
	assert.Equal(t, VERDICT_NONE, rm.Comparison().Verdict)

	require.NoError(t, c.Apply(Run(DIJKSTRA)))
	rm = c.Snapshot()
	assert.Equal(t, MODE_SINGLE, rm.Mode)
	assert.True(t, rm.Cells[START_COL][START_ROW].Visited)
	assert.Equal(t, c.Model.Current, rm.Current)

	// the snapshot is a copy
	require.NoError(t, c.Apply(FullReset()))
	assert.True(t, rm.Cells[6][15].Wall)
	assert.False(t, rm.Current.Empty())
}

func TestComparison(t *testing.T) {
	t.Run("mud makes bfs dearer", func(t *testing.T) {
		c := NewController()
		for col := 10; col <= 30; col++ {
			require.NoError(t, c.Apply(EditTerrain(TERRAIN_MUD, col, 15)))
		}
		require.NoError(t, c.Apply(Run(DIJKSTRA)))
		require.NoError(t, c.Apply(Run(BFS)))

		rm := c.Snapshot()
		cmp := rm.Comparison()
		assert.Equal(t, MODE_BOTH, rm.Mode)
		assert.Equal(t, VERDICT_MUD, cmp.Verdict)
		assert.Equal(t, rm.BFS.TrueCost-rm.Dijkstra.WeightedCost, cmp.Diff)
		assert.Contains(t, cmp.Sentence, "walked through mud")
		assert.True(t, rm.TrueCostHigher())
	})

	t.Run("open grid costs the same", func(t *testing.T) {
		c := NewController()
		require.NoError(t, c.Apply(Run(BFS)))
		require.NoError(t, c.Apply(Run(DIJKSTRA)))

		rm := c.Snapshot()
		cmp := rm.Comparison()
		assert.Equal(t, VERDICT_EQUAL, cmp.Verdict)
		assert.Equal(t, 0, cmp.Diff)
		assert.Equal(t, "Result:  Both algorithms cost 30  - No mud difference on these paths.", cmp.Sentence)
		assert.False(t, rm.TrueCostHigher())
	})

	t.Run("no path", func(t *testing.T) {
		c := NewController()
		require.NoError(t, c.Apply(Run(DIJKSTRA)))
		for r := 0; r < ROWS; r++ {
			require.NoError(t, c.Apply(EditTerrain(TERRAIN_WALL, 30, r)))
		}
		require.NoError(t, c.Apply(Run(BFS)))

		rm := c.Snapshot()
		assert.Equal(t, VERDICT_NO_PATH, rm.Comparison().Verdict)
	})
}
