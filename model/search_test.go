package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runDijkstra(m *Model) DijkstraMetrics {
	m.PartialReset()
	return m.RunDijkstra()
}

func runBFS(m *Model) BFSMetrics {
	m.PartialReset()
	return m.RunBFS()
}

func TestDijkstraOpenGrid(t *testing.T) {
	m := NewModel()
	res := runDijkstra(m)

	assert.True(t, res.Ran)
	assert.True(t, res.Found)
	assert.Equal(t, 30, res.WeightedCost)
	assert.GreaterOrEqual(t, res.Visited, 31)
	assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, 29, m.Current.Len())
	assert.Equal(t, DIJKSTRA, m.Last)
}

func TestBFSOpenGrid(t *testing.T) {
	m := NewModel()
	res := runBFS(m)

	assert.True(t, res.Found)
	assert.Equal(t, 30, res.Hops)
	assert.Equal(t, 30, res.TrueCost)
	assert.Equal(t, 29, m.Current.Len())
	assert.Equal(t, BFS, m.Last)
}

func TestMudCorridor(t *testing.T) {
	m := NewModel()
	for c := 10; c <= 30; c++ {
		m.SetMud(c, 15)
	}

	d := runDijkstra(m)
	for _, p := range m.Current.Cells() {
		assert.False(t, m.Grid.Cell(p).Mud, "dijkstra path crosses mud at %s", p)
	}
	b := runBFS(m)

	require.True(t, d.Found)
	require.True(t, b.Found)
	assert.Equal(t, 32, d.WeightedCost)
	assert.Equal(t, 30, b.Hops)
	assert.Equal(t, 30+21*(MUD_COST-NORMAL_COST), b.TrueCost)
	assert.Less(t, d.WeightedCost, b.TrueCost)
	assert.GreaterOrEqual(t, b.TrueCost, d.WeightedCost+4*(MUD_COST-NORMAL_COST))
}

func TestWallBlockade(t *testing.T) {
	t.Run("fresh board", func(t *testing.T) {
		m := NewModel()
		for r := 0; r < ROWS; r++ {
			m.SetWall(20, r)
		}
		previous := m.Previous

		res := runDijkstra(m)
		assert.False(t, res.Found)
		assert.Equal(t, 0, res.WeightedCost)
		assert.True(t, m.Current.Empty())
		assert.Equal(t, previous, m.Previous)
		// everything left of the wall is reachable
		assert.Equal(t, 20*ROWS, res.Visited)
	})

	t.Run("after a found path", func(t *testing.T) {
		m := NewModel()
		runBFS(m)
		found := m.Current
		for r := 0; r < ROWS; r++ {
			m.SetWall(20, r)
		}

		res := runBFS(m)
		assert.False(t, res.Found)
		assert.Equal(t, 0, res.Hops)
		assert.Equal(t, 0, res.TrueCost)
		assert.Equal(t, 20*ROWS, res.Visited)
		assert.True(t, m.Current.Empty())
		assert.Equal(t, found, m.Previous)
	})
}

func TestPathReconstruction(t *testing.T) {
	t.Run("no parent gives empty path and zero cost", func(t *testing.T) {
		m := NewModel()
		m.PartialReset()
		g := &m.Grid
		assert.True(t, g.SnapshotPath(g.End, g.Start).Empty())
		assert.Equal(t, 0, g.RealCost(g.End, g.Start))
		assert.Equal(t, 0, g.ChainLength(g.End, g.Start))
	})

	t.Run("hand built chain", func(t *testing.T) {
		m := NewModel()
		m.Grid.Start = Pos{0, 0}
		m.Grid.End = Pos{3, 0}
		m.SetMud(1, 0)
		m.PartialReset()
		g := &m.Grid
		g.Matrix[1][0].Parent = Pos{0, 0}
		g.Matrix[2][0].Parent = Pos{1, 0}
		g.Matrix[3][0].Parent = Pos{2, 0}

		path := g.SnapshotPath(g.End, g.Start)
		assert.Equal(t, []Pos{{1, 0}, {2, 0}}, path.Cells())
		assert.Equal(t, MUD_COST+2*NORMAL_COST, g.RealCost(g.End, g.Start))
		assert.Equal(t, 3, g.ChainLength(g.End, g.Start))
	})
}

func randomTerrain(m *Model, rnd *rand.Rand, wall, mud float64) {
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			x := rnd.Float64()
			switch {
			case x < wall:
				m.SetWall(c, r)
			case x < wall+mud:
				m.SetMud(c, r)
			}
		}
	}
}

func assertParentLinks(t *testing.T, m *Model) {
	g := &m.Grid
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			cell := g.Matrix[c][r]
			if !cell.Visited || cell.Pos() == g.Start {
				continue
			}
			require.True(t, cell.Parent.Valid(), "visited %s has no parent", cell.Pos())
			parent := g.Cell(cell.Parent)
			dc, dr := parent.Col-c, parent.Row-r
			require.Equal(t, 1, dc*dc+dr*dr, "parent of %s is not adjacent", cell.Pos())
			require.False(t, parent.Wall)
			require.True(t, parent.Visited)
		}
	}
}

func TestSearchProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	bothFound := 0

	for i := 0; i < 200; i++ {
		m := NewModel()
		randomTerrain(m, rnd, 0.25, 0.25)
		g := &m.Grid

		d := runDijkstra(m)
		assertParentLinks(t, m)
		assert.Equal(t, d.Found, !m.Current.Empty())
		if d.Found {
			assert.Equal(t, g.Cell(g.End).Dist, g.RealCost(g.End, g.Start))
			assert.Equal(t, d.WeightedCost, g.RealCost(g.End, g.Start))
		}

		b := runBFS(m)
		assertParentLinks(t, m)
		assert.Equal(t, b.Found, !m.Current.Empty())
		if b.Found {
			assert.Equal(t, b.Hops, g.ChainLength(g.End, g.Start))
			assert.LessOrEqual(t, b.Hops, b.TrueCost)
			mud := false
			for _, p := range m.Current.Cells() {
				mud = mud || g.Cell(p).Mud
			}
			assert.Equal(t, !mud, b.Hops == b.TrueCost)
		}

		assert.Equal(t, d.Found, b.Found)
		if d.Found && b.Found {
			bothFound++
			assert.LessOrEqual(t, d.WeightedCost, b.TrueCost)
		}
	}
	assert.Greater(t, bothFound, 0)
}
