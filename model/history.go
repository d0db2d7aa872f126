package model

// record shifts the history: the current path becomes the previous one and
// the path of the run that just finished, or nothing, becomes current.
func (m *Model) record(alg Algorithm, found bool, path PathBitmap) {
	m.Previous = m.Current
	if found {
		m.Current = path
	} else {
		m.Current = PathBitmap{}
	}
	m.Last = alg
}

// RunDijkstra runs the weighted search, shifts the history and overwrites the
// Dijkstra metrics. Call PartialReset first.
func (m *Model) RunDijkstra() DijkstraMetrics {
	g := &m.Grid
	res := g.dijkstra()

	var path PathBitmap
	if res.found {
		path = g.SnapshotPath(g.End, g.Start)
	}
	m.record(DIJKSTRA, res.found, path)

	m.Dijkstra = DijkstraMetrics{
		RunMetrics: RunMetrics{
			Ran:     true,
			Elapsed: res.elapsed,
			Visited: res.visited,
			Found:   res.found,
		},
	}
	if res.found {
		m.Dijkstra.WeightedCost = g.Cell(g.End).Dist
	}
	return m.Dijkstra
}

// RunBFS runs the unweighted search, shifts the history and overwrites the
// BFS metrics. Call PartialReset first.
func (m *Model) RunBFS() BFSMetrics {
	g := &m.Grid
	res := g.bfs()

	// true cost needs live parent links, take it before anything else
	trueCost := 0
	var path PathBitmap
	if res.found {
		trueCost = g.RealCost(g.End, g.Start)
		path = g.SnapshotPath(g.End, g.Start)
	}
	m.record(BFS, res.found, path)

	m.BFS = BFSMetrics{
		RunMetrics: RunMetrics{
			Ran:     true,
			Elapsed: res.elapsed,
			Visited: res.visited,
			Found:   res.found,
		},
		TrueCost: trueCost,
	}
	if res.found {
		m.BFS.Hops = g.Cell(g.End).Dist
	}
	return m.BFS
}
