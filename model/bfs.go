package model

import "time"

// walker holds the FIFO state of one breadth-first run.
type walker struct {
	grid    *Grid
	queue   []Pos
	visited int
}

// bfs searches the path with the fewest hops from start to end. Mud is
// crossed like any other cell. The grid must be partially reset.
func (g *Grid) bfs() searchResult {
	w := &walker{
		grid:  g,
		queue: make([]Pos, 0, COLS*ROWS),
	}
	begin := time.Now()
	found := w.loop()
	return searchResult{found: found, visited: w.visited, elapsed: time.Since(begin)}
}

func (w *walker) loop() bool {
	start := w.grid.Cell(w.grid.Start)
	start.Dist = 0
	start.Visited = true
	w.queue = append(w.queue, start.Pos())

	for len(w.queue) > 0 {
		curr := w.dequeue()
		w.visited++
		if curr.Pos() == w.grid.End {
			return true
		}
		w.enqueueNeighbors(curr)
	}
	return false
}

func (w *walker) dequeue() *Cell {
	p := w.queue[0]
	w.queue = w.queue[1:]
	return w.grid.Cell(p)
}

func (w *walker) enqueueNeighbors(curr *Cell) {
	for _, n := range w.grid.Neighbors(curr.Pos()) {
		if n.Visited {
			continue
		}
		n.Dist = curr.Dist + 1
		n.Parent = curr.Pos()
		n.Visited = true
		w.queue = append(w.queue, n.Pos())
	}
}
