package model

import (
	"container/heap"
	"time"
)

// searchResult is what a single search loop reports before history and
// metrics are updated.
type searchResult struct {
	found   bool
	visited int
	elapsed time.Duration
}

// runner holds the state of one Dijkstra run over the grid.
type runner struct {
	grid    *Grid
	pq      cellPQ
	visited int
}

// dijkstra searches the cheapest weighted path from start to end. Entering mud
// costs MUD_COST, any other passable cell NORMAL_COST. The grid must be
// partially reset.
func (g *Grid) dijkstra() searchResult {
	r := &runner{
		grid: g,
		pq:   make(cellPQ, 0, COLS*ROWS),
	}
	begin := time.Now()
	found := r.process()
	return searchResult{found: found, visited: r.visited, elapsed: time.Since(begin)}
}

func (r *runner) process() bool {
	start := r.grid.Cell(r.grid.Start)
	start.Dist = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{pos: start.Pos(), dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		if item.pos == r.grid.End {
			return true
		}
		curr := r.grid.Cell(item.pos)
		// stale entry, a cheaper one was settled already
		if curr.Visited {
			continue
		}
		curr.Visited = true
		r.visited++
		r.relax(curr)
	}
	return false
}

// relax pushes a new entry for every neighbour reached strictly cheaper
// through curr. Older entries stay in the heap and are skipped when popped.
func (r *runner) relax(curr *Cell) {
	for _, n := range r.grid.Neighbors(curr.Pos()) {
		tentative := curr.Dist + n.Weight()
		if tentative >= n.Dist {
			continue
		}
		n.Dist = tentative
		n.Parent = curr.Pos()
		heap.Push(&r.pq, &cellItem{pos: n.Pos(), dist: tentative})
	}
}

type cellItem struct {
	pos  Pos
	dist int
}

// cellPQ is a min-heap of cellItem ordered by dist.
type cellPQ []*cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
