package model

// DIRS are the four cardinal steps: right, down, left, up.
var DIRS = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func NewModel() *Model {
	m := &Model{}
	m.Grid.Start = Pos{START_COL, START_ROW}
	m.Grid.End = Pos{END_COL, END_ROW}
	m.FullReset()
	return m
}

func InBounds(col, row int) bool {
	return col >= 0 && col < COLS && row >= 0 && row < ROWS
}

func (g *Grid) Cell(p Pos) *Cell {
	return &g.Matrix[p.Col][p.Row]
}

// Neighbors returns the in-bounds, non-wall cells next to p.
func (g *Grid) Neighbors(p Pos) []*Cell {
	neighbors := make([]*Cell, 0, len(DIRS))
	for _, d := range DIRS {
		c, r := p.Col+d[0], p.Row+d[1]
		if !InBounds(c, r) {
			continue
		}
		if g.Matrix[c][r].Wall {
			continue
		}
		neighbors = append(neighbors, &g.Matrix[c][r])
	}
	return neighbors
}

func (g *Grid) isEndpoint(col, row int) bool {
	p := Pos{col, row}
	return p == g.Start || p == g.End
}

func (g *Grid) clearTransient() {
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			cell := &g.Matrix[c][r]
			cell.Dist = UNREACHED
			cell.Parent = NoPos
			cell.Visited = false
		}
	}
}

// FullReset brings everything back to startup state: terrain, search state,
// both history slots and the metrics of both algorithms.
func (m *Model) FullReset() {
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			m.Grid.Matrix[c][r] = Cell{Col: c, Row: r}
		}
	}
	m.Grid.clearTransient()
	m.Current = PathBitmap{}
	m.Previous = PathBitmap{}
	m.Dijkstra = DijkstraMetrics{}
	m.BFS = BFSMetrics{}
	m.Last = DIJKSTRA
}

// PartialReset clears only what a search writes into the cells. Terrain,
// history and metrics survive so the next run can be compared to the last one.
func (m *Model) PartialReset() {
	m.Grid.clearTransient()
}

func (m *Model) SetWall(col, row int) {
	if !InBounds(col, row) || m.Grid.isEndpoint(col, row) {
		return
	}
	cell := &m.Grid.Matrix[col][row]
	cell.Wall = true
	cell.Mud = false
}

func (m *Model) SetMud(col, row int) {
	if !InBounds(col, row) || m.Grid.isEndpoint(col, row) {
		return
	}
	cell := &m.Grid.Matrix[col][row]
	cell.Mud = true
	cell.Wall = false
}
