package model

// SnapshotPath walks parent links from end back to start and marks every cell
// in between. An end without a parent gives an empty bitmap.
func (g *Grid) SnapshotPath(end, start Pos) PathBitmap {
	var path PathBitmap
	p := g.Cell(end).Parent
	for p.Valid() && p != start {
		path[p.Col][p.Row] = true
		p = g.Cell(p).Parent
	}
	return path
}

// RealCost sums the entry weights along the parent chain, end included and
// start excluded. Without a path it is 0.
func (g *Grid) RealCost(end, start Pos) int {
	if end != start && !g.Cell(end).Parent.Valid() {
		return 0
	}
	total := 0
	p := end
	for p.Valid() && p != start {
		cell := g.Cell(p)
		total += cell.Weight()
		p = cell.Parent
	}
	return total
}

// ChainLength counts the edges between end and start following parent links.
func (g *Grid) ChainLength(end, start Pos) int {
	n := 0
	p := end
	for p.Valid() && p != start {
		p = g.Cell(p).Parent
		n++
	}
	if p != start {
		return 0
	}
	return n
}

func (b PathBitmap) Len() int {
	n := 0
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			if b[c][r] {
				n++
			}
		}
	}
	return n
}

func (b PathBitmap) Empty() bool {
	return b.Len() == 0
}

// Cells lists marked positions column by column.
func (b PathBitmap) Cells() []Pos {
	cells := make([]Pos, 0)
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			if b[c][r] {
				cells = append(cells, Pos{c, r})
			}
		}
	}
	return cells
}
