package model

import (
	"fmt"
	"math"
	"time"
)

// Board parameters. They are constants of the core, nothing configures them.
const (
	COLS = 40
	ROWS = 30

	START_COL = 5
	START_ROW = 15
	END_COL   = 35
	END_ROW   = 15

	NORMAL_COST = 1
	MUD_COST    = 5

	// UNREACHED is the distance of a cell no search has reached yet.
	// Any path on the board costs less than MUD_COST*COLS*ROWS.
	UNREACHED = math.MaxInt32
)

type Pos struct {
	Col, Row int
}

// NoPos marks a missing parent link.
var NoPos = Pos{-1, -1}

func (p Pos) Valid() bool {
	return p.Col >= 0 && p.Col < COLS && p.Row >= 0 && p.Row < ROWS
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

type Cell struct {
	Col, Row int
	Wall     bool
	Mud      bool

	// transient, owned by the running search
	Dist    int
	Parent  Pos
	Visited bool
}

func (c *Cell) Pos() Pos {
	return Pos{c.Col, c.Row}
}

// Weight is the cost of entering the cell.
func (c *Cell) Weight() int {
	if c.Mud {
		return MUD_COST
	}
	return NORMAL_COST
}

type Grid struct {
	Matrix [COLS][ROWS]Cell
	Start  Pos
	End    Pos
}

// PathBitmap marks the cells of a reconstructed path, start and end excluded.
type PathBitmap [COLS][ROWS]bool

type Algorithm int

const (
	DIJKSTRA Algorithm = iota
	BFS
)

func (a Algorithm) Name() string {
	switch a {
	case DIJKSTRA:
		return "DIJKSTRA"
	case BFS:
		return "BFS"
	default:
		return fmt.Sprintf("N/A(%d)", a)
	}
}

// RunMetrics is what every algorithm reports about its last run.
type RunMetrics struct {
	Ran     bool
	Elapsed time.Duration
	Visited int
	Found   bool
}

func (m RunMetrics) Seconds() float64 {
	return m.Elapsed.Seconds()
}

type DijkstraMetrics struct {
	RunMetrics
	WeightedCost int
}

type BFSMetrics struct {
	RunMetrics
	Hops     int
	TrueCost int
}

// Model is the whole state of the comparator: terrain, the transient state of
// the last search, the two history slots and the metrics of both algorithms.
type Model struct {
	Grid     Grid
	Current  PathBitmap
	Previous PathBitmap
	Last     Algorithm
	Dijkstra DijkstraMetrics
	BFS      BFSMetrics
}
