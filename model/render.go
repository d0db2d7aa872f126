package model

import "fmt"

type Mode int

const (
	MODE_IDLE Mode = iota
	MODE_SINGLE
	MODE_BOTH
)

func (m Mode) Name() string {
	switch m {
	case MODE_IDLE:
		return "IDLE"
	case MODE_SINGLE:
		return "SINGLE"
	case MODE_BOTH:
		return "BOTH"
	default:
		return fmt.Sprintf("N/A(%d)", m)
	}
}

type CellView struct {
	Wall    bool
	Mud     bool
	Visited bool
}

// RenderModel is a read-only copy of everything the presentation draws.
type RenderModel struct {
	Cols, Rows int
	Start, End Pos
	Cells      [COLS][ROWS]CellView
	Current    PathBitmap
	Previous   PathBitmap
	Last       Algorithm
	Dijkstra   DijkstraMetrics
	BFS        BFSMetrics
	Mode       Mode
}

func (m *Model) Mode() Mode {
	switch {
	case m.Dijkstra.Ran && m.BFS.Ran:
		return MODE_BOTH
	case m.Dijkstra.Ran || m.BFS.Ran:
		return MODE_SINGLE
	default:
		return MODE_IDLE
	}
}

func (m *Model) Snapshot() RenderModel {
	rm := RenderModel{
		Cols:     COLS,
		Rows:     ROWS,
		Start:    m.Grid.Start,
		End:      m.Grid.End,
		Current:  m.Current,
		Previous: m.Previous,
		Last:     m.Last,
		Dijkstra: m.Dijkstra,
		BFS:      m.BFS,
		Mode:     m.Mode(),
	}
	for c := 0; c < COLS; c++ {
		for r := 0; r < ROWS; r++ {
			cell := &m.Grid.Matrix[c][r]
			rm.Cells[c][r] = CellView{Wall: cell.Wall, Mud: cell.Mud, Visited: cell.Visited}
		}
	}
	return rm
}

type Verdict int

const (
	VERDICT_NONE Verdict = iota
	VERDICT_NO_PATH
	VERDICT_MUD
	VERDICT_AVOIDED
	VERDICT_EQUAL
)

func (v Verdict) Name() string {
	switch v {
	case VERDICT_NONE:
		return "NONE"
	case VERDICT_NO_PATH:
		return "NO_PATH"
	case VERDICT_MUD:
		return "MUD"
	case VERDICT_AVOIDED:
		return "AVOIDED"
	case VERDICT_EQUAL:
		return "EQUAL"
	default:
		return fmt.Sprintf("N/A(%d)", v)
	}
}

// Comparison contrasts the last Dijkstra run with the last BFS run.
type Comparison struct {
	Verdict Verdict
	// Diff is BFS true cost minus Dijkstra weighted cost.
	Diff     int
	Sentence string
}

func (rm *RenderModel) Comparison() Comparison {
	if rm.Mode != MODE_BOTH {
		return Comparison{Verdict: VERDICT_NONE}
	}
	if !rm.Dijkstra.Found || !rm.BFS.Found {
		return Comparison{
			Verdict:  VERDICT_NO_PATH,
			Sentence: "Result:  One or both algorithms did not find a path.",
		}
	}
	dc, bc := rm.Dijkstra.WeightedCost, rm.BFS.TrueCost
	diff := bc - dc
	switch {
	case diff > 0:
		return Comparison{
			Verdict: VERDICT_MUD,
			Diff:    diff,
			Sentence: fmt.Sprintf("Result:  Dijkstra cost %d  vs  BFS true cost %d  - BFS costs %d more because it walked through mud.",
				dc, bc, diff),
		}
	case diff < 0:
		return Comparison{
			Verdict: VERDICT_AVOIDED,
			Diff:    diff,
			Sentence: fmt.Sprintf("Result:  Dijkstra cost %d  vs  BFS true cost %d  - BFS happened to avoid mud this run.",
				dc, bc),
		}
	default:
		return Comparison{
			Verdict:  VERDICT_EQUAL,
			Sentence: fmt.Sprintf("Result:  Both algorithms cost %d  - No mud difference on these paths.", dc),
		}
	}
}

// TrueCostHigher reports whether the BFS path is dearer than the Dijkstra one.
func (rm *RenderModel) TrueCostHigher() bool {
	return rm.BFS.TrueCost > rm.Dijkstra.WeightedCost
}
