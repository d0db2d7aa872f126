package server

import "github.com/zucenko/gridpath/model"

type MetricsView struct {
	Ran          bool    `json:"ran"`
	TimeSeconds  float64 `json:"time_seconds"`
	VisitedCount int     `json:"visited_count"`
	Found        bool    `json:"found"`
	WeightedCost *int    `json:"weighted_cost,omitempty"`
	Hops         *int    `json:"hops,omitempty"`
	TrueCost     *int    `json:"true_cost,omitempty"`
}

// StateView is the JSON shape of a render model: terrain and paths as cell
// lists instead of full bitmaps.
type StateView struct {
	Session    string      `json:"session"`
	Cols       int         `json:"cols"`
	Rows       int         `json:"rows"`
	Start      [2]int      `json:"start"`
	End        [2]int      `json:"end"`
	Walls      [][2]int    `json:"walls"`
	Mud        [][2]int    `json:"mud"`
	Current    [][2]int    `json:"current"`
	Previous   [][2]int    `json:"previous"`
	Last       string      `json:"last_algorithm"`
	Mode       string      `json:"mode"`
	Dijkstra   MetricsView `json:"dijkstra"`
	BFS        MetricsView `json:"bfs"`
	Comparison string      `json:"comparison,omitempty"`
}

func pair(p model.Pos) [2]int {
	return [2]int{p.Col, p.Row}
}

func pairs(b *model.PathBitmap) [][2]int {
	out := make([][2]int, 0)
	for _, p := range b.Cells() {
		out = append(out, pair(p))
	}
	return out
}

func NewStateView(session string, rm model.RenderModel) StateView {
	sv := StateView{
		Session:  session,
		Cols:     rm.Cols,
		Rows:     rm.Rows,
		Start:    pair(rm.Start),
		End:      pair(rm.End),
		Walls:    make([][2]int, 0),
		Mud:      make([][2]int, 0),
		Current:  pairs(&rm.Current),
		Previous: pairs(&rm.Previous),
		Last:     rm.Last.Name(),
		Mode:     rm.Mode.Name(),
	}
	for c := 0; c < rm.Cols; c++ {
		for r := 0; r < rm.Rows; r++ {
			switch {
			case rm.Cells[c][r].Wall:
				sv.Walls = append(sv.Walls, [2]int{c, r})
			case rm.Cells[c][r].Mud:
				sv.Mud = append(sv.Mud, [2]int{c, r})
			}
		}
	}

	d, b := rm.Dijkstra, rm.BFS
	weighted, hops, trueCost := d.WeightedCost, b.Hops, b.TrueCost
	sv.Dijkstra = MetricsView{
		Ran: d.Ran, TimeSeconds: d.Seconds(), VisitedCount: d.Visited, Found: d.Found,
		WeightedCost: &weighted,
	}
	sv.BFS = MetricsView{
		Ran: b.Ran, TimeSeconds: b.Seconds(), VisitedCount: b.Visited, Found: b.Found,
		Hops: &hops, TrueCost: &trueCost,
	}
	sv.Comparison = rm.Comparison().Sentence
	return sv
}
