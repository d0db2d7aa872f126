package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/zucenko/gridpath/model"
)

func Hex(u uint32) color.NRGBA {
	return color.NRGBA{R: uint8(u >> 24), G: uint8(u >> 16), B: uint8(u >> 8), A: uint8(u)}
}

var (
	COL_BACKGROUND = Hex(0x181818FF)
	COL_START      = Hex(0x00E430FF)
	COL_END        = Hex(0xE62937FF)
	COL_WALL       = Hex(0x222222FF)
	COL_MUD        = Hex(0x8B5E3CFF)
	COL_VISITED    = Hex(0x3A7EBFFF)
	COL_OPEN       = Hex(0xDDDDDDFF)

	COL_GREEN   = Hex(0x00E430FF)
	COL_YELLOW  = Hex(0xFDF900FF) // current path and header
	COL_ORANGE  = Hex(0xFF8C00FF) // previous path and header
	COL_RED     = Hex(0xFF3333FF)
	COL_WHITE   = Hex(0xFFFFFFFF)
	COL_GRAY    = Hex(0x888888FF)
	COL_DIMGRAY = Hex(0x444444FF)
	COL_DIVIDER = Hex(0x2A2A2AFF)
	COL_BAR     = Hex(0x0A0A0AFF)
	COL_AMBER   = Hex(0xFFCC44FF)
)

func withAlpha(c color.NRGBA, a float32) color.NRGBA {
	c.A = uint8(float32(c.A) * clamp01(a))
	return c
}

// blend goes from white at t=0 to c at t=1.
func blend(c color.NRGBA, t float32) color.NRGBA {
	t = clamp01(t)
	mix := func(v uint8) uint8 { return uint8(255 - (255-float32(v))*t) }
	return color.NRGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func cellRect(screen *ebiten.Image, c, r int, clr color.Color) {
	ebitenutil.DrawRect(screen, float64(c*CELL), float64(r*CELL), CELL-1, CELL-1, clr)
}

func (g *Game) drawGrid(screen *ebiten.Image, rm *model.RenderModel) {
	for c := 0; c < rm.Cols; c++ {
		for r := 0; r < rm.Rows; r++ {
			p := model.Pos{Col: c, Row: r}
			cell := rm.Cells[c][r]
			var clr color.Color
			switch {
			case p == rm.Start:
				clr = COL_START
			case p == rm.End:
				clr = COL_END
			case cell.Wall:
				clr = COL_WALL
			case cell.Mud:
				clr = COL_MUD
			case cell.Visited:
				clr = COL_VISITED
			default:
				clr = COL_OPEN
			}
			cellRect(screen, c, r, clr)
		}
	}

	// previous under current
	for _, p := range rm.Previous.Cells() {
		cellRect(screen, p.Col, p.Row, COL_ORANGE)
	}
	current := withAlpha(COL_YELLOW, g.pathAlpha)
	for _, p := range rm.Current.Cells() {
		cellRect(screen, p.Col, p.Row, current)
	}
}

// draw puts s with its top at y, the way the dashboard rows are laid out.
func (g *Game) draw(screen *ebiten.Image, s string, x, y, size int, clr color.Color) {
	text.Draw(screen, s, g.faces[size], x, y+size, clr)
}

func (g *Game) drawBold(screen *ebiten.Image, s string, x, y, size int, clr color.Color) {
	g.draw(screen, s, x+1, y, size, clr)
	g.draw(screen, s, x, y, size, clr)
}

func foundText(found bool) (string, color.Color) {
	if found {
		return "YES", COL_GREEN
	}
	return "NO", COL_RED
}

func (g *Game) drawDashboard(screen *ebiten.Image, rm *model.RenderModel) {
	winW := screenWidth
	barY := rm.Rows * CELL
	r1 := barY + 6   // headers
	r2 := barY + 32  // time and visited
	r3 := barY + 54  // cost and hops
	r4 := barY + 80  // comparison
	r5 := barY + 108 // legend
	px := 20
	cx := winW/2 + 20

	ebitenutil.DrawRect(screen, 0, float64(barY), float64(winW), BAR_H, COL_BAR)
	ebitenutil.DrawLine(screen, 0, float64(barY), float64(winW), float64(barY), COL_DIVIDER)

	g.draw(screen, "Normal=1  Mud=5", px, r5, 13, COL_DIMGRAY)
	g.draw(screen, "Dijkstra=cheapest path   BFS=fewest steps, ignores mud", px+125, r5, 13, COL_DIMGRAY)
	ebitenutil.DrawRect(screen, float64(winW-155), float64(r5), 11, 11, COL_YELLOW)
	g.draw(screen, "Current", winW-141, r5, 13, COL_GRAY)
	ebitenutil.DrawRect(screen, float64(winW-75), float64(r5), 11, 11, COL_ORANGE)
	g.draw(screen, "Previous", winW-61, r5, 13, COL_GRAY)
	ebitenutil.DrawLine(screen, 0, float64(r5-6), float64(winW), float64(r5-6), COL_DIVIDER)

	switch rm.Mode {
	case model.MODE_IDLE:
		g.draw(screen, "SPACE = Run Dijkstra (Weighted)     B = Run BFS (Unweighted)", px, r1, 20, COL_GRAY)
		g.draw(screen, "Left Click = Wall     Right Click = Mud     R = Full Reset", px, r2, 16, COL_DIMGRAY)
		g.draw(screen, "Run both algorithms to see a live side-by-side comparison.", px, r3, 14, COL_DIMGRAY)

	case model.MODE_BOTH:
		ebitenutil.DrawLine(screen, float64(winW/2), float64(barY+4), float64(winW/2), float64(r5-10), COL_DIVIDER)
		dijCurrent := rm.Last == model.DIJKSTRA

		dijHeader, dijColor := "   PREVIOUS (DIJKSTRA)", COL_ORANGE
		bfsHeader, bfsColor := ">> CURRENT  (BFS)", blend(COL_YELLOW, g.headerPulse)
		if dijCurrent {
			dijHeader, dijColor = ">> CURRENT  (DIJKSTRA)", blend(COL_YELLOW, g.headerPulse)
			bfsHeader, bfsColor = "   PREVIOUS (BFS)", COL_ORANGE
		}
		g.drawBold(screen, dijHeader, px, r1, 19, dijColor)
		g.drawBold(screen, bfsHeader, cx, r1, 19, bfsColor)

		g.drawRunRow(screen, px, r2, 48, 155, 220, 275, 315, rm.Dijkstra.RunMetrics)
		g.drawRunRow(screen, cx, r2, 48, 155, 220, 275, 315, rm.BFS.RunMetrics)

		g.draw(screen, "Weighted Cost:", px, r3, 15, COL_GRAY)
		g.draw(screen, fmt.Sprintf("%d", rm.Dijkstra.WeightedCost), px+125, r3, 15, COL_WHITE)

		g.draw(screen, "Hops:", cx, r3, 15, COL_GRAY)
		g.draw(screen, fmt.Sprintf("%d", rm.BFS.Hops), cx+48, r3, 15, COL_WHITE)
		g.draw(screen, "True Cost:", cx+100, r3, 15, COL_GRAY)
		var trueCostColor color.Color = COL_WHITE
		if rm.TrueCostHigher() {
			trueCostColor = COL_RED
			g.draw(screen, "(!)", cx+220, r3, 15, COL_RED)
		}
		g.draw(screen, fmt.Sprintf("%d", rm.BFS.TrueCost), cx+190, r3, 15, trueCostColor)

		cmp := rm.Comparison()
		if cmp.Verdict == model.VERDICT_NO_PATH {
			g.draw(screen, cmp.Sentence, px, r4, 14, COL_DIMGRAY)
		} else {
			g.draw(screen, cmp.Sentence, px, r4, 14, COL_AMBER)
		}

	case model.MODE_SINGLE:
		header := blend(COL_YELLOW, g.headerPulse)
		if rm.Last == model.DIJKSTRA {
			g.drawBold(screen, ">> CURRENT  (DIJKSTRA)", px, r1, 19, header)
			g.drawRunRow(screen, px, r2, 50, 170, 240, 300, 340, rm.Dijkstra.RunMetrics)
			g.draw(screen, "Weighted Cost:", px, r3, 15, COL_GRAY)
			g.draw(screen, fmt.Sprintf("%d", rm.Dijkstra.WeightedCost), px+125, r3, 15, COL_WHITE)
		} else {
			g.drawBold(screen, ">> CURRENT  (BFS)", px, r1, 19, header)
			g.drawRunRow(screen, px, r2, 50, 170, 240, 300, 340, rm.BFS.RunMetrics)
			g.draw(screen, "Hops:", px, r3, 15, COL_GRAY)
			g.draw(screen, fmt.Sprintf("%d", rm.BFS.Hops), px+50, r3, 15, COL_WHITE)
			g.draw(screen, "True Cost:", px+110, r3, 15, COL_GRAY)
			g.draw(screen, fmt.Sprintf("%d", rm.BFS.TrueCost), px+200, r3, 15, COL_WHITE)
		}
		other := "B"
		if rm.Last == model.BFS {
			other = "SPACE"
		}
		g.draw(screen, fmt.Sprintf("Press %s to run the other algorithm and compare.", other), px, r4, 14, COL_DIMGRAY)
	}
}

// drawRunRow draws time, visited count and found flag at the given offsets.
func (g *Game) drawRunRow(screen *ebiten.Image, x, y, timeX, visitedLabelX, visitedX, pathLabelX, pathX int, m model.RunMetrics) {
	g.draw(screen, "Time:", x, y, 15, COL_GRAY)
	g.draw(screen, fmt.Sprintf("%.6f s", m.Seconds()), x+timeX, y, 15, COL_WHITE)
	g.draw(screen, "Visited:", x+visitedLabelX, y, 15, COL_GRAY)
	g.draw(screen, fmt.Sprintf("%d", m.Visited), x+visitedX, y, 15, COL_WHITE)
	g.draw(screen, "Path:", x+pathLabelX, y, 15, COL_GRAY)
	found, clr := foundText(m.Found)
	g.draw(screen, found, x+pathX, y, 15, clr)
}
