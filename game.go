package main

import (
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/zucenko/gridpath/config"
	"github.com/zucenko/gridpath/model"
	"github.com/zucenko/gridpath/server"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	CELL  = 20
	BAR_H = 140
)

var screenWidth = model.COLS * CELL
var screenHeight = model.ROWS*CELL + BAR_H

// Core is the comparator the window drives, either owned locally or living
// in a server session.
type Core interface {
	Apply(cmd model.Command) error
	Snapshot() model.RenderModel
}

type Game struct {
	Core    Core
	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]*Action

	pathAlpha   float32
	headerPulse float32
	faces       map[int]font.Face
}

func NewGame(core Core) (*Game, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	faces := make(map[int]font.Face)
	for _, size := range []int{13, 14, 15, 16, 19, 20} {
		faces[size] = truetype.NewFace(tt, &truetype.Options{
			Size:    float64(size),
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &Game{
		Core:        core,
		strokes:     map[*Stroke]struct{}{},
		Tweens:      make(map[*gween.Tween]*Action),
		pathAlpha:   1,
		headerPulse: 1,
		faces:       faces,
	}, nil
}

func (g *Game) apply(cmd model.Command) {
	if err := g.Core.Apply(cmd); err != nil {
		log.Warnf("command %s: %v", cmd.Kind.Name(), err)
		return
	}
	if cmd.Kind == model.CMD_RUN {
		g.highlightRun()
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens()
	g.handleInput()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	rm := g.Core.Snapshot()
	if e := screen.Fill(COL_BACKGROUND); e != nil {
		log.Printf("%v", e)
	}
	g.drawGrid(screen, &rm)
	g.drawDashboard(screen, &rm)
	return nil
}

func main() {
	cfg := config.Load()
	cfg.Apply()

	var core Core
	if cfg.Remote != "" {
		rc, err := server.Dial(cfg.Remote)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		core = rc
	} else {
		core = model.NewController()
	}

	game, err := NewGame(core)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(game.update, screenWidth, screenHeight, cfg.Scale, "Pathfinding Visualizer: Dijkstra vs BFS"); err != nil {
		log.Fatal(err)
	}
}
