package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/zucenko/gridpath/model"
)

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of one mouse button.
type MouseStrokeSource struct {
	Button ebiten.MouseButton
}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(m.Button)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke paints one kind of terrain while its source is held.
type Stroke struct {
	source  StrokeSource
	terrain model.Terrain

	// last painted cell, edits are only sent when it changes
	col, row int

	released bool
}

func NewStroke(source StrokeSource, terrain model.Terrain) *Stroke {
	return &Stroke{
		source:  source,
		terrain: terrain,
		col:     -1,
		row:     -1,
	}
}

// Update follows the source and returns the edit for a newly entered cell.
func (s *Stroke) Update() (model.Command, bool) {
	if s.released {
		return model.Command{}, false
	}
	if s.source.IsJustReleased() {
		s.released = true
		return model.Command{}, false
	}
	x, y := s.source.Position()
	col, row := x/CELL, y/CELL
	if x < 0 || y < 0 || !model.InBounds(col, row) {
		return model.Command{}, false
	}
	if col == s.col && row == s.row {
		return model.Command{}, false
	}
	s.col, s.row = col, row
	return model.EditTerrain(s.terrain, col, row), true
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

// KEYS maps discrete triggers to commands.
var KEYS = map[ebiten.Key]model.Command{
	ebiten.KeySpace: model.Run(model.DIJKSTRA),
	ebiten.KeyB:     model.Run(model.BFS),
	ebiten.KeyR:     model.FullReset(),
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.strokes[NewStroke(&MouseStrokeSource{ebiten.MouseButtonLeft}, model.TERRAIN_WALL)] = struct{}{}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.strokes[NewStroke(&MouseStrokeSource{ebiten.MouseButtonRight}, model.TERRAIN_MUD)] = struct{}{}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id}, model.TERRAIN_WALL)] = struct{}{}
	}

	for s := range g.strokes {
		if cmd, ok := s.Update(); ok {
			g.apply(cmd)
		}
		if s.IsReleased() {
			delete(g.strokes, s)
		}
	}

	for key, cmd := range KEYS {
		if inpututil.IsKeyJustPressed(key) {
			g.apply(cmd)
		}
	}
}
