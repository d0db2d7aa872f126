package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const tweenStep = 1.0 / 60

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

func (g *Game) updateTweens() {
	for t, a := range g.Tweens {
		curr, finished := t.Update(tweenStep)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// highlightRun fades the new current path in and then lets the header of
// the algorithm that just ran flash from white to its colour.
func (g *Game) highlightRun() {
	for t := range g.Tweens {
		delete(g.Tweens, t)
	}
	g.pathAlpha, g.headerPulse = 0.15, 0
	fade := &Action{onChange: func(v float32) { g.pathAlpha = v }}
	fade.addOnFinish(func() { g.pathAlpha = 1 })
	pulse := fade.next(gween.New(0, 1, 0.3, ease.OutQuad))
	pulse.onChange = func(v float32) { g.headerPulse = v }
	pulse.addOnFinish(func() { g.headerPulse = 1 })
	g.Tweens[gween.New(0.15, 1, 0.4, ease.OutCubic)] = fade
}
