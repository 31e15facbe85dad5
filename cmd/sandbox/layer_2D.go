package main

import (
	"math/rand/v2"

	"github.com/tanema/gween/ease"

	"github.com/hubastard/sprig/engine"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/motion"
	"github.com/hubastard/sprig/engine/profiler"
	"github.com/hubastard/sprig/engine/sprite"
)

const (
	playerSize  = 32
	playerSpeed = 300 // px/s
)

// ------- A simple 2D Layer demo -------
// WASD/arrows move the player, clicks send the wanderers to the cursor,
// Space recolors them and Escape quits.
type Layer2D struct {
	e         *engine.Engine
	tweens    *motion.Tweener
	player    sprite.ID
	wanderers []sprite.ID
	t         float64
}

func NewLayer2D(e *engine.Engine, tweens *motion.Tweener, n int) *Layer2D {
	w, h := e.CanvasSize()
	l := &Layer2D{e: e, tweens: tweens}
	l.player = e.CreateSprite(engine.SpriteDesc{
		X:      float32(w-playerSize) / 2,
		Y:      float32(h-playerSize) / 2,
		Width:  playerSize,
		Height: playerSize,
		Color:  colors.White,
	}).ID
	for i := 0; i < n; i++ {
		s := e.CreateSprite(engine.SpriteDesc{
			X:      rand.Float32() * float32(w),
			Y:      rand.Float32() * float32(h),
			Width:  8 + rand.Float32()*24,
			Height: 8 + rand.Float32()*24,
			Color:  colors.Random().WithAlpha(0.8),
		})
		l.wanderers = append(l.wanderers, s.ID)
	}
	return l
}

func (l *Layer2D) OnUpdate(dt float64) {
	defer profiler.Start("Layer2D.OnUpdate")()
	l.t += dt

	var dx, dy float32
	if l.e.IsKeyPressed(core.KeyW) || l.e.IsKeyPressed(core.KeyArrowUp) {
		dy--
	}
	if l.e.IsKeyPressed(core.KeyS) || l.e.IsKeyPressed(core.KeyArrowDown) {
		dy++
	}
	if l.e.IsKeyPressed(core.KeyA) || l.e.IsKeyPressed(core.KeyArrowLeft) {
		dx--
	}
	if l.e.IsKeyPressed(core.KeyD) || l.e.IsKeyPressed(core.KeyArrowRight) {
		dx++
	}
	if dx != 0 || dy != 0 {
		p, _ := l.e.GetSprite(l.player)
		step := float32(playerSpeed * dt)
		l.e.MoveSprite(l.player, p.X+dx*step, p.Y+dy*step)
	}

	// idle wanderers pick a new target
	if l.tweens.Active() == 0 && l.t > 2 {
		l.t = 0
		w, h := l.e.CanvasSize()
		for _, id := range l.wanderers {
			l.tweens.MoveTo(id, rand.Float32()*float32(w), rand.Float32()*float32(h), 1.5, ease.InOutCubic)
		}
	}
}

func (l *Layer2D) OnEvent(ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		switch {
		case v.Down && v.Key == core.KeyEscape:
			l.e.Stop()
			return true
		case v.Down && v.Key == core.KeySpace:
			for _, id := range l.wanderers {
				l.tweens.FadeTo(id, colors.Random().WithAlpha(0.8), 0.5, ease.OutQuad)
			}
			return true
		}
	case core.EventMouseButton:
		if v.Down && v.Button == core.MouseLeft {
			for _, id := range l.wanderers {
				l.tweens.MoveTo(id, v.X, v.Y, 0.8, ease.OutBounce)
			}
			return true
		}
	}
	return false
}
