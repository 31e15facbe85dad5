// Package motion animates sprites through the registry with gween tweens.
package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/sprite"
)

type channel int

const (
	position channel = iota
	tint
)

type key struct {
	id sprite.ID
	ch channel
}

// track animates up to 4 float32 components of one sprite.
type track struct {
	tweens [4]*gween.Tween
	count  int
}

func (t *track) update(dt float32) (vals [4]float32, done bool) {
	done = true
	for i := 0; i < t.count; i++ {
		v, finished := t.tweens[i].Update(dt)
		vals[i] = v
		if !finished {
			done = false
		}
	}
	return vals, done
}

// Tweener is a core.Layer that moves and recolors sprites over time. A new
// tween on a sprite replaces the running one for the same property. Tweens
// on sprites that were removed are dropped on the next update.
type Tweener struct {
	sprites *sprite.Registry
	active  map[key]*track
}

func New(sprites *sprite.Registry) *Tweener {
	return &Tweener{sprites: sprites, active: make(map[key]*track)}
}

// MoveTo tweens the sprite's top-left corner to x, y. It reports false when
// the sprite does not exist.
func (t *Tweener) MoveTo(id sprite.ID, x, y, seconds float32, fn ease.TweenFunc) bool {
	s, ok := t.sprites.Get(id)
	if !ok {
		return false
	}
	tr := &track{count: 2}
	tr.tweens[0] = gween.New(s.X, x, seconds, easing(fn))
	tr.tweens[1] = gween.New(s.Y, y, seconds, easing(fn))
	t.active[key{id, position}] = tr
	return true
}

// FadeTo tweens every color component toward c.
func (t *Tweener) FadeTo(id sprite.ID, c colors.Color, seconds float32, fn ease.TweenFunc) bool {
	s, ok := t.sprites.Get(id)
	if !ok {
		return false
	}
	tr := &track{count: 4}
	for i := range tr.tweens {
		tr.tweens[i] = gween.New(s.Color[i], c[i], seconds, easing(fn))
	}
	t.active[key{id, tint}] = tr
	return true
}

// Cancel stops every tween on the sprite, leaving it where it is.
func (t *Tweener) Cancel(id sprite.ID) {
	delete(t.active, key{id, position})
	delete(t.active, key{id, tint})
}

// Active counts running tweens.
func (t *Tweener) Active() int { return len(t.active) }

// OnUpdate implements core.Layer.
func (t *Tweener) OnUpdate(dt float64) {
	for k, tr := range t.active {
		if _, ok := t.sprites.Get(k.id); !ok {
			delete(t.active, k)
			continue
		}
		v, done := tr.update(float32(dt))
		switch k.ch {
		case position:
			t.sprites.MoveTo(k.id, v[0], v[1])
		case tint:
			t.sprites.SetColor(k.id, colors.Color{v[0], v[1], v[2], v[3]})
		}
		if done {
			delete(t.active, k)
		}
	}
}

func easing(fn ease.TweenFunc) ease.TweenFunc {
	if fn == nil {
		return ease.Linear
	}
	return fn
}
