package sprite

import "github.com/hubastard/sprig/engine/colors"

// ID identifies a sprite for the lifetime of its Registry. IDs come from a
// monotonic counter and are never reissued; the zero ID is never valid.
type ID uint64

// Sprite is an axis-aligned colored quad. X, Y is the top-left corner in
// surface pixels.
type Sprite struct {
	ID            ID
	X, Y          float32
	Width, Height float32
	Color         colors.Color
}

// compaction kicks in once this many slots are dead and they make up more
// than half of the arena
const compactMin = 64

type slot struct {
	s    Sprite
	live bool
}

// Registry owns every sprite. Slots are kept in creation order so iteration
// matches draw order. Not safe for concurrent use; mutate it from the
// rendering goroutine only.
type Registry struct {
	last  ID
	slots []slot
	index map[ID]int
	dead  int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[ID]int)}
}

// Create allocates a sprite and returns its fresh ID.
func (r *Registry) Create(x, y, w, h float32, c colors.Color) ID {
	r.last++
	id := r.last
	r.index[id] = len(r.slots)
	r.slots = append(r.slots, slot{
		s:    Sprite{ID: id, X: x, Y: y, Width: w, Height: h, Color: c},
		live: true,
	})
	return id
}

func (r *Registry) lookup(id ID) *Sprite {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	return &r.slots[i].s
}

// MoveTo sets the top-left position. Unknown IDs are ignored; the result
// reports whether a sprite was updated.
func (r *Registry) MoveTo(id ID, x, y float32) bool {
	s := r.lookup(id)
	if s == nil {
		return false
	}
	s.X, s.Y = x, y
	return true
}

// SetColor replaces the sprite color. Unknown IDs are ignored.
func (r *Registry) SetColor(id ID, c colors.Color) bool {
	s := r.lookup(id)
	if s == nil {
		return false
	}
	s.Color = c
	return true
}

// SetSize replaces width and height. Unknown IDs are ignored.
func (r *Registry) SetSize(id ID, w, h float32) bool {
	s := r.lookup(id)
	if s == nil {
		return false
	}
	s.Width, s.Height = w, h
	return true
}

// Get returns a copy of the sprite.
func (r *Registry) Get(id ID) (Sprite, bool) {
	s := r.lookup(id)
	if s == nil {
		return Sprite{}, false
	}
	return *s, true
}

func (r *Registry) Remove(id ID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	delete(r.index, id)
	r.slots[i] = slot{}
	r.dead++
	if r.dead >= compactMin && r.dead*2 > len(r.slots) {
		r.compact()
	}
	return true
}

// Clear drops every sprite. The ID counter keeps running.
func (r *Registry) Clear() {
	clear(r.index)
	clear(r.slots)
	r.slots = r.slots[:0]
	r.dead = 0
}

func (r *Registry) Len() int { return len(r.index) }

// Each visits live sprites in creation order until fn returns false.
func (r *Registry) Each(fn func(Sprite) bool) {
	for i := range r.slots {
		if !r.slots[i].live {
			continue
		}
		if !fn(r.slots[i].s) {
			return
		}
	}
}

// Sprites returns a snapshot of live sprites in creation order.
func (r *Registry) Sprites() []Sprite {
	out := make([]Sprite, 0, r.Len())
	r.Each(func(s Sprite) bool {
		out = append(out, s)
		return true
	})
	return out
}

func (r *Registry) compact() {
	n := 0
	for _, sl := range r.slots {
		if !sl.live {
			continue
		}
		r.slots[n] = sl
		r.index[sl.s.ID] = n
		n++
	}
	clear(r.slots[n:])
	r.slots = r.slots[:n]
	r.dead = 0
}
