package core

// Layer is caller-supplied per-frame logic run before each render.
type Layer interface {
	OnUpdate(dt float64)
}

// EventLayer additionally sees input events, top of the stack first.
type EventLayer interface {
	Layer
	OnEvent(ev Event) bool // return true if handled; propagation stops
}

// LayerFunc adapts a plain function to Layer.
type LayerFunc func(dt float64)

func (f LayerFunc) OnUpdate(dt float64) { f(dt) }

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list[i] = nil
	ls.list = ls.list[:i]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

// Update runs layers bottom to top.
func (ls *LayerStack) Update(dt float64) {
	for _, l := range ls.list {
		l.OnUpdate(dt)
	}
}

// Dispatch offers ev to event layers top to bottom and reports whether one
// handled it.
func (ls *LayerStack) Dispatch(ev Event) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		el, ok := ls.list[i].(EventLayer)
		if !ok {
			continue
		}
		if el.OnEvent(ev) {
			return true
		}
	}
	return false
}
