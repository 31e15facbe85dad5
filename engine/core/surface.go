package core

import (
	"fmt"
	"image"
	"sync"
)

// Surface is a named drawable target owned by the host.
type Surface interface {
	Name() string
	Size() (w, h int)
}

// GLSurface can host an OpenGL context.
type GLSurface interface {
	Surface
	MakeContextCurrent() error
	SwapBuffers()
}

// PixelSurface accepts finished CPU frames.
type PixelSurface interface {
	Surface
	Present(frame image.Image) error
}

type SurfaceLookup interface {
	Lookup(name string) (Surface, bool)
}

// Surfaces is a name -> Surface registry. Hosts register windows here and
// the engine resolves them by name.
type Surfaces struct {
	mu sync.RWMutex
	m  map[string]Surface
}

// DefaultSurfaces is the process-wide registry used when none is injected.
var DefaultSurfaces = NewSurfaces()

func NewSurfaces() *Surfaces { return &Surfaces{m: map[string]Surface{}} }

func (s *Surfaces) Register(sf Surface) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[sf.Name()]; ok {
		return fmt.Errorf("register surface %q: name already taken", sf.Name())
	}
	s.m[sf.Name()] = sf
	return nil
}

func (s *Surfaces) Unregister(name string) {
	s.mu.Lock()
	delete(s.m, name)
	s.mu.Unlock()
}

func (s *Surfaces) Lookup(name string) (Surface, bool) {
	s.mu.RLock()
	sf, ok := s.m[name]
	s.mu.RUnlock()
	return sf, ok
}

// Resolve is Lookup with the not-found case turned into an error.
func Resolve(l SurfaceLookup, name string) (Surface, error) {
	sf, ok := l.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrSurfaceNotFound)
	}
	return sf, nil
}
