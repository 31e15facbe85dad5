package gfx

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hubastard/sprig/engine/core"
)

// Selector picks the accelerated backend when it initializes and substitutes
// the fallback otherwise. The choice is made once per Acquire and is never
// revisited.
type Selector struct {
	Accelerated Factory
	Fallback    Factory
	// ForceFallback skips the accelerated attempt.
	ForceFallback bool
	Logger        *slog.Logger
}

func (s *Selector) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return core.Logger()
}

// Acquire returns an initialized backend bound to the named surface. An
// accelerated init failure is not an error; only a failing fallback is.
func (s *Selector) Acquire(surfaces core.SurfaceLookup, name string) (Backend, error) {
	log := s.logger()

	if s.Accelerated != nil && !s.ForceFallback {
		b := s.Accelerated()
		err := b.Init(surfaces, name)
		if err == nil {
			log.Info("backend selected", "backend", b.Name(), "surface", name)
			return b, nil
		}
		b.Shutdown()
		log.Warn("accelerated backend unavailable, using fallback",
			"backend", b.Name(), "surface", name, "reason", initReason(err), "err", err)
	} else if s.ForceFallback {
		log.Info("accelerated backend skipped", "surface", name)
	}

	if s.Fallback == nil {
		return nil, fmt.Errorf("acquire backend for %q: no fallback configured", name)
	}
	b := s.Fallback()
	if err := b.Init(surfaces, name); err != nil {
		b.Shutdown()
		return nil, fmt.Errorf("acquire %s backend for %q: %w", b.Name(), name, err)
	}
	log.Info("backend selected", "backend", b.Name(), "surface", name)
	return b, nil
}

func initReason(err error) string {
	switch {
	case errors.Is(err, core.ErrSurfaceNotFound):
		return "surface_not_found"
	case errors.Is(err, core.ErrContextUnavailable):
		return "context_unavailable"
	case errors.Is(err, core.ErrShaderCompile):
		return "shader_compile"
	default:
		return "other"
	}
}
