// Package gfx defines the rendering contract shared by the accelerated and
// software backends, the unit-quad geometry both draw from, and the
// selector that picks one of them at startup.
package gfx

import (
	"image"

	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/scene"
	"github.com/hubastard/sprig/engine/sprite"
)

// Backend is a concrete graphics context plus render pipeline. Callers are
// backend-agnostic; every implementation draws the same frame from the same
// registry.
type Backend interface {
	Name() string
	// Init resolves the named surface, acquires a context, compiles the
	// program and uploads the unit quad. Errors match core.ErrSurfaceNotFound,
	// core.ErrContextUnavailable or core.ErrShaderCompile.
	Init(surfaces core.SurfaceLookup, name string) error
	// Resize recomputes the projection for a w x h surface.
	Resize(w, h int)
	Projection() scene.Mat4
	// Render draws one frame: one draw submission per sprite in registry
	// order over the shared quad.
	Render(sprites *sprite.Registry) Statistics
	Shutdown()
}

// Factory builds an uninitialized backend.
type Factory func() Backend

// Snapshotter is implemented by backends that can hand back the last frame.
type Snapshotter interface {
	Snapshot() image.Image
}

// Statistics captures the counts generated during a frame.
type Statistics struct {
	DrawCalls  int
	QuadCount  int
	IndexCount int
}

// TotalVertexCount reports vertices run through the vertex stage this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * VertsPerQuad }
