package core

import "github.com/hubastard/sprig/engine/colors"

// Config for a window and engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color // RGBA
	// ForceSoftware skips the accelerated backend entirely.
	ForceSoftware bool
}

// DefaultClearColor is the background behind every frame unless overridden.
var DefaultClearColor = colors.Color{0.2, 0.3, 0.3, 1}

func (c Config) Clear() colors.Color {
	if c.ClearColor == (colors.Color{}) {
		return DefaultClearColor
	}
	return c.ClearColor
}
