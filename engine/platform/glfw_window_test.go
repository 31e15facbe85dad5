package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/sprig/engine/core"
)

// The software backend only presents to surfaces it can assert to
// core.PixelSurface; a GLFW window must qualify alongside GLSurface.
func TestGLFWWindowSurfaceKinds(t *testing.T) {
	var sf core.Surface = (*GLFWWindow)(nil)
	if _, ok := sf.(core.PixelSurface); !ok {
		t.Error("GLFWWindow is not a PixelSurface")
	}
	if _, ok := sf.(core.GLSurface); !ok {
		t.Error("GLFWWindow is not a GLSurface")
	}
	if _, ok := sf.(core.Pacer); !ok {
		t.Error("GLFWWindow is not a Pacer")
	}
}

func TestTranslateInput(t *testing.T) {
	keys := []struct {
		in   glfw.Key
		want core.Key
	}{
		{glfw.KeyW, core.KeyW},
		{glfw.KeySpace, core.KeySpace},
		{glfw.KeyUp, core.KeyArrowUp},
		{glfw.KeyF12, core.KeyUnknown},
	}
	for _, tt := range keys {
		if got := translateKey(tt.in); got != tt.want {
			t.Errorf("translateKey(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if b, ok := translateButton(glfw.MouseButtonRight); !ok || b != core.MouseRight {
		t.Errorf("right button = %v, %v", b, ok)
	}
	if _, ok := translateButton(glfw.MouseButton4); ok {
		t.Error("button 4 translated")
	}
	if m := translateMods(glfw.ModShift | glfw.ModControl); m != core.ModShift|core.ModCtrl {
		t.Errorf("mods = %v", m)
	}
}
