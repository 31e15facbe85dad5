package core

import (
	"errors"
	"testing"
)

type namedSurface struct{ name string }

func (s namedSurface) Name() string { return s.name }

func (s namedSurface) Size() (int, int) { return 1, 1 }

func TestSurfacesRegistry(t *testing.T) {
	reg := NewSurfaces()
	if err := reg.Register(namedSurface{"game"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(namedSurface{"game"}); err == nil {
		t.Error("duplicate name accepted")
	}

	sf, err := Resolve(reg, "game")
	if err != nil || sf.Name() != "game" {
		t.Fatalf("Resolve = %v, %v", sf, err)
	}

	reg.Unregister("game")
	if _, err := Resolve(reg, "game"); !errors.Is(err, ErrSurfaceNotFound) {
		t.Errorf("Resolve after Unregister = %v, want ErrSurfaceNotFound", err)
	}
}

func TestShaderCompileErrorIs(t *testing.T) {
	var err error = &ShaderCompileError{Stage: "fragment", Log: "0:3: syntax error"}
	wrapped := errors.Join(errors.New("init gl"), err)
	if !errors.Is(wrapped, ErrShaderCompile) {
		t.Error("ShaderCompileError does not match ErrShaderCompile")
	}
	var sce *ShaderCompileError
	if !errors.As(wrapped, &sce) || sce.Stage != "fragment" {
		t.Errorf("errors.As = %+v", sce)
	}
	if errors.Is(err, ErrContextUnavailable) {
		t.Error("ShaderCompileError matched ErrContextUnavailable")
	}
}

func TestConfigClearDefault(t *testing.T) {
	if (Config{}).Clear() != DefaultClearColor {
		t.Error("zero ClearColor should fall back to default")
	}
	c := Config{ClearColor: [4]float32{1, 0, 0, 1}}
	if c.Clear() != c.ClearColor {
		t.Error("explicit ClearColor ignored")
	}
}
