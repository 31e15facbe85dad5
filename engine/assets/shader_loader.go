package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names LoadShaderPair looks for.
const (
	VertexShaderFile   = "sprite.vert"
	FragmentShaderFile = "sprite.frag"
)

// LoadShader reads a GLSL file from dir.
func LoadShader(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load shader %q: empty file", path)
	}
	return string(b), nil
}

// LoadShaderPair reads sprite.vert and sprite.frag from dir. The sources
// must declare the uniforms the sprite pipeline uploads.
func LoadShaderPair(dir string) (vertex, fragment string, err error) {
	vertex, err = LoadShader(dir, VertexShaderFile)
	if err != nil {
		return "", "", err
	}
	fragment, err = LoadShader(dir, FragmentShaderFile)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}
