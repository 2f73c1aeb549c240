package assets

import (
	"fmt"
	"os"

	"github.com/hubastard/sprite2d/engine/gfx/renderer2d"
)

// LoadShader reads a shader source file as-is.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	if len(b) == 0 {
		return "", fmt.Errorf("load shader %q: empty file", path)
	}
	return string(b), nil
}

// LoadShaderPair reads a vertex and a fragment shader.
func LoadShaderPair(vertexPath, fragmentPath string) (renderer2d.ShaderSource, error) {
	vs, err := LoadShader(vertexPath)
	if err != nil {
		return renderer2d.ShaderSource{}, err
	}
	fs, err := LoadShader(fragmentPath)
	if err != nil {
		return renderer2d.ShaderSource{}, err
	}
	return renderer2d.ShaderSource{Vertex: vs, Fragment: fs}, nil
}
