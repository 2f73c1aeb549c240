package core

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Config for the engine run.
type Config struct {
	Title      string       `toml:"title"`
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	VSync      bool         `toml:"vsync"`
	ClearColor colors.Color `toml:"clear_color"`

	Shaders    ShaderPaths `toml:"shaders"`
	Projection Ortho       `toml:"projection"`
}

// ShaderPaths locates the default program's sources on disk.
type ShaderPaths struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "sprite2d",
		Width:      1280,
		Height:     960,
		VSync:      true,
		ClearColor: colors.Gray,
		Shaders: ShaderPaths{
			Vertex:   "assets/shaders/default.vert",
			Fragment: "assets/shaders/default.frag",
		},
		Projection: DefaultOrtho(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig. A missing file is
// an error; callers that treat the file as optional check
// errors.Is(err, fs.ErrNotExist).
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data on top of DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("both vertex and fragment shader paths are required")
	}
	p := c.Projection
	if p.Left == p.Right || p.Top == p.Bottom || p.Near == p.Far {
		return fmt.Errorf("degenerate projection bounds %+v", p)
	}
	return nil
}
