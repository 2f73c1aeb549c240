package core

import "github.com/go-gl/mathgl/mgl32"

// Ortho holds orthographic projection bounds in world units.
type Ortho struct {
	Left   float32 `toml:"left"`
	Right  float32 `toml:"right"`
	Bottom float32 `toml:"bottom"`
	Top    float32 `toml:"top"`
	Near   float32 `toml:"near"`
	Far    float32 `toml:"far"`
}

// DefaultOrtho is a 1280x960 y-down screen space. The depth range is
// symmetric so the positive depths produced by sprite layers stay inside
// the clip volume.
func DefaultOrtho() Ortho {
	return Ortho{Left: 0, Right: 1280, Bottom: 960, Top: 0, Near: -1000, Far: 1000}
}

func (o Ortho) IsZero() bool { return o == Ortho{} }

func (o Ortho) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
}
