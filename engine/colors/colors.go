package colors

import "image/color"

// Color is a straight-alpha RGBA colour with components in [0..1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.3, 0.3, 0.3, 1}
	Transparent = Color{}
)

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// FromNRGBA converts an 8-bit non-premultiplied colour.
func FromNRGBA(c color.NRGBA) Color {
	return Color{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// FromColor converts any image/color value, undoing alpha premultiplication.
func FromColor(c color.Color) Color {
	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}
