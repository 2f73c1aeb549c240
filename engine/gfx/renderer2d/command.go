package renderer2d

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/core"
)

// TextureFlip mirrors a sprite's texture region. Flags combine.
type TextureFlip uint8

const (
	FlipNone TextureFlip = 0
	FlipX    TextureFlip = 1 << 0
	FlipY    TextureFlip = 1 << 1
)

func (f TextureFlip) Has(axis TextureFlip) bool { return f&axis != 0 }

// DrawCommand is one queued draw request. It is a value; the queue owns it
// until the next flush.
type DrawCommand struct {
	Program core.Program // 0 keeps the current program
	Texture core.Texture
	Color   colors.Color

	Pos   mgl32.Vec2
	Rot   float32 // degrees
	Layer int32

	Cmd Command
}

// Command is the payload of a DrawCommand. The set of variants is closed;
// the assembler switches over it.
type Command interface{ isCommand() }

// DrawSprite draws a textured quad of Size world units. UV.Min and UV.Max
// are the two pixel corners of the texture region, taken as given.
type DrawSprite struct {
	Flip  TextureFlip
	UV    image.Rectangle
	Pivot mgl32.Vec2
	Size  mgl32.Vec2
}

func (DrawSprite) isCommand() {}

// Transform places a sprite in the world.
type Transform struct {
	Pos   mgl32.Vec2
	Rot   float32 // degrees
	Layer int32
}

func TransformAt(x, y float32) Transform {
	return Transform{Pos: mgl32.Vec2{x, y}}
}

// Sprite describes what to draw: a region of a texture, its pivot and its
// size in world units.
type Sprite struct {
	Texture core.Texture
	UV      image.Rectangle
	Pivot   mgl32.Vec2
	Size    mgl32.Vec2
	Flip    TextureFlip
}

// SpriteFromPixels builds a sprite covering the w×h pixel region at (x,y),
// drawn at its pixel size.
func SpriteFromPixels(tex core.Texture, x, y, w, h int) Sprite {
	return Sprite{
		Texture: tex,
		UV:      image.Rect(x, y, x+w, y+h),
		Size:    mgl32.Vec2{float32(w), float32(h)},
	}
}

// SpriteFromGrid builds a sprite from tile grid coordinates (cx,cy) of cell
// size (cw,ch).
func SpriteFromGrid(tex core.Texture, cx, cy, cw, ch int) Sprite {
	return SpriteFromPixels(tex, cx*cw, cy*ch, cw, ch)
}

// Centered returns a copy pivoting around the middle of the sprite.
func (s Sprite) Centered() Sprite {
	s.Pivot = s.Size.Mul(0.5)
	return s
}
