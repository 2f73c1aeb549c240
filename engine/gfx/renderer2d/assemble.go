package renderer2d

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/core"
)

const (
	posSize      = 3 // x, y, z
	colorSize    = 4 // r, g, b, a
	uvSize       = 2 // u, v
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// quadIndices are two triangles over a quad's corners, listed bottom-left,
// bottom-right, top-right, top-left in local space.
var quadIndices = [indsPerQuad]uint32{0, 1, 2, 2, 3, 0}

// drawCall is one indexed draw over a quad appended by the assembler.
type drawCall struct {
	Start       uint32 // first index
	Count       uint32
	Translation mgl32.Vec3
	Pivot       mgl32.Vec2
	Rot         float32 // degrees
	Texture     uint32
}

// Model composes translate(-pivot), then rotation about +Z, then the
// call's translation, so rotation and layer depth act around the pivot.
func (c drawCall) Model() mgl32.Mat4 {
	return mgl32.Translate3D(c.Translation.X(), c.Translation.Y(), c.Translation.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.Rot))).
		Mul4(mgl32.Translate3D(-c.Pivot.X(), -c.Pivot.Y(), 0))
}

// layerDepth is the fixed-point depth convention: one decimal digit per
// layer, offset by 0.1 so layer 0 does not sit on z=0.
func layerDepth(layer int32) float32 {
	return float32(layer)/10 + 0.1
}

// geometry holds the four parallel arrays uploaded each flush. A quad is
// always appended to all four before its drawCall exists.
type geometry struct {
	positions []float32
	colors    []float32
	uvs       []float32
	indices   []uint32
}

func (g *geometry) vertexCount() int { return len(g.positions) / posSize }

func (g *geometry) empty() bool {
	return len(g.positions) == 0 || len(g.colors) == 0 || len(g.uvs) == 0 || len(g.indices) == 0
}

func (g *geometry) reset() {
	g.positions = g.positions[:0]
	g.colors = g.colors[:0]
	g.uvs = g.uvs[:0]
	g.indices = g.indices[:0]
}

// appendCommand expands cmd into geometry and returns the draw call that
// renders it.
func (g *geometry) appendCommand(cmd DrawCommand) drawCall {
	switch c := cmd.Cmd.(type) {
	case DrawSprite:
		return g.appendSprite(cmd, c)
	default:
		panic(fmt.Sprintf("renderer2d: unknown draw command %T", cmd.Cmd))
	}
}

func (g *geometry) appendSprite(cmd DrawCommand, s DrawSprite) drawCall {
	us, vs := uvCorners(s.UV, cmd.Texture, s.Flip)
	w, h := s.Size.X(), s.Size.Y()

	start := uint32(len(g.indices))
	base := uint32(g.vertexCount())
	for _, i := range quadIndices {
		g.indices = append(g.indices, base+i)
	}

	g.positions = append(g.positions,
		0, 0, 0,
		w, 0, 0,
		w, h, 0,
		0, h, 0,
	)
	for i := 0; i < vertsPerQuad; i++ {
		g.colors = appendColor(g.colors, cmd.Color)
		g.uvs = append(g.uvs, us[i], vs[i])
	}

	return drawCall{
		Start:       start,
		Count:       indsPerQuad,
		Translation: mgl32.Vec3{cmd.Pos.X(), cmd.Pos.Y(), layerDepth(cmd.Layer)},
		Pivot:       s.Pivot,
		Rot:         cmd.Rot,
		Texture:     cmd.Texture.Handle,
	}
}

func appendColor(dst []float32, c colors.Color) []float32 {
	return append(dst, c[0], c[1], c[2], c[3])
}

// uvCorners normalises the pixel-space region against the texture size and
// returns per-vertex U and V in quad vertex order. A zero texture dimension
// scales by 1 instead of dividing by zero.
func uvCorners(r image.Rectangle, tex core.Texture, flip TextureFlip) (us, vs [vertsPerQuad]float32) {
	uScale, vScale := float32(1), float32(1)
	if tex.Width != 0 {
		uScale = float32(tex.Width)
	}
	if tex.Height != 0 {
		vScale = float32(tex.Height)
	}
	u0, u1 := float32(r.Min.X)/uScale, float32(r.Max.X)/uScale
	v0, v1 := float32(r.Min.Y)/vScale, float32(r.Max.Y)/vScale

	us = [vertsPerQuad]float32{u0, u1, u1, u0}
	vs = [vertsPerQuad]float32{v0, v0, v1, v1}
	return applyFlip(us, vs, flip)
}

// applyFlip swaps U across the vertical edges for FlipX and V across the
// horizontal edges for FlipY.
func applyFlip(us, vs [vertsPerQuad]float32, flip TextureFlip) ([vertsPerQuad]float32, [vertsPerQuad]float32) {
	if flip.Has(FlipX) {
		us[0], us[1] = us[1], us[0]
		us[2], us[3] = us[3], us[2]
	}
	if flip.Has(FlipY) {
		vs[0], vs[2] = vs[2], vs[0]
		vs[1], vs[3] = vs[3], vs[1]
	}
	return us, vs
}
