package renderer2d

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/core"
)

// fakeGPU records every call so tests can assert on state changes without a
// GL context. Uniform and attribute locations are assigned per name.
type fakeGPU struct {
	compileErr error
	nextID     uint32

	calls     []string
	programs  map[core.Program]bool
	buffers   map[core.Buffer]bool
	arrays    map[core.VertexArray]bool
	uploads   map[core.Buffer][]float32
	indices   map[core.Buffer][]uint32
	uniforms  map[string]mgl32.Mat4 // last matrix per uniform name
	locNames  map[int32]string
	locs      map[string]int32
	models    []mgl32.Mat4
	draws     [][2]int32
	textures  []uint32
	useCalls  []core.Program
	clears    []colors.Color
	blendOn   bool
	deletions int
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{
		programs: map[core.Program]bool{},
		buffers:  map[core.Buffer]bool{},
		arrays:   map[core.VertexArray]bool{},
		uploads:  map[core.Buffer][]float32{},
		indices:  map[core.Buffer][]uint32{},
		uniforms: map[string]mgl32.Mat4{},
		locNames: map[int32]string{},
		locs:     map[string]int32{},
	}
}

var _ core.GPU = (*fakeGPU)(nil)

func (g *fakeGPU) id() uint32 {
	g.nextID++
	return g.nextID
}

func (g *fakeGPU) count(prefix string) int {
	n := 0
	for _, c := range g.calls {
		if c == prefix {
			n++
		}
	}
	return n
}

func (g *fakeGPU) CompileProgram(vs, fs string) (core.Program, error) {
	g.calls = append(g.calls, "CompileProgram")
	if g.compileErr != nil {
		return 0, g.compileErr
	}
	p := core.Program(g.id())
	g.programs[p] = true
	return p, nil
}

func (g *fakeGPU) DeleteProgram(p core.Program) {
	g.calls = append(g.calls, "DeleteProgram")
	delete(g.programs, p)
	g.deletions++
}

func (g *fakeGPU) UseProgram(p core.Program) {
	g.calls = append(g.calls, "UseProgram")
	g.useCalls = append(g.useCalls, p)
}

func (g *fakeGPU) location(p core.Program, name string) int32 {
	key := fmt.Sprintf("%d/%s", p, name)
	if loc, ok := g.locs[key]; ok {
		return loc
	}
	loc := int32(len(g.locs))
	g.locs[key] = loc
	g.locNames[loc] = name
	return loc
}

func (g *fakeGPU) UniformLocation(p core.Program, name string) int32 { return g.location(p, name) }
func (g *fakeGPU) AttribLocation(p core.Program, name string) int32  { return g.location(p, name) }

func (g *fakeGPU) SetUniformInt(loc int32, v int32) {
	g.calls = append(g.calls, "SetUniformInt")
}

func (g *fakeGPU) SetUniformMat4(loc int32, m mgl32.Mat4) {
	name := g.locNames[loc]
	g.uniforms[name] = m
	if name == uniformModel {
		g.models = append(g.models, m)
	}
}

func (g *fakeGPU) CreateVertexArray() core.VertexArray {
	va := core.VertexArray(g.id())
	g.arrays[va] = true
	return va
}

func (g *fakeGPU) DeleteVertexArray(va core.VertexArray) {
	if !g.arrays[va] {
		panic("double delete of vertex array")
	}
	delete(g.arrays, va)
	g.deletions++
}

func (g *fakeGPU) BindVertexArray(core.VertexArray) {}

func (g *fakeGPU) CreateBuffer() core.Buffer {
	b := core.Buffer(g.id())
	g.buffers[b] = true
	return b
}

func (g *fakeGPU) DeleteBuffer(b core.Buffer) {
	if !g.buffers[b] {
		panic("double delete of buffer")
	}
	delete(g.buffers, b)
	g.deletions++
}

func (g *fakeGPU) UploadFloats(b core.Buffer, data []float32) {
	g.calls = append(g.calls, "UploadFloats")
	g.uploads[b] = append([]float32(nil), data...)
}

func (g *fakeGPU) UploadIndices(b core.Buffer, data []uint32) {
	g.calls = append(g.calls, "UploadIndices")
	g.indices[b] = append([]uint32(nil), data...)
}

func (g *fakeGPU) VertexAttrib(loc int32, b core.Buffer, size int32) {}
func (g *fakeGPU) BindIndexBuffer(core.Buffer)                       {}

func (g *fakeGPU) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return core.Texture{}, errors.New("bad size")
	}
	return core.Texture{Handle: g.id(), Width: desc.Width, Height: desc.Height}, nil
}

func (g *fakeGPU) DeleteTexture(core.Texture) {}

func (g *fakeGPU) BindTexture(handle uint32) {
	g.calls = append(g.calls, "BindTexture")
	g.textures = append(g.textures, handle)
}

func (g *fakeGPU) DrawElements(start, count int32) {
	g.calls = append(g.calls, "DrawElements")
	g.draws = append(g.draws, [2]int32{start, count})
}

func (g *fakeGPU) Resize(w, h int) {}

func (g *fakeGPU) Clear(c colors.Color) { g.clears = append(g.clears, c) }

func (g *fakeGPU) EnableAlphaBlend() { g.blendOn = true }
