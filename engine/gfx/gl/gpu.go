package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/core"
)

// GPU implements core.GPU on an OpenGL 3.3 core context. The context must
// be current (platform.NewGLFWWindow does that) before NewGPU is called.
type GPU struct{}

var _ core.GPU = (*GPU)(nil)

func NewGPU(win core.Window, _ core.Config) (*GPU, error) {
	if win == nil {
		return nil, fmt.Errorf("glbackend: nil window")
	}
	// Texture uploads are tightly packed RGBA rows.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return &GPU{}, nil
}

func (g *GPU) UseProgram(p core.Program) { gl.UseProgram(uint32(p)) }

func (g *GPU) UniformLocation(p core.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (g *GPU) AttribLocation(p core.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (g *GPU) SetUniformInt(loc int32, v int32) { gl.Uniform1i(loc, v) }

func (g *GPU) SetUniformMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// --- vertex arrays and buffers ---

func (g *GPU) CreateVertexArray() core.VertexArray {
	var va uint32
	gl.GenVertexArrays(1, &va)
	return core.VertexArray(va)
}

func (g *GPU) DeleteVertexArray(va core.VertexArray) {
	id := uint32(va)
	gl.DeleteVertexArrays(1, &id)
}

func (g *GPU) BindVertexArray(va core.VertexArray) { gl.BindVertexArray(uint32(va)) }

func (g *GPU) CreateBuffer() core.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return core.Buffer(b)
}

func (g *GPU) DeleteBuffer(b core.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (g *GPU) UploadFloats(b core.Buffer, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// UploadIndices expects the owning vertex array to be bound, since the
// element binding is vertex-array state.
func (g *GPU) UploadIndices(b core.Buffer, data []uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(b))
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (g *GPU) VertexAttrib(loc int32, b core.Buffer, size int32) {
	if loc < 0 {
		// attribute optimised out or misnamed
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, 0, 0)
}

func (g *GPU) BindIndexBuffer(b core.Buffer) { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(b)) }

// --- textures ---

func (g *GPU) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return core.Texture{}, fmt.Errorf("texture size %dx%d", desc.Width, desc.Height)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return core.Texture{}, fmt.Errorf("texture pixels: got %d bytes, want %d", len(desc.Pixels), want)
	}
	filter := int32(gl.NEAREST)
	if desc.Smooth {
		filter = gl.LINEAR
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))

	return core.Texture{Handle: id, Width: desc.Width, Height: desc.Height}, nil
}

func (g *GPU) DeleteTexture(t core.Texture) {
	if t.Handle != 0 {
		gl.DeleteTextures(1, &t.Handle)
	}
}

func (g *GPU) BindTexture(handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// --- drawing ---

func (g *GPU) DrawElements(start, count int32) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_INT, uintptr(start)*4)
}

func (g *GPU) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (g *GPU) Clear(c colors.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (g *GPU) EnableAlphaBlend() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Info reports the driver strings, for logging.
func (g *GPU) Info() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}
