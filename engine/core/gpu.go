package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/colors"
)

// Program is a linked shader program. Zero means "no program"; draw
// commands use it to inherit whatever program is current.
type Program uint32

// VertexArray is a vertex-array object name.
type VertexArray uint32

// Buffer is a buffer object name.
type Buffer uint32

// Texture is a GPU texture object plus its pixel size. It is a handle:
// copies refer to the same texture and never own it.
type Texture struct {
	Handle        uint32
	Width, Height int
}

// TextureDesc describes an RGBA8 texture upload. Pixels are tightly packed,
// row-major, top row first.
type TextureDesc struct {
	Width, Height int
	Pixels        []byte
	Smooth        bool // linear filtering instead of nearest
}

// GPU is the graphics device the renderers drive. All calls must happen on
// the thread owning the context.
type GPU interface {
	// CompileProgram compiles and links a vertex/fragment pair. The error
	// carries the driver's info log.
	CompileProgram(vertexSrc, fragmentSrc string) (Program, error)
	DeleteProgram(p Program)
	UseProgram(p Program)
	UniformLocation(p Program, name string) int32
	AttribLocation(p Program, name string) int32
	SetUniformInt(loc int32, v int32)
	SetUniformMat4(loc int32, m mgl32.Mat4)

	CreateVertexArray() VertexArray
	DeleteVertexArray(va VertexArray)
	BindVertexArray(va VertexArray)
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	// UploadFloats replaces the whole content of an array buffer.
	UploadFloats(b Buffer, data []float32)
	// UploadIndices replaces the whole content of an element buffer.
	UploadIndices(b Buffer, data []uint32)
	// VertexAttrib points attribute loc at b with size floats per vertex.
	VertexAttrib(loc int32, b Buffer, size int32)
	BindIndexBuffer(b Buffer)

	CreateTexture(desc TextureDesc) (Texture, error)
	DeleteTexture(t Texture)
	// BindTexture binds a texture object on texture unit 0.
	BindTexture(handle uint32)

	// DrawElements draws count indices as triangles, starting at index start
	// of the bound index buffer.
	DrawElements(start, count int32)

	Resize(w, h int)
	Clear(c colors.Color)
	EnableAlphaBlend()
}
