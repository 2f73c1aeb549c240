package renderer2d

import "github.com/hubastard/sprite2d/engine/core"

// attribLocations are the vertex inputs of the current program.
type attribLocations struct {
	position, color, uv int32
}

// gpuBuffers owns the vertex array and the four buffer objects for the
// lifetime of a Renderer.
type gpuBuffers struct {
	gpu      core.GPU
	vao      core.VertexArray
	position core.Buffer
	color    core.Buffer
	uv       core.Buffer
	index    core.Buffer
	released bool
}

func newGPUBuffers(gpu core.GPU) *gpuBuffers {
	return &gpuBuffers{
		gpu:      gpu,
		vao:      gpu.CreateVertexArray(),
		position: gpu.CreateBuffer(),
		color:    gpu.CreateBuffer(),
		uv:       gpu.CreateBuffer(),
		index:    gpu.CreateBuffer(),
	}
}

// bind makes the vertex array current and points its attributes at the
// buffers. Called whenever the program changes, since locations are
// per-program.
func (b *gpuBuffers) bind(loc attribLocations) {
	b.gpu.BindVertexArray(b.vao)
	b.gpu.VertexAttrib(loc.position, b.position, posSize)
	b.gpu.VertexAttrib(loc.color, b.color, colorSize)
	b.gpu.VertexAttrib(loc.uv, b.uv, uvSize)
	b.gpu.BindIndexBuffer(b.index)
}

// upload replaces the content of all four buffers. Uploading empty geometry
// means render was reached with nothing assembled, which is a bug in the
// caller.
func (b *gpuBuffers) upload(g *geometry) {
	if b.released {
		panic("renderer2d: upload after release")
	}
	if g.empty() {
		panic("renderer2d: refusing to upload empty geometry")
	}
	b.gpu.BindVertexArray(b.vao)
	b.gpu.UploadFloats(b.position, g.positions)
	b.gpu.UploadFloats(b.color, g.colors)
	b.gpu.UploadFloats(b.uv, g.uvs)
	b.gpu.UploadIndices(b.index, g.indices)
}

// release deletes the GPU objects. Later calls do nothing.
func (b *gpuBuffers) release() {
	if b.released {
		return
	}
	b.released = true
	b.gpu.DeleteVertexArray(b.vao)
	for _, buf := range []core.Buffer{b.position, b.color, b.uv, b.index} {
		b.gpu.DeleteBuffer(buf)
	}
}
