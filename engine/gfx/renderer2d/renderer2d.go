package renderer2d

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/colors"
	"github.com/hubastard/sprite2d/engine/core"
)

// Names every sprite program has to declare.
const (
	uniformTexture = "tex"
	uniformView    = "view_mat"
	uniformProj    = "proj_mat"
	uniformModel   = "model_mat"

	attribPosition = "position"
	attribColor    = "color"
	attribUV       = "uv"
)

// ShaderSource is a vertex/fragment pair in the device's shading language.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Config for New. Either Program (already linked, owned by the caller) or
// Shader must be set.
type Config struct {
	Shader     ShaderSource
	Program    core.Program
	Projection core.Ortho   // zero value means core.DefaultOrtho
	ClearColor colors.Color // zero value means colors.Gray
}

// Statistics captures the counts generated since the last PrepareRender.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	Uploads      int
	ProgramBinds int
	TextureBinds int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer turns queued draw commands into buffer uploads and indexed draws.
// It must only be used from the thread owning the GPU context.
type Renderer struct {
	gpu            core.GPU
	defaultProgram core.Program
	ownsProgram    bool

	// state tracker
	program  core.Program
	texture  uint32
	modelLoc int32

	view       mgl32.Mat4
	proj       mgl32.Mat4
	clearColor colors.Color

	buffers *gpuBuffers
	geom    geometry
	calls   []drawCall

	queue []DrawCommand
	spare []DrawCommand

	stats  Statistics
	closed bool
}

// New compiles the default program (unless one is injected), allocates the
// vertex array and buffers, and sets up a fixed orthographic projection.
// A shader error is returned with the driver's log; there is no fallback.
func New(gpu core.GPU, cfg Config) (*Renderer, error) {
	if gpu == nil {
		return nil, errors.New("renderer2d: nil gpu")
	}

	program, owns := cfg.Program, false
	if program == 0 {
		if cfg.Shader.Vertex == "" || cfg.Shader.Fragment == "" {
			return nil, errors.New("renderer2d: no program and no shader source")
		}
		p, err := gpu.CompileProgram(cfg.Shader.Vertex, cfg.Shader.Fragment)
		if err != nil {
			return nil, fmt.Errorf("renderer2d: default program: %w", err)
		}
		program, owns = p, true
	}

	proj := cfg.Projection
	if proj.IsZero() {
		proj = core.DefaultOrtho()
	}
	clearColor := cfg.ClearColor
	if clearColor == (colors.Color{}) {
		clearColor = colors.Gray
	}

	rd := &Renderer{
		gpu:            gpu,
		defaultProgram: program,
		ownsProgram:    owns,
		program:        program,
		modelLoc:       -1,
		view:           mgl32.Ident4(),
		proj:           proj.Matrix(),
		clearColor:     clearColor,
		buffers:        newGPUBuffers(gpu),
	}
	slog.Info("renderer2d: ready", "program", program, "compiled", owns, "projection", proj)
	return rd, nil
}

// DefaultProgram is the program the renderer was created with.
func (rd *Renderer) DefaultProgram() core.Program { return rd.defaultProgram }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer) Stats() Statistics { return rd.stats }

// Pending reports how many commands wait for the next flush.
func (rd *Renderer) Pending() int { return len(rd.queue) }

// Queue appends cmd. Submission order is draw order within a frame.
func (rd *Renderer) Queue(cmd DrawCommand) {
	rd.queue = append(rd.queue, cmd)
}

// QueueDrawSprite queues s at t, tinted by c, with the current program.
func (rd *Renderer) QueueDrawSprite(t Transform, s Sprite, c colors.Color) {
	rd.Queue(DrawCommand{
		Texture: s.Texture,
		Color:   c,
		Pos:     t.Pos,
		Rot:     t.Rot,
		Layer:   t.Layer,
		Cmd: DrawSprite{
			Flip:  s.Flip,
			UV:    s.UV,
			Pivot: s.Pivot,
			Size:  s.Size,
		},
	})
}

// PrepareRender clears the colour buffer and enables alpha blending. Call
// once per frame before RenderQueuedDraws.
func (rd *Renderer) PrepareRender() {
	rd.stats = Statistics{}
	rd.gpu.Clear(rd.clearColor)
	rd.gpu.EnableAlphaBlend()
}

// RenderQueuedDraws flushes the queue: every command is assembled into the
// frame's geometry, uploaded once per program run and drawn call by call.
// With nothing queued it does nothing.
func (rd *Renderer) RenderQueuedDraws() {
	if len(rd.queue) == 0 {
		return
	}
	if rd.closed {
		panic("renderer2d: render after Close")
	}

	cmds := rd.queue
	rd.queue = rd.spare[:0]

	// Texture uploads elsewhere rebind unit 0, so the binding is unknown.
	rd.texture = 0
	rd.useProgram(rd.program)

	for _, cmd := range cmds {
		if cmd.Program != 0 && cmd.Program != rd.program {
			// calls assembled so far belong to the outgoing program
			rd.dispatch()
			rd.useProgram(cmd.Program)
		}
		rd.calls = append(rd.calls, rd.geom.appendCommand(cmd))
		rd.stats.QuadCount++
	}
	rd.dispatch()

	rd.spare = cmds[:0]
}

func (rd *Renderer) useProgram(p core.Program) {
	rd.program = p
	rd.gpu.UseProgram(p)
	rd.gpu.SetUniformInt(rd.gpu.UniformLocation(p, uniformTexture), 0)
	rd.gpu.SetUniformMat4(rd.gpu.UniformLocation(p, uniformView), rd.view)
	rd.gpu.SetUniformMat4(rd.gpu.UniformLocation(p, uniformProj), rd.proj)
	rd.modelLoc = rd.gpu.UniformLocation(p, uniformModel)

	rd.buffers.bind(attribLocations{
		position: rd.gpu.AttribLocation(p, attribPosition),
		color:    rd.gpu.AttribLocation(p, attribColor),
		uv:       rd.gpu.AttribLocation(p, attribUV),
	})
	rd.stats.ProgramBinds++
	slog.Debug("renderer2d: use program", "program", p)
}

func (rd *Renderer) bindTexture(handle uint32) {
	rd.texture = handle
	rd.gpu.BindTexture(handle)
	rd.stats.TextureBinds++
}

// dispatch uploads the assembled geometry and draws every pending call.
func (rd *Renderer) dispatch() {
	if len(rd.calls) == 0 {
		return
	}
	rd.buffers.upload(&rd.geom)
	rd.stats.Uploads++

	for _, call := range rd.calls {
		if call.Texture != rd.texture {
			rd.bindTexture(call.Texture)
		}
		rd.gpu.SetUniformMat4(rd.modelLoc, call.Model())
		rd.gpu.DrawElements(int32(call.Start), int32(call.Count))
		rd.stats.DrawCalls++
	}

	rd.geom.reset()
	rd.calls = rd.calls[:0]
}

// Close releases the vertex array, the buffers and, when the renderer
// compiled it, the default program. It is safe to call more than once.
func (rd *Renderer) Close() {
	if rd.closed {
		return
	}
	rd.closed = true
	rd.buffers.release()
	if rd.ownsProgram {
		rd.gpu.DeleteProgram(rd.defaultProgram)
	}
	rd.queue, rd.spare = nil, nil
	slog.Info("renderer2d: released", "program", rd.defaultProgram)
}
