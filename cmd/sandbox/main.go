package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/sprite2d/engine/assets"
	"github.com/hubastard/sprite2d/engine/core"
	glbackend "github.com/hubastard/sprite2d/engine/gfx/gl"
	"github.com/hubastard/sprite2d/engine/gfx/renderer2d"
	"github.com/hubastard/sprite2d/engine/platform"
	"github.com/hubastard/sprite2d/engine/scene"
)

const configPath = "assets/sandbox.toml"

type App struct {
	r2d      *renderer2d.Renderer
	textures *assets.Textures
	world    *scene.Container
	spinner  scene.ID
	runner   scene.ID

	lastTitle time.Time
	frames    int
}

func (a *App) OnStart(e *core.Engine) error {
	src, err := assets.LoadShaderPair(e.Config.Shaders.Vertex, e.Config.Shaders.Fragment)
	if err != nil {
		return err
	}
	a.r2d, err = renderer2d.New(e.GPU, renderer2d.Config{
		Shader:     src,
		Projection: e.Config.Projection,
		ClearColor: e.Config.ClearColor,
	})
	if err != nil {
		return err
	}

	a.textures = assets.NewTextures(e.GPU)
	tex, err := a.textures.Get("assets/textures/player.png")
	if err != nil {
		log.Printf("sandbox: %v, using a generated texture", err)
		if tex, err = a.textures.FromImage("checker", checker(64, 64, 8)); err != nil {
			return err
		}
	}

	a.world = scene.NewContainer()
	a.spinner = a.world.Create(
		renderer2d.Transform{Pos: mgl32.Vec2{200, 200}, Layer: 1},
		renderer2d.SpriteFromGrid(tex, 0, 0, 32, 32).Centered(),
	)
	a.runner = a.world.Create(
		renderer2d.TransformAt(100, 400),
		renderer2d.SpriteFromPixels(tex, 0, 0, 64, 64),
	)
	return nil
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if s := a.world.Get(a.spinner); s != nil {
		s.Transform.Rot += float32(90 * dt)
	}
	if r := a.world.Get(a.runner); r != nil {
		r.Transform.Pos[0] += float32(120 * dt)
		if r.Transform.Pos[0] > e.Config.Projection.Right {
			r.Transform.Pos[0] = -64
		}
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	a.r2d.PrepareRender()
	a.world.Render(a.r2d)
	a.r2d.RenderQueuedDraws()

	a.frames++
	if now := time.Now(); now.Sub(a.lastTitle) >= time.Second {
		s := a.r2d.Stats()
		e.Window.SetTitle(fmt.Sprintf("%s | %d fps | %d draws, %d quads",
			e.Config.Title, a.frames, s.DrawCalls, s.QuadCount))
		a.frames = 0
		a.lastTitle = now
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return
	}
	switch k.Key {
	case core.KeyEscape:
		e.Window.RequestClose()
	case core.KeySpace:
		if r := a.world.Get(a.runner); r != nil {
			r.Sprite.Flip ^= renderer2d.FlipX
		}
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if a.r2d != nil {
		a.r2d.Close()
	}
	if a.textures != nil {
		a.textures.Release()
	}
}

func checker(w, h, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.NRGBA{R: 200, G: 60, B: 90, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func main() {
	cfg, err := core.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = core.DefaultConfig()
	} else if err != nil {
		log.Fatal(err)
	}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		win = w
		return w, err
	}
	newGPU := func(w core.Window, cfg core.Config) (core.GPU, error) {
		return glbackend.NewGPU(w, cfg)
	}

	err = core.Run(&App{}, cfg, newWindow, newGPU)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal(err)
	}
}
