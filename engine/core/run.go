package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Run wires the platform window + GPU and executes the main loop.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newGPU func(Window, Config) (GPU, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	gpu, err := newGPU(win, cfg)
	if err != nil {
		return fmt.Errorf("create gpu: %w", err)
	}

	w, h := win.FramebufferSize()
	gpu.Resize(w, h)

	eng := &Engine{Window: win, GPU: gpu, Config: cfg, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		switch e := ev.(type) {
		case EventCloseRequested:
			win.RequestClose()
		case EventResize:
			if e.W >= 1 && e.H >= 1 {
				gpu.Resize(e.W, e.H)
			}
		}
		app.OnEvent(eng, ev)
	})

	if err := app.OnStart(eng); err != nil {
		return err
	}
	defer app.OnShutdown(eng)

	// Fixed-timestep (60 Hz) with interpolation
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			app.OnUpdate(eng, tick.Seconds())
			accum -= tick
			steps++
		}
		if steps == maxStep {
			accum = 0
		}

		app.OnRender(eng, float64(accum)/float64(tick))
		win.SwapBuffers()
	}

	log.Println("Engine exit")
	return nil
}
