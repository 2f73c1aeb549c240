package core

import "time"

// App defines the game/application hooks.
type App interface {
	OnStart(e *Engine) error           // called once after window/GPU init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz)
	OnRender(e *Engine, alpha float64) // queue and submit draws for one frame
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before the GPU goes away
}

// Engine exposes core services to the App.
type Engine struct {
	Window Window
	GPU    GPU
	Config Config
	start  time.Time
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
}

func (EventKey) isEvent() {}

// Key enum (subset the sandbox reacts to).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
)
