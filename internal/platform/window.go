// Package platform owns the GLFW window and turns its callbacks into a queue
// of input events drained once per frame.
package platform

import (
	"fmt"

	"comanche/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes the window to create
type Config struct {
	Width        int
	Height       int
	Title        string
	SwapInterval int
}

// Window handles GLFW window creation and event queuing
type Window struct {
	handle *glfw.Window
	events []input.Event
}

// Init initializes GLFW. Call Terminate when done.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	return nil
}

// Terminate releases GLFW
func Terminate() {
	glfw.Terminate()
}

// NewWindow creates a window with a current OpenGL 4.1 core context
func NewWindow(cfg Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(cfg.SwapInterval)

	w := &Window{handle: handle}

	handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.events = append(w.events, input.ResizeEvent(width, height))
	})
	handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.events = append(w.events, input.KeyEvent(input.Key(key), input.KeyAction(action)))
	})
	handle.SetCloseCallback(func(_ *glfw.Window) {
		w.events = append(w.events, input.CloseEvent())
	})

	return w, nil
}

// Events returns and clears the events queued since the previous call
func (w *Window) Events() []input.Event {
	events := w.events
	w.events = nil
	return events
}

// PollEvents processes pending window system events, queuing them for Events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// SwapBuffers presents the back buffer. It may block until vsync.
func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.handle.SetShouldClose(v)
}

// SetSwapInterval changes how many vblanks SwapBuffers waits for. The
// window's context must be current.
func (w *Window) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// Destroy destroys the window and its context
func (w *Window) Destroy() {
	w.handle.Destroy()
}
