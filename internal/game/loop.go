package game

import (
	"log"
	"time"

	"comanche/internal/camera"
	"comanche/internal/config"
	"comanche/internal/graphics"
	"comanche/internal/input"
	"comanche/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is the event source and presentation target driven by the loop
type Window interface {
	// Events returns the events queued since the previous call, oldest first.
	Events() []input.Event
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(bool)
	SetSwapInterval(int)
}

// State is the loop's run state
type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Terminating {
		return "terminating"
	}
	return "running"
}

// Loop drives input, camera update, draw and presentation once per iteration
type Loop struct {
	window Window
	ctx    graphics.Context
	camera *camera.Camera
	shader *graphics.Shader
	mesh   *graphics.Mesh

	projection mgl32.Mat4
	model      mgl32.Mat4

	state   State
	profile *profiling.Frame
	limiter *FPSLimiter
	logger  *log.Logger
	now     func() time.Time

	// FPS counter
	frames           int
	lastFPSCheckTime time.Time
}

// NewLoop wires the loop to resources that were created once up front
func NewLoop(w Window, ctx graphics.Context, cam *camera.Camera, shader *graphics.Shader, mesh *graphics.Mesh) *Loop {
	return &Loop{
		window:     w,
		ctx:        ctx,
		camera:     cam,
		shader:     shader,
		mesh:       mesh,
		projection: graphics.DefaultProjection().Matrix(),
		model:      mgl32.Ident4(),
		state:      Running,
		profile:    profiling.NewFrame(),
		limiter:    NewFPSLimiter(),
		logger:     log.Default(),
		now:        time.Now,

		lastFPSCheckTime: time.Now(),
	}
}

// SetLogger replaces the logger used for FPS and slow frame reports
func (l *Loop) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// State returns the current run state
func (l *Loop) State() State {
	return l.state
}

// Camera returns the camera driven by the loop
func (l *Loop) Camera() *camera.Camera {
	return l.camera
}

// Run iterates until the window should close or a quit is requested
func (l *Loop) Run() {
	l.lastFPSCheckTime = l.now()
	for !l.window.ShouldClose() {
		if !l.Tick() {
			return
		}
	}
}

// Tick runs one iteration. It returns false when the iteration observed a
// termination request, in which case nothing was drawn or presented.
func (l *Loop) Tick() bool {
	if l.state == Terminating {
		return false
	}

	l.profile.Reset()
	start := l.now()

	func() { defer l.profile.Track("loop.Events")(); l.processEvents() }()
	if l.state == Terminating {
		return false
	}

	func() { defer l.profile.Track("camera.Advance")(); l.camera.Advance() }()
	func() { defer l.profile.Track("loop.Render")(); l.render() }()

	func() { defer l.profile.Track("window.SwapBuffers")(); l.window.SwapBuffers() }()
	func() { defer l.profile.Track("window.PollEvents")(); l.window.PollEvents() }()

	l.report(start)
	l.limiter.Wait()
	return true
}

// processEvents drains the queue so every event of this iteration is
// applied before the transform is computed.
func (l *Loop) processEvents() {
	for _, ev := range l.window.Events() {
		switch ev.Kind {
		case input.EventResize:
			l.ctx.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
		case input.EventKey:
			if l.camera.HandleKey(ev.Key, ev.Action) {
				l.terminate()
				continue
			}
			if ev.Action == input.Press && l.camera.Input.Triggers(ev.Key, input.ActionCycleFrameCap) {
				l.cycleFrameCap()
			}
		case input.EventClose:
			l.terminate()
		}
	}
}

func (l *Loop) terminate() {
	l.state = Terminating
	l.window.SetShouldClose(true)
}

// cycleFrameCap steps to the next frame cap and hands pacing to either the
// limiter or vsync so the two never run together.
func (l *Loop) cycleFrameCap() {
	limit := config.CycleFPSLimit()
	l.window.SetSwapInterval(SwapInterval(limit))
	if limit > 0 {
		l.logger.Printf("Frame cap: %d FPS", limit)
	} else {
		l.logger.Printf("Frame cap: vsync")
	}
}

// MVP returns projection * view * model for the current camera
func (l *Loop) MVP() mgl32.Mat4 {
	return graphics.MVP(l.projection, l.camera.ViewMatrix(), l.model)
}

func (l *Loop) render() {
	l.ctx.Clear()

	l.shader.Use(l.ctx)
	l.shader.SetMVP(l.ctx, l.MVP())

	l.mesh.Draw(l.ctx)
}

func (l *Loop) report(start time.Time) {
	now := l.now()
	frame := now.Sub(start)
	if threshold := config.GetSlowFrameThreshold(); threshold > 0 && frame > threshold {
		l.logger.Printf("Slow frame: %v. Top tasks: %s", frame, l.profile.TopN(3))
	}

	l.frames++
	if now.Sub(l.lastFPSCheckTime) >= time.Second {
		l.logger.Printf("FPS: %d", l.frames)
		l.frames = 0
		l.lastFPSCheckTime = now
	}
}
