package game

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"comanche/internal/camera"
	"comanche/internal/config"
	"comanche/internal/graphics"
	"comanche/internal/graphics/graphicstest"
	"comanche/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

const brokenShader = "#version 410 core\nnot a shader\n"

// scriptedWindow hands out one batch of events per frame
type scriptedWindow struct {
	batches      [][]input.Event
	shouldClose  bool
	swaps        int
	polls        int
	swapInterval int
}

func (w *scriptedWindow) Events() []input.Event {
	if len(w.batches) == 0 {
		return nil
	}
	b := w.batches[0]
	w.batches = w.batches[1:]
	return b
}

func (w *scriptedWindow) PollEvents()           { w.polls++ }
func (w *scriptedWindow) SwapBuffers()          { w.swaps++ }
func (w *scriptedWindow) ShouldClose() bool     { return w.shouldClose }
func (w *scriptedWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *scriptedWindow) SetSwapInterval(i int) { w.swapInterval = i }

func newTestLoop(t *testing.T, batches ...[]input.Event) (*Loop, *scriptedWindow, *graphicstest.Context) {
	t.Helper()
	ctx := graphicstest.New()
	res, err := NewResources(ctx, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("Failed to create resources: %v", err)
	}
	win := &scriptedWindow{batches: batches, swapInterval: 1}
	cam := camera.New(config.StartPosition, config.StartDirection)

	l := NewLoop(win, ctx, cam, res.Shader, res.Mesh)
	l.SetLogger(log.New(io.Discard, "", 0))
	ctx.ResetCalls()
	return l, win, ctx
}

func frames(n int, batches ...[]input.Event) [][]input.Event {
	for len(batches) < n {
		batches = append(batches, nil)
	}
	return batches
}

func TestCloseStopsBeforeDraw(t *testing.T) {
	l, win, ctx := newTestLoop(t, frames(3, nil, []input.Event{input.CloseEvent()})...)
	l.Run()

	if len(ctx.Draws) != 1 {
		t.Errorf("Expected exactly one draw before close, got %d", len(ctx.Draws))
	}
	if win.swaps != 1 {
		t.Errorf("Expected one presentation, got %d", win.swaps)
	}
	if l.State() != Terminating || !win.shouldClose {
		t.Errorf("Expected terminating loop and closing window")
	}
}

func TestEscapeStopsBeforeDraw(t *testing.T) {
	l, win, ctx := newTestLoop(t, []input.Event{
		input.KeyEvent(input.KeyW, input.Press),
		input.KeyEvent(input.KeyEscape, input.Press),
	})

	if l.Tick() {
		t.Fatalf("Expected Tick to report termination")
	}
	if len(ctx.Draws) != 0 || win.swaps != 0 {
		t.Errorf("Expected no draw or swap, got %d draws %d swaps", len(ctx.Draws), win.swaps)
	}
	if !win.shouldClose {
		t.Errorf("Expected window close flag to be set")
	}
	if l.Camera().Position != config.StartPosition {
		t.Errorf("Camera must not advance in a terminating iteration, got %v", l.Camera().Position)
	}

	// further ticks stay inert
	if l.Tick() || len(ctx.Draws) != 0 {
		t.Errorf("Expected no work after termination")
	}
}

func TestResizeAppliesToSameFrame(t *testing.T) {
	l, _, ctx := newTestLoop(t, []input.Event{input.ResizeEvent(1024, 768)})
	l.Tick()

	if len(ctx.Draws) != 1 {
		t.Fatalf("Expected one draw, got %d", len(ctx.Draws))
	}
	if got := ctx.Draws[0].Viewport; got != [4]int32{0, 0, 1024, 768} {
		t.Errorf("Expected draw with the new viewport, got %v", got)
	}

	viewportAt, clearAt := -1, -1
	for i, call := range ctx.Calls {
		if call == "Viewport" && viewportAt < 0 {
			viewportAt = i
		}
		if call == "Clear" && clearAt < 0 {
			clearAt = i
		}
	}
	if viewportAt < 0 || clearAt < 0 || viewportAt > clearAt {
		t.Errorf("Expected viewport update before clear, calls %v", ctx.Calls)
	}
}

func TestEventsAppliedBeforeTransform(t *testing.T) {
	l, _, ctx := newTestLoop(t, []input.Event{input.KeyEvent(input.KeyW, input.Press)})
	l.Tick()

	if len(ctx.Uploads) != 1 {
		t.Fatalf("Expected one mvp upload, got %d", len(ctx.Uploads))
	}

	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 4.5}, mgl32.Vec3{0, 0, 3.5}, mgl32.Vec3{0, 1, 0})
	want := graphics.DefaultProjection().Matrix().Mul4(view)
	if !ctx.Uploads[0].Matrix.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected mvp %v, got %v", want, ctx.Uploads[0].Matrix)
	}
}

func TestHeldKeyMovesEveryFrame(t *testing.T) {
	l, _, _ := newTestLoop(t,
		[]input.Event{input.KeyEvent(input.KeyW, input.Press)},
		nil,
		[]input.Event{input.KeyEvent(input.KeyW, input.Release)},
	)
	l.Tick()
	l.Tick()
	l.Tick()

	want := mgl32.Vec3{0, 0, 4}
	if !l.Camera().Position.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Expected %v after two held frames, got %v", want, l.Camera().Position)
	}
}

func TestFrameSubmission(t *testing.T) {
	l, win, ctx := newTestLoop(t, nil)
	l.Tick()

	if len(ctx.Draws) != 1 {
		t.Fatalf("Expected one draw, got %d", len(ctx.Draws))
	}
	d := ctx.Draws[0]
	if d.Count != 36 || d.Program != l.shader.ID || d.VAO != l.mesh.VAO {
		t.Errorf("Unexpected draw %+v", d)
	}
	if ctx.BoundVAO != 0 {
		t.Errorf("Expected mesh unbound after the frame")
	}
	if win.swaps != 1 || win.polls != 1 {
		t.Errorf("Expected one swap and one poll, got %d/%d", win.swaps, win.polls)
	}
}

func TestResourcesCreatedOnce(t *testing.T) {
	l, _, ctx := newTestLoop(t, frames(5)...)
	for i := 0; i < 5; i++ {
		l.Tick()
	}

	for _, name := range []string{"GenVertexArray", "GenBuffer", "CreateProgram", "CreateShader", "UniformLocation"} {
		if n := ctx.Count(name); n != 0 {
			t.Errorf("Expected no %s calls during frames, got %d", name, n)
		}
	}
	if len(ctx.Draws) != 5 {
		t.Errorf("Expected 5 draws, got %d", len(ctx.Draws))
	}
}

func TestBrokenShaderKeepsRunning(t *testing.T) {
	ctx := graphicstest.New()
	var buf bytes.Buffer
	res := newResources(ctx, log.New(&buf, "", 0), brokenShader, brokenShader)

	if !strings.Contains(buf.String(), graphicstest.CompileErrorLog) {
		t.Errorf("Expected compile diagnostic in log, got %q", buf.String())
	}

	win := &scriptedWindow{batches: frames(3)}
	l := NewLoop(win, ctx, camera.New(config.StartPosition, config.StartDirection), res.Shader, res.Mesh)
	l.SetLogger(log.New(io.Discard, "", 0))
	ctx.ResetCalls()

	for i := 0; i < 3; i++ {
		if !l.Tick() {
			t.Fatalf("Loop stopped on frame %d", i)
		}
	}
	if len(ctx.Draws) != 3 {
		t.Errorf("Expected draws to continue, got %d", len(ctx.Draws))
	}
	if len(ctx.Uploads) != 0 {
		t.Errorf("Expected no mvp upload without a uniform, got %d", len(ctx.Uploads))
	}
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	l, win, ctx := newTestLoop(t)
	win.shouldClose = true
	l.Run()

	if len(ctx.Draws) != 0 {
		t.Errorf("Expected no draw for an already closed window, got %d", len(ctx.Draws))
	}
}

func TestReportsFPSAndSlowFrames(t *testing.T) {
	l, _, _ := newTestLoop(t, frames(2)...)
	var buf bytes.Buffer
	l.SetLogger(log.New(&buf, "", 0))

	clock := time.Unix(100, 0)
	l.now = func() time.Time {
		clock = clock.Add(300 * time.Millisecond)
		return clock
	}
	l.lastFPSCheckTime = time.Unix(100, 0)

	prev := config.GetSlowFrameThreshold()
	config.SetSlowFrameThreshold(250 * time.Millisecond)
	defer config.SetSlowFrameThreshold(prev)

	l.Tick()
	l.Tick()

	out := buf.String()
	if strings.Count(out, "Slow frame") != 2 {
		t.Errorf("Expected two slow frame reports, got %q", out)
	}
	if !strings.Contains(out, "FPS: 2") {
		t.Errorf("Expected FPS report, got %q", out)
	}
}

func TestFrameCapKeyCyclesPacing(t *testing.T) {
	prev := config.GetFPSLimit()
	defer config.SetFPSLimit(prev)
	config.SetFPSLimit(0)

	press := []input.Event{input.KeyEvent(input.KeyF, input.Press)}
	release := []input.Event{input.KeyEvent(input.KeyF, input.Release)}
	l, win, _ := newTestLoop(t, press, release, press, release)

	var buf bytes.Buffer
	l.SetLogger(log.New(&buf, "", 0))
	var slept []time.Duration
	l.limiter.sleep = func(d time.Duration) { slept = append(slept, d) }

	l.Tick()
	if config.GetFPSLimit() != config.FrameCaps[1] || win.swapInterval != 0 {
		t.Fatalf("Expected cap %d without vsync, got %d interval %d", config.FrameCaps[1], config.GetFPSLimit(), win.swapInterval)
	}
	if len(slept) != 1 {
		t.Errorf("Expected the limiter to pace the capped frame, got %v", slept)
	}

	// release does not cycle
	l.Tick()
	if config.GetFPSLimit() != config.FrameCaps[1] {
		t.Errorf("Expected cap unchanged on release, got %d", config.GetFPSLimit())
	}

	l.Tick()
	if config.GetFPSLimit() != config.FrameCaps[2] {
		t.Errorf("Expected cap %d, got %d", config.FrameCaps[2], config.GetFPSLimit())
	}
	if !strings.Contains(buf.String(), "Frame cap: 30 FPS") {
		t.Errorf("Expected frame cap report, got %q", buf.String())
	}

	// cycling back to uncapped returns pacing to vsync
	for config.GetFPSLimit() != 0 {
		l.cycleFrameCap()
	}
	if win.swapInterval != 1 {
		t.Errorf("Expected vsync restored, got interval %d", win.swapInterval)
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Terminating.String() != "terminating" {
		t.Errorf("Unexpected state names")
	}
}
