package config

import (
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Window
const (
	Title        = "comanche"
	WindowWidth  = 800
	WindowHeight = 600
)

// Projection. The aspect ratio is fixed and does not follow the window size.
const (
	FieldOfView = 45.0 // degrees, vertical
	AspectRatio = 4.0 / 3.0
	NearPlane   = 0.1
	FarPlane    = 100.0
)

// MoveSpeed is the camera displacement applied per rendered frame, not per second.
const MoveSpeed = 0.5

var (
	StartPosition  = mgl32.Vec3{0, 0, 5}
	StartDirection = mgl32.Vec3{0, 0, -1}
	WorldUp        = mgl32.Vec3{0, 1, 0}
)

// RenderSettings holds frame pacing configuration
type RenderSettings struct {
	mu                 sync.RWMutex
	fpsLimit           int // 0 leaves pacing to the swap interval
	slowFrameThreshold time.Duration
}

var globalRenderSettings = &RenderSettings{
	fpsLimit:           0,
	slowFrameThreshold: 50 * time.Millisecond,
}

// GetFPSLimit returns the frame cap, 0 when frames are paced by vsync
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values disable the cap.
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}

// FrameCaps are the limits CycleFPSLimit steps through. 0 is vsync paced.
var FrameCaps = []int{0, 30, 60, 120, 240}

// CycleFPSLimit moves the frame cap to the next entry of FrameCaps and
// returns it. A limit not in the list restarts at the first entry.
func CycleFPSLimit() int {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	next := FrameCaps[0]
	for i, limit := range FrameCaps {
		if limit == globalRenderSettings.fpsLimit {
			next = FrameCaps[(i+1)%len(FrameCaps)]
			break
		}
	}
	globalRenderSettings.fpsLimit = next
	return next
}

// GetSlowFrameThreshold returns the frame duration above which a frame is reported as slow
func GetSlowFrameThreshold() time.Duration {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.slowFrameThreshold
}

// SetSlowFrameThreshold sets the slow frame threshold. Zero disables the report.
func SetSlowFrameThreshold(d time.Duration) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.slowFrameThreshold = d
}
