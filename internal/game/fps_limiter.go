package game

import (
	"time"

	"comanche/internal/config"
)

// SwapInterval returns the swap interval that goes with a frame cap: vsync
// when uncapped, immediate swaps when the limiter paces frames.
func SwapInterval(fpsLimit int) int {
	if fpsLimit > 0 {
		return 0
	}
	return 1
}

// FPSLimiter paces frames when a frame cap is configured
type FPSLimiter struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Wait blocks until the next frame is due under config.GetFPSLimit. Without
// a cap it returns at once and pacing is left to the swap interval.
func (f *FPSLimiter) Wait() {
	f.wait(config.GetFPSLimit())
}

func (f *FPSLimiter) wait(limit int) {
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	interval := time.Second / time.Duration(limit)
	now := f.now()

	// first capped frame, or more than a frame behind after a hitch:
	// resync instead of rushing to catch up
	if f.next.IsZero() || now.Sub(f.next) > interval {
		f.next = now.Add(interval)
	} else {
		f.next = f.next.Add(interval)
	}

	if remaining := f.next.Sub(now); remaining > 0 {
		f.sleep(remaining)
	}
}
