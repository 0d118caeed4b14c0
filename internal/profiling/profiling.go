package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates per-phase durations for a single frame.
// Usage: defer frame.Track("loop.Render")()
type Frame struct {
	totals map[string]time.Duration
	order  []string
	now    func() time.Time
}

// NewFrame returns an empty Frame using the wall clock
func NewFrame() *Frame {
	return &Frame{
		totals: make(map[string]time.Duration),
		now:    time.Now,
	}
}

// Track returns a stop function that records the elapsed time under name.
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.Add(name, f.now().Sub(start))
	}
}

// Add records d under name
func (f *Frame) Add(name string, d time.Duration) {
	if _, ok := f.totals[name]; !ok {
		f.order = append(f.order, name)
	}
	f.totals[name] += d
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	for k := range f.totals {
		delete(f.totals, k)
	}
	f.order = f.order[:0]
}

// TopN formats the n slowest phases, slowest first.
// Example: "loop.Render:4.2ms, loop.Swap:2.1ms"
func (f *Frame) TopN(n int) string {
	names := append([]string(nil), f.order...)
	// stable keeps first-recorded order among equal durations
	sort.SliceStable(names, func(i, j int) bool {
		return f.totals[names[i]] > f.totals[names[j]]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		ms := float64(f.totals[name].Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", name, ms))
	}
	return strings.Join(parts, ", ")
}
