package input

import "fmt"

// EventKind distinguishes window events
type EventKind int

const (
	EventResize EventKind = iota
	EventKey
	EventClose
)

// Event is a single window event queued between two frames
type Event struct {
	Kind EventKind

	// EventResize: new framebuffer size in pixels
	Width, Height int

	// EventKey
	Key    Key
	Action KeyAction
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

func KeyEvent(key Key, action KeyAction) Event {
	return Event{Kind: EventKey, Key: key, Action: action}
}

func CloseEvent() Event {
	return Event{Kind: EventClose}
}

func (e Event) String() string {
	switch e.Kind {
	case EventResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	case EventKey:
		return fmt.Sprintf("key(%d, %d)", e.Key, e.Action)
	case EventClose:
		return "close"
	}
	return "unknown"
}
