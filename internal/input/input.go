package input

// Key identifies a physical keyboard key. Values match GLFW key codes so the
// window layer can convert with a plain type conversion.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyA       Key = 65
	KeyD       Key = 68
	KeyF       Key = 70
	KeyS       Key = 83
	KeyW       Key = 87
	KeyEscape  Key = 256
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
)

// KeyAction is the transition reported with a key event. Values match GLFW.
type KeyAction int

const (
	Release KeyAction = 0
	Press   KeyAction = 1
	Repeat  KeyAction = 2
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionCycleFrameCap // edge triggered on press, not held
	ActionCount         // Sentinel value for array sizing
)

// Manager tracks which keys are currently held and maps them to logical actions
type Manager struct {
	keyToActions map[Key][]Action
	held         map[Key]struct{}
}

// NewManager creates a Manager with the default WASD and arrow key bindings,
// plus F for the frame cap
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[Key][]Action),
		held:         make(map[Key]struct{}),
	}

	m.BindKey(KeyW, ActionMoveForward)
	m.BindKey(KeyS, ActionMoveBackward)
	m.BindKey(KeyA, ActionStrafeLeft)
	m.BindKey(KeyD, ActionStrafeRight)

	m.BindKey(KeyUp, ActionMoveForward)
	m.BindKey(KeyDown, ActionMoveBackward)
	m.BindKey(KeyLeft, ActionStrafeLeft)
	m.BindKey(KeyRight, ActionStrafeRight)

	m.BindKey(KeyF, ActionCycleFrameCap)

	return m
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (m *Manager) BindKey(key Key, action Action) {
	if action < 0 || action >= ActionCount || m.Triggers(key, action) {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// Triggers reports whether key is bound to action
func (m *Manager) Triggers(key Key, action Action) bool {
	for _, a := range m.keyToActions[key] {
		if a == action {
			return true
		}
	}
	return false
}

// Press marks key as held. Pressing a held key is a no-op.
func (m *Manager) Press(key Key) {
	m.held[key] = struct{}{}
}

// Release marks key as no longer held. Releasing a key that is not held is a no-op.
func (m *Manager) Release(key Key) {
	delete(m.held, key)
}

// IsHeld reports whether key is currently held
func (m *Manager) IsHeld(key Key) bool {
	_, ok := m.held[key]
	return ok
}

// Held returns the currently held keys in no particular order
func (m *Manager) Held() []Key {
	keys := make([]Key, 0, len(m.held))
	for k := range m.held {
		keys = append(keys, k)
	}
	return keys
}

// Active returns the state of every action for the current held set
func (m *Manager) Active() [ActionCount]bool {
	var state [ActionCount]bool
	for key := range m.held {
		for _, a := range m.keyToActions[key] {
			state[a] = true
		}
	}
	return state
}
