package camera

import (
	"comanche/internal/config"
	"comanche/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// minStrafeLength is the shortest cross(direction, up) that still yields a strafe direction.
const minStrafeLength = 1e-6

// Camera is a first-person camera driven by held movement keys
type Camera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3 // unit length, forward facing

	Speed   float32
	WorldUp mgl32.Vec3

	Input *input.Manager
}

// New creates a camera with the default speed, world up and key bindings
func New(position, direction mgl32.Vec3) *Camera {
	return &Camera{
		Position:  position,
		Direction: direction,
		Speed:     config.MoveSpeed,
		WorldUp:   config.WorldUp,
		Input:     input.NewManager(),
	}
}

// HandleKey applies a key event to the held set. It returns true when the
// event requests termination; the camera does not act on it itself.
func (c *Camera) HandleKey(key input.Key, action input.KeyAction) (quit bool) {
	switch action {
	case input.Press:
		if key == input.KeyEscape {
			return true
		}
		c.Input.Press(key)
	case input.Release:
		c.Input.Release(key)
	}
	return false
}

// Advance moves the camera by one frame tick for every movement action held.
func (c *Camera) Advance() {
	state := c.Input.Active()
	forward := c.Direction.Mul(c.Speed)

	if state[input.ActionMoveForward] {
		c.Position = c.Position.Add(forward)
	}
	if state[input.ActionMoveBackward] {
		c.Position = c.Position.Sub(forward)
	}

	right, ok := c.strafeVector()
	if !ok {
		return
	}
	if state[input.ActionStrafeLeft] {
		c.Position = c.Position.Sub(right)
	}
	if state[input.ActionStrafeRight] {
		c.Position = c.Position.Add(right)
	}
}

// strafeVector returns the unit right vector, independent of Speed. It
// reports false when Direction is parallel to up and no strafe direction exists.
func (c *Camera) strafeVector() (mgl32.Vec3, bool) {
	right := c.Direction.Cross(c.WorldUp)
	if right.Len() < minStrafeLength {
		return mgl32.Vec3{}, false
	}
	return right.Normalize(), true
}

// ViewMatrix returns the look-at transform from Position toward Position+Direction
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), c.WorldUp)
}
