package graphics

import (
	"comanche/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection describes a perspective frustum
type Projection struct {
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
}

// DefaultProjection returns the fixed 45° 4:3 frustum used for every frame
func DefaultProjection() Projection {
	return Projection{
		AspectRatio: config.AspectRatio,
		FOV:         config.FieldOfView,
		NearPlane:   config.NearPlane,
		FarPlane:    config.FarPlane,
	}
}

func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.AspectRatio, p.NearPlane, p.FarPlane)
}

// MVP composes projection * view * model
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
