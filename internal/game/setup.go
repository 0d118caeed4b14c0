package game

import (
	"fmt"
	"log"

	"comanche/assets"
	"comanche/internal/graphics"
)

// Resources holds the GPU objects created once at startup and reused every frame
type Resources struct {
	Shader *graphics.Shader
	Mesh   *graphics.Mesh
}

// NewResources uploads the cube and builds the cube shader program.
// Shader diagnostics are logged and do not fail setup.
func NewResources(ctx graphics.Context, logger *log.Logger) (*Resources, error) {
	vertexSrc, err := assets.Shader(assets.CubeVertShader)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader: %w", err)
	}
	fragmentSrc, err := assets.Shader(assets.CubeFragShader)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader: %w", err)
	}

	return newResources(ctx, logger, vertexSrc, fragmentSrc), nil
}

func newResources(ctx graphics.Context, logger *log.Logger, vertexSrc, fragmentSrc string) *Resources {
	mesh := graphics.NewCube(ctx)

	shader, err := graphics.NewShader(ctx, vertexSrc, fragmentSrc)
	if err != nil {
		logger.Printf("shader program %d: %v", shader.ID, err)
	}
	if !shader.HasMVP() {
		logger.Printf("shader program %d has no %q uniform, transform upload disabled", shader.ID, graphics.MVPUniform)
	}

	return &Resources{Shader: shader, Mesh: mesh}
}

// Delete releases the GPU objects
func (r *Resources) Delete(ctx graphics.Context) {
	r.Mesh.Delete(ctx)
	r.Shader.Delete(ctx)
}
