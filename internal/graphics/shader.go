package graphics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MVPUniform is the name of the model-view-projection uniform looked up on every program
const MVPUniform = "mvp"

// ShaderError carries the diagnostic of a failed compile or link step
type ShaderError struct {
	Step string // "vertex", "fragment" or "link"
	Log  string
}

func (e *ShaderError) Error() string {
	if e.Step == "link" {
		return fmt.Sprintf("failed to link program: %s", e.Log)
	}
	return fmt.Sprintf("failed to compile %s shader: %s", e.Step, e.Log)
}

// Shader represents a linked shader program and its cached mvp location
type Shader struct {
	ID  uint32
	MVP int32 // -1 when the program has no mvp uniform
}

// NewShader compiles both stages and links them into a program.
//
// Compile and link failures do not abort construction: the returned Shader
// is always non-nil and carries whatever handle the backend produced, and err
// joins one *ShaderError per failed step. Callers are expected to report err
// and keep going.
func NewShader(ctx Context, vertexSrc, fragmentSrc string) (*Shader, error) {
	var errs []error

	vertexShader, err := compileShader(ctx, VertexStage, vertexSrc)
	if err != nil {
		errs = append(errs, err)
	}
	fragmentShader, err := compileShader(ctx, FragmentStage, fragmentSrc)
	if err != nil {
		errs = append(errs, err)
	}

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)

	if !ctx.ProgramLinked(program) {
		errs = append(errs, &ShaderError{Step: "link", Log: ctx.ProgramInfoLog(program)})
	}

	// the program keeps what it needs once linked
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)

	return &Shader{
		ID:  program,
		MVP: ctx.UniformLocation(program, MVPUniform),
	}, errors.Join(errs...)
}

func compileShader(ctx Context, stage ShaderStage, source string) (uint32, error) {
	shader := ctx.CreateShader(stage)
	ctx.CompileShader(shader, source)

	if !ctx.ShaderCompiled(shader) {
		return shader, &ShaderError{Step: stage.String(), Log: ctx.ShaderInfoLog(shader)}
	}
	return shader, nil
}

// HasMVP reports whether the program exposes the mvp uniform
func (s *Shader) HasMVP() bool {
	return s.MVP != -1
}

// Use activates the shader program
func (s *Shader) Use(ctx Context) {
	ctx.UseProgram(s.ID)
}

// SetMVP uploads m to the mvp uniform. It is a no-op when the uniform is missing.
func (s *Shader) SetMVP(ctx Context, m mgl32.Mat4) {
	if !s.HasMVP() {
		return
	}
	ctx.UniformMatrix4(s.MVP, m)
}

// Delete releases the shader program
func (s *Shader) Delete(ctx Context) {
	ctx.DeleteProgram(s.ID)
}
