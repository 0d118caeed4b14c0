// Package assets embeds the static files the renderer needs at runtime.
package assets

import (
	"embed"
	"path"
)

const ShadersDir = "shaders"

var (
	CubeVertShader = path.Join(ShadersDir, "cube.vert")
	CubeFragShader = path.Join(ShadersDir, "cube.frag")
)

//go:embed shaders
var files embed.FS

// Shader returns the source of an embedded shader file
func Shader(name string) (string, error) {
	b, err := files.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
