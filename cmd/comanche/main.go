package main

import (
	"log"
	"runtime"

	"comanche/internal/camera"
	"comanche/internal/config"
	"comanche/internal/game"
	"comanche/internal/graphics/opengl"
	"comanche/internal/platform"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	closer.Bind(func() {
		log.Println("comanche: exiting")
	})

	// GLFW and GL teardown stays on the locked main thread, so it runs
	// inside run before closer takes over the exit.
	if err := run(); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func run() error {
	if err := platform.Init(); err != nil {
		return err
	}
	defer platform.Terminate()

	window, err := platform.NewWindow(platform.Config{
		Width:        config.WindowWidth,
		Height:       config.WindowHeight,
		Title:        config.Title,
		SwapInterval: game.SwapInterval(config.GetFPSLimit()),
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	ctx, err := opengl.New(config.WindowWidth, config.WindowHeight)
	if err != nil {
		return err
	}
	log.Printf("OpenGL version %s", ctx.Version())

	res, err := game.NewResources(ctx, log.Default())
	if err != nil {
		return err
	}
	defer res.Delete(ctx)

	cam := camera.New(config.StartPosition, config.StartDirection)
	game.NewLoop(window, ctx, cam, res.Shader, res.Mesh).Run()
	return nil
}
