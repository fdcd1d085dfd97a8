// Example runs the demo windows in a GLFW window with the OpenGL backend.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -theme light -v
//
// -theme takes a built-in theme name or a path to a TOML theme file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/opengl"
	"github.com/go-theft-auto/ui/example/demo"
	"github.com/go-theft-auto/ui/fontface"
	"github.com/go-theft-auto/ui/theme"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "ui demo"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	themeName := flag.String("theme", "", "built-in theme name or TOML theme file")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	if err := run(*themeName, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadStyle(name string) (ui.Style, error) {
	if name == "" {
		return ui.DefaultStyle(), nil
	}
	if style, err := theme.Builtin(name); err == nil {
		return style, nil
	}
	return theme.Load(name)
}

func run(themeName string, verbose bool) error {
	ui.SetVerbose(verbose)
	style, err := loadStyle(themeName)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	face := basicfont.Face7x13
	atlas, err := fontface.NewAtlas(face, 256)
	if err != nil {
		return fmt.Errorf("font atlas: %w", err)
	}
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, atlas)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	g := ui.New(renderer,
		ui.WithStyle(style),
		ui.WithTextMeasurer(fontface.New(face)),
		ui.WithSaturation(true),
	)
	opengl.NewInputAdapter(window, g.Context())
	window.SetSizeCallback(func(_ *glfw.Window, w, h int) { g.Resize(w, h) })

	state := demo.New()
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		bg := state.BackgroundColor()
		gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// Usage errors are already logged by the context.
		var usage *ui.UsageError
		if err := g.Frame(state.Frame); err != nil && !errors.As(err, &usage) {
			return err
		}

		window.SwapBuffers()
	}
	return nil
}
