// Command gen renders each widget with sample data on the software
// rasterizer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
//	go run ./doc/gen/ -out /tmp/shots -theme light
package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/raster"
	"github.com/go-theft-auto/ui/example/demo"
	"github.com/go-theft-auto/ui/fontface"
	"github.com/go-theft-auto/ui/theme"
)

func main() {
	outDir := flag.String("out", filepath.Join("doc", "imgs"), "output directory")
	themeName := flag.String("theme", "dark", "built-in theme name")
	flag.Parse()

	if err := run(*outDir, *themeName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                // filename without extension
	width  int                   // canvas width
	height int                   // canvas height
	draw   func(ctx *ui.Context) // declares the widgets, between Begin and End
	frames int                   // frames to render (0 = default 2)
}

func run(outDir, themeName string) error {
	style, err := theme.Builtin(themeName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(style, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}
	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(style ui.Style, s screenshot, outDir string) error {
	renderer, err := raster.New(s.width, s.height, basicfont.Face7x13)
	if err != nil {
		return err
	}
	// Fresh context per screenshot to avoid state leaking between captures.
	g := ui.New(renderer, ui.WithStyle(style), ui.WithTextMeasurer(fontface.Default()))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for range frames {
		renderer.Clear(ui.RGBA(31, 31, 36, 255))
		if err := g.Frame(s.draw); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, renderer.Image(), &jpeg.Options{Quality: 90})
}

// window wraps draw in a window filling the canvas.
func window(title string, w, h int, draw func(ctx *ui.Context)) func(ctx *ui.Context) {
	return func(ctx *ui.Context) {
		if ctx.BeginWindow(title, ui.Rect{X: 0, Y: 0, W: w, H: h}, ui.OptNoResize|ui.OptNoClose) {
			draw(ctx)
			ctx.EndWindow()
		}
	}
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	var (
		checked   = true
		unchecked = false
		inputText = "Hello, world!"
		number    = 3.14
		volume    = 0.65
		level     = 7.0
	)

	return []screenshot{
		{
			name: "text", width: 320, height: 160,
			draw: window("Text", 320, 160, func(ctx *ui.Context) {
				ctx.LayoutRow(0, -1)
				ctx.Label("A single line label")
				ctx.Text("Text wraps at word boundaries when it reaches the edge of the available width.")
			}),
		},
		{
			name: "button", width: 320, height: 100,
			draw: window("Buttons", 320, 100, func(ctx *ui.Context) {
				ctx.LayoutRow(0, 100, 100, -1)
				ctx.Button("Standard")
				ctx.ButtonEx("", ui.IconCheck, ui.OptAlignCenter)
				ctx.ButtonEx("Right", ui.IconNone, ui.OptAlignRight)
			}),
		},
		{
			name: "checkbox", width: 240, height: 100,
			draw: window("Checkboxes", 240, 100, func(ctx *ui.Context) {
				ctx.Checkbox("Enabled feature", &checked)
				ctx.Checkbox("Disabled feature", &unchecked)
			}),
		},
		{
			name: "textbox", width: 320, height: 80,
			draw: window("Textbox", 320, 80, func(ctx *ui.Context) {
				ctx.LayoutRow(0, 60, -1)
				ctx.Label("Name:")
				ctx.Textbox("name", &inputText)
			}),
		},
		{
			name: "slider", width: 320, height: 110,
			draw: window("Sliders", 320, 110, func(ctx *ui.Context) {
				ctx.LayoutRow(0, 60, -1)
				ctx.Label("Volume:")
				ctx.Slider("volume", &volume, 0, 1)
				ctx.Label("Level:")
				ctx.SliderEx("level", &level, 0, 10, 1, "%.0f", ui.OptAlignCenter)
			}),
		},
		{
			name: "number", width: 320, height: 80,
			draw: window("Number", 320, 80, func(ctx *ui.Context) {
				ctx.LayoutRow(0, 60, -1)
				ctx.Label("Value:")
				ctx.Number("value", &number, 0.01)
			}),
		},
		{
			name: "tree_node", width: 320, height: 200,
			draw: window("Tree", 320, 200, func(ctx *ui.Context) {
				if ctx.BeginTreeNode("Root", ui.OptExpanded).Has(ui.ResActive) {
					ctx.Label("Child 1")
					if ctx.BeginTreeNode("Child 2", ui.OptExpanded).Has(ui.ResActive) {
						ctx.Label("Nested item A")
						ctx.Label("Nested item B")
						ctx.EndTreeNode()
					}
					ctx.EndTreeNode()
				}
				ctx.BeginTreeNode("Collapsed", 0)
			}),
		},
		{
			name: "header", width: 320, height: 140,
			draw: window("Headers", 320, 140, func(ctx *ui.Context) {
				if ctx.Header("Open Header", ui.OptExpanded).Has(ui.ResActive) {
					ctx.Label("Visible content inside header")
				}
				ctx.Header("Closed Header", 0)
			}),
		},
		{
			name: "panel", width: 320, height: 200, frames: 3,
			draw: window("Panel", 320, 200, func(ctx *ui.Context) {
				ctx.LayoutRow(-1, -1)
				ctx.BeginPanel("scroll", 0)
				ctx.LayoutRow(0, -1)
				for i := range 20 {
					ctx.Label(fmt.Sprintf("Line %d: scrollable content", i+1))
				}
				ctx.EndPanel()
			}),
		},
		{
			name: "demo", width: 700, height: 520, frames: 3,
			draw: demo.New().Frame,
		},
	}
}
