// Ansi prints one frame of the demo windows to the terminal using the
// cell-grid backend.
//
//	go run ./example/ansi/
//	go run ./example/ansi/ -theme light -cols 100 -rows 40
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/backend/ansi"
	"github.com/go-theft-auto/ui/example/demo"
	"github.com/go-theft-auto/ui/theme"
)

func main() {
	themeName := flag.String("theme", "dark", "built-in theme name")
	cols := flag.Int("cols", 0, "canvas width in cells (default: terminal width)")
	rows := flag.Int("rows", 0, "canvas height in cells (default: terminal height)")
	flag.Parse()

	if err := run(*themeName, *cols, *rows); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(themeName string, cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			w, h = 100, 40
		}
		if cols <= 0 {
			cols = w
		}
		if rows <= 0 {
			rows = h - 1
		}
	}
	style, err := theme.Builtin(themeName)
	if err != nil {
		return err
	}
	// Cells are coarse; shrink the metrics so widgets still fit.
	style.Padding = 0
	style.Spacing = 0
	style.Indent = 2 * ansi.CellWidth
	style.Size.Y = ansi.CellHeight
	style.TitleHeight = ansi.CellHeight
	style.ScrollbarSize = ansi.CellWidth
	style.ThumbSize = ansi.CellWidth

	canvas := ansi.NewCanvas(cols, rows)
	g := ui.New(canvas, ui.WithStyle(style), ui.WithTextMeasurer(ansi.Measurer{}))
	state := demo.New()

	// The first frame creates the containers; the second lays them out
	// with their final scroll and content sizes.
	for range 2 {
		canvas.Clear()
		if err := g.Frame(state.Frame); err != nil {
			return err
		}
	}
	fmt.Println(canvas.String())
	return nil
}
