/*
Package ui provides a small immediate-mode GUI core. The interface is
declared every frame and widgets report interaction results directly. The
output is a flat list of drawing commands that a backend turns into pixels.

# Overview

A Context owns all state that must survive between frames: the focused and
hovered widget IDs, a fixed pool of containers (windows, panels, popups),
tree node expansion state, and the style. Everything else is rebuilt by the
frame code. The package never draws anything itself and has no dependency
on a graphics API. Backends live in sub-packages:

	backend/opengl   GLFW input and an OpenGL 4.1 renderer
	backend/drawlist GPU-agnostic quad batching used by the GL renderer
	backend/raster   a software renderer into an image.RGBA
	backend/ansi     a terminal cell-grid renderer
	fontface         text metrics and a glyph atlas from x/image faces
	theme            TOML style files and built-in themes

# Quick Start

	ctx := ui.NewContext(ui.WithTextMeasurer(fontface.Default()))

	for running {
	    // feed input collected since the last frame
	    ctx.InputMouseMove(x, y)

	    ctx.Begin()
	    if ctx.BeginWindow("Demo", ui.Rect{X: 40, Y: 40, W: 300, H: 400}, 0) {
	        ctx.LayoutRow(0, 80, -1)
	        ctx.Label("Name:")
	        ctx.Textbox("name", &name)
	        if ctx.Button("Submit").Has(ui.ResSubmit) {
	            submit(name)
	        }
	        ctx.EndWindow()
	    }
	    ctx.End()

	    for cmd := range ctx.Commands() {
	        draw(cmd)
	    }
	}

GUI wraps the Begin/End/Render sequence for callers that have a Renderer.

# Identity

Widgets are identified by an ID hashed from their label and the IDs pushed
on the ID stack, so the same label under two different windows or tree
nodes gives two different widgets. Use PushID/PopID to disambiguate
widgets created in loops. Two labels that hash to the same ID within one
scope share hover and focus.

# Layout

Rows are declared with LayoutRow: a height and a list of widths. Positive
widths are pixels, zero means the style default, and a negative width -n
fills the remaining space minus n. Columns nest a fresh layout inside one
cell. LayoutSetNext places the next widget at an explicit rectangle.

# Paint Order

Each root container records its commands as a contiguous range. End sorts
the roots by z-index and links the ranges with jump commands so that
iteration paints them back to front. Commands emitted outside any root
container paint underneath all of them. Clicking inside a root brings it to
the front on the following frame.

# Errors

Stack overflows, unbalanced Begin/End pairs and similar misuse are
programmer errors. By default they panic with a *UsageError wrapping one of
the Err* sentinels. WithSaturation(true) turns them into a dropped
operation instead: the first error of the frame is kept for Err and every
distinct error is logged once.

# Logging

Diagnostics go through log/slog. SetVerbose(true) enables debug output on
the package logger; WithLogger routes a context to another logger.
*/
package ui
