package ui

import (
	"errors"
	"iter"
)

// Renderer consumes the command list of a finished frame.
type Renderer interface {
	Render(cmds iter.Seq[*Command]) error
	Resize(width, height int)
}

// GUI pairs a Context with a Renderer and runs the per-frame sequence.
// Applications that drive Begin and End themselves do not need it.
type GUI struct {
	renderer Renderer
	ctx      *Context
}

// New creates a GUI whose context is configured with opts.
func New(renderer Renderer, opts ...Option) *GUI {
	return &GUI{renderer: renderer, ctx: NewContext(opts...)}
}

// Frame begins a frame, lets build declare the interface, ends the frame
// and renders it. Input should be fed to Context before calling Frame.
// With saturation enabled, the frame's first usage error is returned
// together with any render error.
func (g *GUI) Frame(build func(ctx *Context)) error {
	g.ctx.Begin()
	build(g.ctx)
	g.ctx.End()
	usageErr := g.ctx.Err()
	return errors.Join(usageErr, g.renderer.Render(g.ctx.Commands()))
}

// Context returns the underlying context, for feeding input and for
// settings that persist across frames.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
