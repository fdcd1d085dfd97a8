package ui

// ClipResult classifies a rectangle against the current clip rectangle.
type ClipResult int

const (
	// ClipNone means the rectangle is fully visible.
	ClipNone ClipResult = iota
	// ClipPart means the rectangle straddles the clip edge; a CLIP command
	// must precede drawing it.
	ClipPart
	// ClipAll means the rectangle is fully outside and should be skipped.
	ClipAll
)

var unclippedRect = Rect{X: 0, Y: 0, W: 0x1000000, H: 0x1000000}

// PushClipRect intersects r with the current clip rectangle and pushes it.
func (ctx *Context) PushClipRect(r Rect) {
	if len(ctx.clipStack) == cap(ctx.clipStack) {
		ctx.fail("PushClipRect", ErrStackOverflow)
		return
	}
	ctx.clipStack = append(ctx.clipStack, r.Intersect(ctx.ClipRect()))
}

// PopClipRect restores the previous clip rectangle.
func (ctx *Context) PopClipRect() {
	if len(ctx.clipStack) == 0 {
		ctx.fail("PopClipRect", ErrStackUnderflow)
		return
	}
	ctx.clipStack = ctx.clipStack[:len(ctx.clipStack)-1]
}

// ClipRect returns the current clip rectangle. With nothing pushed the clip
// is unbounded.
func (ctx *Context) ClipRect() Rect {
	if n := len(ctx.clipStack); n > 0 {
		return ctx.clipStack[n-1]
	}
	return unclippedRect
}

// CheckClip classifies r against the current clip rectangle.
func (ctx *Context) CheckClip(r Rect) ClipResult {
	cr := ctx.ClipRect()
	if r.X > cr.X+cr.W || r.X+r.W < cr.X || r.Y > cr.Y+cr.H || r.Y+r.H < cr.Y {
		return ClipAll
	}
	if r.X >= cr.X && r.X+r.W <= cr.X+cr.W && r.Y >= cr.Y && r.Y+r.H <= cr.Y+cr.H {
		return ClipNone
	}
	return ClipPart
}
