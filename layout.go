package ui

// MaxWidths is the most columns a single LayoutRow may declare.
const MaxWidths = 16

type nextKind uint8

const (
	nextNone nextKind = iota
	nextRelative
	nextAbsolute
)

// Layout is one frame of the layout stack: the cursor state that hands out
// widget rectangles inside a container body or column.
type Layout struct {
	body      Rect // container body shifted by its scroll offset
	next      Rect
	nextKind  nextKind
	position  Vec2
	size      Vec2
	max       Vec2 // furthest extent handed out, in screen space
	widths    [MaxWidths]int
	items     int
	itemIndex int
	nextRow   int
	indent    int
}

func (ctx *Context) pushLayout(body Rect, scroll Vec2) {
	if len(ctx.layoutStack) == cap(ctx.layoutStack) {
		ctx.fail("pushLayout", ErrStackOverflow)
		return
	}
	ctx.layoutStack = append(ctx.layoutStack, Layout{
		body: Rect{X: body.X - scroll.X, Y: body.Y - scroll.Y, W: body.W, H: body.H},
		max:  Vec2{X: -0x1000000, Y: -0x1000000},
	})
	ctx.LayoutRow(0, 0)
}

func (ctx *Context) popLayout() {
	if len(ctx.layoutStack) == 0 {
		ctx.fail("popLayout", ErrStackUnderflow)
		return
	}
	ctx.layoutStack = ctx.layoutStack[:len(ctx.layoutStack)-1]
}

// layout returns the active layout frame. Outside any container it reports
// ErrNoLayout and hands back a throwaway frame so saturating contexts keep
// running.
func (ctx *Context) layout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return &ctx.layoutStack[n-1]
	}
	ctx.fail("layout", ErrNoLayout)
	ctx.scratchLayout = Layout{body: unclippedRect}
	return &ctx.scratchLayout
}

// LayoutRow starts a new row of len(widths) items of the given height.
// A positive width is in pixels, zero uses the style default, and a
// negative width -n fills the remaining body width minus n pixels. Height
// follows the same convention against the body height.
func (ctx *Context) LayoutRow(height int, widths ...int) {
	l := ctx.layout()
	if len(widths) > MaxWidths {
		ctx.fail("LayoutRow", ErrStackOverflow)
		widths = widths[:MaxWidths]
	}
	copy(l.widths[:], widths)
	l.items = len(widths)
	l.position = Vec2{X: l.indent, Y: l.nextRow}
	l.size.Y = height
	l.itemIndex = 0
}

// LayoutWidth sets the item width used while the current row declares no
// columns.
func (ctx *Context) LayoutWidth(width int) {
	ctx.layout().size.X = width
}

// LayoutHeight sets the item height of the current row.
func (ctx *Context) LayoutHeight(height int) {
	ctx.layout().size.Y = height
}

// LayoutBeginColumn nests a layout frame in the next cell of the current
// row. Widgets placed inside flow independently until LayoutEndColumn.
func (ctx *Context) LayoutBeginColumn() {
	ctx.pushLayout(ctx.LayoutNext(), Vec2{})
}

// LayoutEndColumn pops the column and folds its extent into the parent.
func (ctx *Context) LayoutEndColumn() {
	if len(ctx.layoutStack) < 2 {
		ctx.fail("LayoutEndColumn", ErrStackUnderflow)
		return
	}
	b := ctx.layoutStack[len(ctx.layoutStack)-1]
	ctx.popLayout()
	a := ctx.layout()
	a.position.X = max(a.position.X, b.position.X+b.body.X-a.body.X)
	a.nextRow = max(a.nextRow, b.nextRow+b.body.Y-a.body.Y)
	a.max.X = max(a.max.X, b.max.X)
	a.max.Y = max(a.max.Y, b.max.Y)
}

// LayoutSetNext overrides the rectangle the next LayoutNext returns. A
// relative rectangle is offset by the layout body and still advances the
// cursor; an absolute one is returned as is.
func (ctx *Context) LayoutSetNext(r Rect, relative bool) {
	l := ctx.layout()
	l.next = r
	if relative {
		l.nextKind = nextRelative
	} else {
		l.nextKind = nextAbsolute
	}
}

// LayoutNext returns the rectangle for the next widget.
func (ctx *Context) LayoutNext() Rect {
	l := ctx.layout()
	style := &ctx.style
	var res Rect

	if l.nextKind != nextNone {
		kind := l.nextKind
		l.nextKind = nextNone
		res = l.next
		if kind == nextAbsolute {
			ctx.lastRect = res
			return res
		}
	} else {
		if l.itemIndex == l.items {
			ctx.LayoutRow(l.size.Y, l.widths[:l.items]...)
		}

		res.X = l.position.X
		res.Y = l.position.Y
		if l.items > 0 {
			res.W = l.widths[l.itemIndex]
		} else {
			res.W = l.size.X
		}
		res.H = l.size.Y
		if res.W == 0 {
			res.W = style.Size.X + style.Padding*2
		}
		if res.H == 0 {
			res.H = style.Size.Y + style.Padding*2
		}
		if res.W < 0 {
			res.W += l.body.W - res.X + 1
		}
		if res.H < 0 {
			res.H += l.body.H - res.Y + 1
		}
		l.itemIndex++
	}

	l.position.X += res.W + style.Spacing
	l.nextRow = max(l.nextRow, res.Y+res.H+style.Spacing)

	res.X += l.body.X
	res.Y += l.body.Y

	l.max.X = max(l.max.X, res.X+res.W)
	l.max.Y = max(l.max.Y, res.Y+res.H)

	ctx.lastRect = res
	return res
}

// LastRect returns the rectangle most recently handed out by LayoutNext.
func (ctx *Context) LastRect() Rect { return ctx.lastRect }
