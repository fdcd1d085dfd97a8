package ui

// Container is the persistent record behind a window, popup or panel. It
// survives across frames and is found again by the ID of its name.
type Container struct {
	Rect        Rect
	Body        Rect // Rect minus title bar and scrollbar gutters
	ContentSize Vec2
	Scroll      Vec2
	ZIndex      int
	Open        bool

	head, tail int // jump commands bracketing a root container's range
	inited     bool
	root       bool
}

// GetContainer returns the container for name, creating an open one if
// none exists. It returns nil only when the pool is exhausted.
func (ctx *Context) GetContainer(name string) *Container {
	return ctx.getContainer(ctx.GetID(name), 0)
}

func (ctx *Context) getContainer(id ID, opt Opt) *Container {
	if cnt, ok := ctx.external[id]; ok {
		return cnt
	}
	if idx := ctx.containers.Get(id); idx >= 0 {
		cnt := ctx.containers.At(idx)
		if cnt.Open || opt&OptClosed == 0 {
			ctx.containers.Update(idx, ctx.frame)
		}
		return cnt
	}
	if opt&OptClosed != 0 {
		return nil
	}
	idx := ctx.containers.Init(id, ctx.frame)
	if idx < 0 {
		ctx.fail("GetContainer", ErrPoolExhausted)
		return nil
	}
	cnt := ctx.containers.At(idx)
	cnt.Open = true
	cnt.head, cnt.tail = -1, -1
	ctx.BringToFront(cnt)
	return cnt
}

// InitContainer registers caller-owned storage for the container called
// name, with rect as its starting geometry. Later calls that refer to name
// use cnt. OptClosed registers it closed.
func (ctx *Context) InitContainer(name string, cnt *Container, rect Rect, opt Opt) {
	id := hashString(ctx.idSeed(), name)
	if _, ok := ctx.external[id]; !ok && len(ctx.external)+ctx.containers.Len() >= ContainerPoolSize {
		ctx.fail("InitContainer", ErrPoolExhausted)
		return
	}
	*cnt = Container{Rect: rect, Open: opt&OptClosed == 0, inited: true, head: -1, tail: -1}
	ctx.external[id] = cnt
	ctx.BringToFront(cnt)
}

// CurrentContainer returns the innermost container being declared.
func (ctx *Context) CurrentContainer() *Container {
	if n := len(ctx.containerStack); n > 0 {
		return ctx.containerStack[n-1]
	}
	return nil
}

// BringToFront gives cnt the highest z-index so far.
func (ctx *Context) BringToFront(cnt *Container) {
	ctx.lastZIndex++
	cnt.ZIndex = ctx.lastZIndex
	if ctx.verbose() {
		ctx.logger.Debug("bring to front", "zindex", cnt.ZIndex, "frame", ctx.frame)
	}
}

func (ctx *Context) pushContainer(cnt *Container) {
	if len(ctx.containerStack) == cap(ctx.containerStack) {
		ctx.fail("pushContainer", ErrStackOverflow)
		return
	}
	ctx.containerStack = append(ctx.containerStack, cnt)
}

func (ctx *Context) beginRootContainer(cnt *Container) {
	ctx.pushContainer(cnt)
	cnt.root = true
	cnt.tail = -1
	if len(ctx.rootList) == cap(ctx.rootList) {
		ctx.fail("beginRootContainer", ErrStackOverflow)
		cnt.head = -1
	} else {
		ctx.rootList = append(ctx.rootList, cnt)
		cnt.head = ctx.pushJump(-1)
	}
	if cnt.Rect.Contains(ctx.input.mousePos) &&
		(ctx.nextHoverRoot == nil || cnt.ZIndex > ctx.nextHoverRoot.ZIndex) {
		ctx.nextHoverRoot = cnt
	}
	// Reset clipping so a root container declared inside another one is
	// not clipped by its parent.
	if len(ctx.clipStack) == cap(ctx.clipStack) {
		ctx.fail("beginRootContainer", ErrStackOverflow)
		return
	}
	ctx.clipStack = append(ctx.clipStack, unclippedRect)
}

func (ctx *Context) endRootContainer() {
	cnt := ctx.CurrentContainer()
	if cnt == nil {
		ctx.fail("endRootContainer", ErrStackUnderflow)
		return
	}
	ctx.closeRootRange(cnt)
	ctx.PopClipRect()
	ctx.popContainer()
}

// closeRootRange ends cnt's command range with its tail jump and points the
// head jump past it.
func (ctx *Context) closeRootRange(cnt *Container) {
	cnt.tail = ctx.pushJump(-1)
	if cnt.head >= 0 {
		ctx.commands[cnt.head].Jump.Dst = len(ctx.commands)
	}
}

func (ctx *Context) pushContainerBody(cnt *Container, body Rect, opt Opt) {
	if opt&OptNoScroll == 0 {
		ctx.scrollbars(cnt, &body)
	}
	ctx.pushLayout(body.Expand(-ctx.style.Padding), cnt.Scroll)
	cnt.Body = body
}

func (ctx *Context) popContainer() {
	cnt := ctx.CurrentContainer()
	if cnt == nil {
		ctx.fail("popContainer", ErrStackUnderflow)
		return
	}
	l := ctx.layout()
	cnt.ContentSize = Vec2{X: max(0, l.max.X-l.body.X), Y: max(0, l.max.Y-l.body.Y)}
	ctx.clampScroll(cnt)
	ctx.containerStack = ctx.containerStack[:len(ctx.containerStack)-1]
	ctx.popLayout()
	ctx.PopID()
}

// maxScroll is how far cnt's content can scroll inside its body.
func (ctx *Context) maxScroll(cnt *Container) Vec2 {
	pad := ctx.style.Padding * 2
	return Vec2{
		X: max(0, cnt.ContentSize.X+pad-cnt.Body.W),
		Y: max(0, cnt.ContentSize.Y+pad-cnt.Body.H),
	}
}

func (ctx *Context) clampScroll(cnt *Container) {
	m := ctx.maxScroll(cnt)
	cnt.Scroll.X = clamp(cnt.Scroll.X, 0, m.X)
	cnt.Scroll.Y = clamp(cnt.Scroll.Y, 0, m.Y)
}

// inHoverRoot reports whether the nearest enclosing root container is the
// one under the pointer.
func (ctx *Context) inHoverRoot() bool {
	for i := len(ctx.containerStack) - 1; i >= 0; i-- {
		cnt := ctx.containerStack[i]
		if cnt == ctx.hoverRoot {
			return true
		}
		if cnt.root {
			break
		}
	}
	return false
}

func (r Rect) transpose() Rect { return Rect{X: r.Y, Y: r.X, W: r.H, H: r.W} }

func (v Vec2) transpose() Vec2 { return Vec2{X: v.Y, Y: v.X} }

func (ctx *Context) scrollbars(cnt *Container, body *Rect) {
	sz := ctx.style.ScrollbarSize
	cs := cnt.ContentSize
	cs.X += ctx.style.Padding * 2
	cs.Y += ctx.style.Padding * 2

	ctx.PushClipRect(*body)
	if cs.Y > body.H {
		body.W -= sz
	}
	if cs.X > body.W {
		body.H -= sz
	}
	ctx.scrollbar(cnt, *body, cs, false)
	ctx.scrollbar(cnt, *body, cs, true)
	ctx.PopClipRect()
}

// scrollbar draws and drives one scrollbar. The horizontal bar runs the
// vertical logic on transposed geometry.
func (ctx *Context) scrollbar(cnt *Container, b Rect, cs Vec2, horizontal bool) {
	name := "!scrollbary"
	scroll, delta := cnt.Scroll, ctx.input.mouseDelta
	if horizontal {
		name = "!scrollbarx"
		b, cs, scroll, delta = b.transpose(), cs.transpose(), scroll.transpose(), delta.transpose()
	}
	orient := func(r Rect) Rect {
		if horizontal {
			return r.transpose()
		}
		return r
	}

	maxScroll := cs.Y - b.H
	if maxScroll > 0 && b.H > 0 {
		id := ctx.GetID(name)
		base := b
		base.X = b.X + b.W
		base.W = ctx.style.ScrollbarSize

		ctx.UpdateControl(id, orient(base), 0)
		if ctx.focus == id && ctx.input.mouseDown == MouseLeft {
			scroll.Y += delta.Y * cs.Y / base.H
		}
		scroll.Y = clamp(scroll.Y, 0, maxScroll)

		ctx.drawFrame(orient(base), ColorScrollBase)
		thumb := base
		thumb.H = max(ctx.style.ThumbSize, base.H*b.H/cs.Y)
		thumb.Y += scroll.Y * (base.H - thumb.H) / maxScroll
		ctx.drawFrame(orient(thumb), ColorScrollThumb)

		if ctx.MouseOver(orient(b)) {
			ctx.scrollTarget = cnt
		}
	} else {
		scroll.Y = 0
	}

	if horizontal {
		scroll = scroll.transpose()
	}
	cnt.Scroll = scroll
}
