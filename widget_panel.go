package ui

// Minimum size a window can be resized to.
const (
	minWindowW = 96
	minWindowH = 64
)

// BeginWindow starts a window called title. rect is its geometry the first
// time it is seen; afterwards the window keeps the position and size the
// user dragged it to. It returns false when the window is closed, in which
// case EndWindow must not be called.
func (ctx *Context) BeginWindow(title string, rect Rect, opt Opt) bool {
	id := ctx.GetID(title)
	cnt := ctx.getContainer(id, opt)
	if cnt == nil || !cnt.Open {
		return false
	}
	ctx.pushIDValue(id)

	if !cnt.inited {
		cnt.inited = true
		cnt.Rect = rect
	}
	ctx.beginRootContainer(cnt)
	r := cnt.Rect
	body := r
	style := &ctx.style
	delta := ctx.input.mouseDelta

	if opt&OptNoFrame == 0 {
		ctx.drawFrame(r, ColorWindowBg)
	}

	if opt&OptNoTitle == 0 {
		tr := r
		tr.H = style.TitleHeight
		ctx.drawFrame(tr, ColorTitleBg)

		tid := ctx.GetID("!title")
		ctx.UpdateControl(tid, tr, opt)
		ctx.DrawControlText(title, tr, ColorTitleText, opt)
		if tid == ctx.focus && ctx.input.mouseDown == MouseLeft {
			cnt.Rect.X += delta.X
			cnt.Rect.Y += delta.Y
		}
		body.Y += tr.H
		body.H -= tr.H

		if opt&OptNoClose == 0 {
			cid := ctx.GetID("!close")
			cr := Rect{X: tr.X + tr.W - tr.H, Y: tr.Y, W: tr.H, H: tr.H}
			ctx.DrawIcon(IconClose, cr, style.Colors[ColorTitleText])
			ev := ctx.UpdateControl(cid, cr, opt)
			if ev.Pressed && ctx.input.mousePressed == MouseLeft {
				cnt.Open = false
				ctx.logger.Debug("window closed", "title", title, "frame", ctx.frame)
			}
		}
	}

	ctx.pushContainerBody(cnt, body, opt)

	if opt&OptNoResize == 0 {
		sz := style.TitleHeight
		rid := ctx.GetID("!resize")
		rr := Rect{X: r.X + r.W - sz, Y: r.Y + r.H - sz, W: sz, H: sz}
		ctx.UpdateControl(rid, rr, opt)
		if rid == ctx.focus && ctx.input.mouseDown == MouseLeft {
			cnt.Rect.W = max(minWindowW, cnt.Rect.W+delta.X)
			cnt.Rect.H = max(minWindowH, cnt.Rect.H+delta.Y)
		}
	}

	if opt&OptAutoSize != 0 {
		lb := ctx.layout().body
		cnt.Rect.W = cnt.ContentSize.X + (cnt.Rect.W - lb.W)
		cnt.Rect.H = cnt.ContentSize.Y + (cnt.Rect.H - lb.H)
	}

	// A popup closes when the pointer is pressed anywhere outside it.
	if opt&OptPopup != 0 && ctx.input.mousePressed != 0 && ctx.hoverRoot != cnt {
		cnt.Open = false
		ctx.logger.Debug("popup closed", "frame", ctx.frame)
	}

	ctx.PushClipRect(cnt.Body)
	return true
}

// EndWindow closes the window begun by a successful BeginWindow.
func (ctx *Context) EndWindow() {
	ctx.PopClipRect()
	ctx.endRootContainer()
}

// OpenPopup opens the popup called name at the pointer and raises it. The
// matching BeginPopup shows it from then on, this frame included when it is
// declared later.
func (ctx *Context) OpenPopup(name string) {
	cnt := ctx.GetContainer(name)
	if cnt == nil {
		return
	}
	// Count the popup as hovered so the press that opened it does not
	// close it again.
	ctx.hoverRoot = cnt
	ctx.nextHoverRoot = cnt
	p := ctx.input.mousePos
	cnt.Rect = Rect{X: p.X, Y: p.Y, W: 1, H: 1}
	cnt.inited = true
	cnt.Open = true
	ctx.BringToFront(cnt)
	ctx.logger.Debug("popup opened", "name", name, "frame", ctx.frame)
}

// BeginPopup starts the popup called name. It sizes itself to its content
// and returns false while closed.
func (ctx *Context) BeginPopup(name string) bool {
	opt := OptPopup | OptAutoSize | OptNoResize | OptNoScroll | OptNoTitle | OptClosed
	return ctx.BeginWindow(name, Rect{}, opt)
}

// EndPopup closes a popup begun by a successful BeginPopup.
func (ctx *Context) EndPopup() {
	ctx.EndWindow()
}

// BeginPanel starts a scrollable panel in the next layout cell. Panels have
// no title bar and paint in their parent's command range.
func (ctx *Context) BeginPanel(name string, opt Opt) {
	id := ctx.GetID(name)
	ctx.pushIDValue(id)
	cnt := ctx.getContainer(id, opt&^OptClosed)
	if cnt == nil {
		// Pool exhausted in saturating mode: fall back to a scratch record
		// so the caller's EndPanel stays balanced.
		ctx.scratchPanel = Container{}
		cnt = &ctx.scratchPanel
	}
	cnt.root = false
	cnt.Rect = ctx.LayoutNext()
	if opt&OptNoFrame == 0 {
		ctx.drawFrame(cnt.Rect, ColorPanelBg)
	}
	ctx.pushContainer(cnt)
	ctx.pushContainerBody(cnt, cnt.Rect, opt)
	ctx.PushClipRect(cnt.Body)
}

// EndPanel closes the panel begun by BeginPanel.
func (ctx *Context) EndPanel() {
	ctx.PopClipRect()
	ctx.popContainer()
}
