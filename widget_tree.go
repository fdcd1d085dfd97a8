package ui

func (ctx *Context) header(label string, treeNode bool, opt Opt) Result {
	id := ctx.GetID(label)
	idx := ctx.treeNodes.Get(id)
	ctx.LayoutRow(0, -1)

	// A pool entry means the node was toggled away from its default.
	toggled := idx >= 0
	r := ctx.LayoutNext()
	ev := ctx.UpdateControl(id, r, 0)
	if ev.Pressed && ctx.input.mousePressed == MouseLeft {
		toggled = !toggled
	}

	switch {
	case idx >= 0 && toggled:
		ctx.treeNodes.Update(idx, ctx.frame)
	case idx >= 0:
		ctx.treeNodes.Remove(idx)
	case toggled:
		if ctx.treeNodes.Init(id, ctx.frame) < 0 {
			ctx.fail("header", ErrPoolExhausted)
		}
	}

	expanded := toggled
	if opt&OptExpanded != 0 {
		expanded = !toggled
	}

	if treeNode {
		if ctx.hover == id {
			ctx.drawFrame(r, ColorButtonHover)
		}
	} else {
		ctx.DrawControlFrame(id, r, ColorButton, 0)
	}
	icon := IconCollapsed
	if expanded {
		icon = IconExpanded
	}
	ctx.DrawIcon(icon, Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}, ctx.style.Colors[ColorText])
	r.X += r.H - ctx.style.Padding
	r.W -= r.H - ctx.style.Padding
	ctx.DrawControlText(label, r, ColorText, 0)

	if expanded {
		return ResActive
	}
	return 0
}

// Header draws a full-width collapsible header. It returns ResActive while
// expanded. OptExpanded makes it start expanded.
func (ctx *Context) Header(label string, opt Opt) Result {
	return ctx.header(label, false, opt)
}

// BeginTreeNode draws a collapsible tree node. While it returns ResActive
// the caller declares the children and must call EndTreeNode; children are
// indented and their IDs are scoped under the node.
func (ctx *Context) BeginTreeNode(label string, opt Opt) Result {
	res := ctx.header(label, true, opt)
	if res&ResActive != 0 {
		ctx.layout().indent += ctx.style.Indent
		ctx.pushIDValue(ctx.lastID)
	}
	return res
}

// EndTreeNode closes a tree node opened by BeginTreeNode.
func (ctx *Context) EndTreeNode() {
	ctx.layout().indent -= ctx.style.Indent
	ctx.PopID()
}
