package ui

// Interaction reports the pointer edges UpdateControl saw for a control.
type Interaction struct {
	Pressed  bool // the control took focus from a press this frame
	Released bool // the button was released over the focused control this frame
}

// MouseOver reports whether the pointer is over r, inside the current clip
// rectangle, and inside the topmost root container.
func (ctx *Context) MouseOver(r Rect) bool {
	p := ctx.input.mousePos
	return r.Contains(p) && ctx.ClipRect().Contains(p) && ctx.inHoverRoot()
}

// UpdateControl runs the hover/focus state machine for the control id
// occupying r.
//
// A control becomes hovered while the pointer is over it with no button
// held, takes focus when pressed while hovered, and loses focus on a press
// elsewhere or, unless OptHoldFocus is set, when the button is released.
func (ctx *Context) UpdateControl(id ID, r Rect, opt Opt) Interaction {
	var ev Interaction
	over := ctx.MouseOver(r)
	in := &ctx.input

	if ctx.focus == id {
		ctx.updatedFocus = true
	}
	if opt&OptNoInteract != 0 {
		return ev
	}
	if over && in.mouseDown == 0 {
		ctx.hover = id
	}

	if ctx.focus == id {
		if in.mousePressed != 0 && !over {
			ctx.SetFocus(0)
		}
		if in.mouseDown == 0 && opt&OptHoldFocus == 0 {
			ev.Released = in.mouseReleased != 0 && over
			ctx.SetFocus(0)
		}
	}

	if ctx.hover == id {
		switch {
		case in.mousePressed != 0:
			ctx.SetFocus(id)
			ev.Pressed = true
			// Pressed and released between two frames.
			if in.mouseDown == 0 && opt&OptHoldFocus == 0 && over {
				ev.Released = true
			}
		case !over:
			ctx.hover = 0
		}
	}
	if ctx.hover == id {
		ctx.updatedHover = true
	}
	return ev
}

// drawFrame fills r with the color role and outlines it with the border
// color, except for roles that are drawn flat.
func (ctx *Context) drawFrame(r Rect, colorID ColorID) {
	ctx.DrawRect(r, ctx.style.Colors[colorID])
	if colorID == ColorScrollBase || colorID == ColorScrollThumb || colorID == ColorTitleBg {
		return
	}
	if border := ctx.style.Colors[ColorBorder]; border.A != 0 {
		ctx.DrawBox(r.Expand(1), border)
	}
}

// DrawControlFrame draws a control's background. ColorButton and ColorBase
// shift to their hover or focus variant; other roles are drawn as given.
func (ctx *Context) DrawControlFrame(id ID, r Rect, colorID ColorID, opt Opt) {
	if opt&OptNoFrame != 0 {
		return
	}
	if colorID == ColorButton || colorID == ColorBase {
		switch {
		case ctx.focus == id:
			colorID += 2
		case ctx.hover == id:
			colorID++
		}
	}
	ctx.drawFrame(r, colorID)
}

// DrawControlText draws str vertically centered in r, aligned according to
// opt and clipped to r.
func (ctx *Context) DrawControlText(str string, r Rect, colorID ColorID, opt Opt) {
	font := ctx.style.Font
	tw := ctx.textWidth(font, str)
	ctx.PushClipRect(r)
	pos := Vec2{Y: r.Y + (r.H-ctx.textHeight(font))/2}
	switch {
	case opt&OptAlignCenter != 0:
		pos.X = r.X + (r.W-tw)/2
	case opt&OptAlignRight != 0:
		pos.X = r.X + r.W - tw - ctx.style.Padding
	default:
		pos.X = r.X + ctx.style.Padding
	}
	ctx.DrawText(font, str, pos, ctx.style.Colors[colorID])
	ctx.PopClipRect()
}
