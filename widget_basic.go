package ui

// Text draws word-wrapped text filling the width of the current row.
// Explicit newlines start a new line.
func (ctx *Context) Text(text string) {
	font := ctx.style.Font
	color := ctx.style.Colors[ColorText]
	ctx.LayoutBeginColumn()
	ctx.LayoutRow(ctx.textHeight(font), -1)
	p := 0
	for {
		r := ctx.LayoutNext()
		w := 0
		start, end := p, p
		for {
			word := p
			for p < len(text) && text[p] != ' ' && text[p] != '\n' {
				p++
			}
			w += ctx.textWidth(font, text[word:p])
			if w > r.W && end != start {
				break
			}
			if p < len(text) {
				w += ctx.textWidth(font, text[p:p+1])
			}
			end = p
			p++
			if end >= len(text) || text[end] == '\n' {
				break
			}
		}
		if end > start {
			ctx.DrawText(font, text[start:end], Vec2{X: r.X, Y: r.Y}, color)
		}
		p = end + 1
		if end >= len(text) {
			break
		}
	}
	ctx.LayoutEndColumn()
}

// Label draws a single line of text in the next layout cell.
func (ctx *Context) Label(text string) {
	ctx.DrawControlText(text, ctx.LayoutNext(), ColorText, 0)
}

// Button draws a centered text button. It reports ResSubmit when clicked.
func (ctx *Context) Button(label string) Result {
	return ctx.ButtonEx(label, IconNone, OptAlignCenter)
}

// ButtonEx draws a button with an optional label and icon. The result has
// ResActive while the button is held and ResSubmit on the frame the button
// is released over it.
func (ctx *Context) ButtonEx(label string, icon Icon, opt Opt) Result {
	var id ID
	if label != "" {
		id = ctx.GetID(label)
	} else {
		id = ctx.GetIDBytes([]byte{'!', 'i', 'c', 'o', 'n', byte(icon)})
	}
	r := ctx.LayoutNext()
	ev := ctx.UpdateControl(id, r, opt)

	var res Result
	if ctx.focus == id {
		res |= ResActive
	}
	if ev.Released {
		res |= ResSubmit
	}

	ctx.DrawControlFrame(id, r, ColorButton, opt)
	if label != "" {
		ctx.DrawControlText(label, r, ColorText, opt)
	}
	if icon != IconNone {
		ctx.DrawIcon(icon, r, ctx.style.Colors[ColorText])
	}
	return res
}

// Checkbox draws a checkbox bound to state and toggles it on a left click.
func (ctx *Context) Checkbox(label string, state *bool) Result {
	var res Result
	id := ctx.GetID(label)
	r := ctx.LayoutNext()
	box := Rect{X: r.X, Y: r.Y, W: r.H, H: r.H}
	ev := ctx.UpdateControl(id, r, 0)

	if ev.Pressed && ctx.input.mousePressed == MouseLeft {
		res |= ResChange
		*state = !*state
	}

	ctx.DrawControlFrame(id, box, ColorBase, 0)
	if *state {
		ctx.DrawIcon(IconCheck, box, ctx.style.Colors[ColorText])
	}
	r = Rect{X: r.X + box.W, Y: r.Y, W: r.W - box.W, H: r.H}
	ctx.DrawControlText(label, r, ColorText, 0)
	return res
}
