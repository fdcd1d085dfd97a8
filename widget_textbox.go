package ui

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// DefaultTextboxLen is the byte capacity Textbox gives its buffer.
const DefaultTextboxLen = 128

// Textbox draws a single-line text field editing buf. Typed text is
// appended, backspace removes the last grapheme cluster, and return
// reports ResSubmit and releases focus.
func (ctx *Context) Textbox(label string, buf *string) Result {
	return ctx.TextboxEx(label, buf, DefaultTextboxLen, 0)
}

// TextboxEx is Textbox with an explicit byte capacity and options.
func (ctx *Context) TextboxEx(label string, buf *string, maxLen int, opt Opt) Result {
	id := ctx.GetID(label)
	r := ctx.LayoutNext()
	return ctx.TextboxRaw(buf, maxLen, id, r, opt)
}

// TextboxRaw is the text field machinery without ID derivation or layout,
// for widgets that embed a text field in a rectangle they own.
func (ctx *Context) TextboxRaw(buf *string, maxLen int, id ID, r Rect, opt Opt) Result {
	var res Result
	ctx.UpdateControl(id, r, opt|OptHoldFocus)

	if ctx.focus == id {
		in := &ctx.input
		if in.textLen > 0 {
			n := min(maxLen-len(*buf), in.textLen)
			// Never split a UTF-8 sequence at the capacity edge.
			for n > 0 && n < in.textLen && !utf8.RuneStart(in.text[n]) {
				n--
			}
			if n > 0 {
				*buf += string(in.text[:n])
				res |= ResChange
			}
		}
		if in.keyPressed&KeyBackspace != 0 && len(*buf) > 0 {
			*buf = trimLastGrapheme(*buf)
			res |= ResChange
		}
		if in.keyPressed&KeyReturn != 0 {
			ctx.SetFocus(0)
			res |= ResSubmit
		}
	}

	ctx.DrawControlFrame(id, r, ColorBase, opt)
	if ctx.focus == id {
		color := ctx.style.Colors[ColorText]
		font := ctx.style.Font
		textw := ctx.textWidth(font, *buf)
		texth := ctx.textHeight(font)
		ofx := r.W - ctx.style.Padding - textw - 1
		textx := r.X + min(ofx, ctx.style.Padding)
		texty := r.Y + (r.H-texth)/2
		ctx.PushClipRect(r)
		ctx.DrawText(font, *buf, Vec2{X: textx, Y: texty}, color)
		ctx.DrawRect(Rect{X: textx + textw, Y: texty, W: 1, H: texth}, color)
		ctx.PopClipRect()
	} else {
		ctx.DrawControlText(*buf, r, ColorText, opt)
	}
	return res
}

// trimLastGrapheme drops the last user-perceived character of s.
func trimLastGrapheme(s string) string {
	rest := s
	state := -1
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:len(s)-len(cluster)]
}
