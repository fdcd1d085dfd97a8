package ui

import (
	"fmt"
	"math"
)

// DefaultSliderFormat formats slider values.
const DefaultSliderFormat = "%.2f"

// Slider draws a horizontal slider editing value within [lo, hi].
func (ctx *Context) Slider(label string, value *float64, lo, hi float64) Result {
	return ctx.SliderEx(label, value, lo, hi, 0, DefaultSliderFormat, OptAlignCenter)
}

// SliderEx draws a slider. Dragging moves the value by the drag distance
// scaled from the slider's pixel width to the range; a non-zero step
// snaps it. Clicking the slider again while it has focus, or shift-clicking
// it, turns it into a text field for typing an exact value.
func (ctx *Context) SliderEx(label string, value *float64, lo, hi, step float64, format string, opt Opt) Result {
	var res Result
	last := *value
	v := last
	id := ctx.GetID(label)
	base := ctx.LayoutNext()

	if ctx.numberTextbox(&v, base, id) {
		return res
	}

	ev := ctx.UpdateControl(id, base, opt|OptHoldFocus)
	in := &ctx.input
	if ev.Pressed {
		ctx.dragOriginX = in.mousePos.X
		ctx.dragOrigin = v
	}
	if ctx.focus == id && (in.mouseDown|in.mousePressed) == MouseLeft && base.W > 0 {
		v = ctx.dragOrigin + float64(in.mousePos.X-ctx.dragOriginX)*(hi-lo)/float64(base.W)
		if step != 0 {
			v = math.Floor((v+step/2)/step) * step
		}
	}

	v = clampf(v, lo, hi)
	*value = v
	if last != v {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	w := ctx.style.ThumbSize
	x := 0
	if hi > lo {
		x = int((v - lo) * float64(base.W-w) / (hi - lo))
	}
	thumb := Rect{X: base.X + x, Y: base.Y, W: w, H: base.H}
	ctx.DrawControlFrame(id, thumb, ColorButton, opt)
	ctx.DrawControlText(fmt.Sprintf(format, v), base, ColorText, opt)
	return res
}
