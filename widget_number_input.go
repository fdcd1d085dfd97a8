package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultNumberFormat formats number field values.
	DefaultNumberFormat = "%.3g"
	// maxNumberText bounds the text typed into a slider or number field.
	maxNumberText = 127
)

// Number draws a field whose value changes by step per pixel dragged.
func (ctx *Context) Number(label string, value *float64, step float64) Result {
	return ctx.NumberEx(label, value, step, DefaultNumberFormat, OptAlignCenter)
}

// NumberEx is Number with an explicit format and options. Like sliders,
// a second click while focused switches to text entry.
func (ctx *Context) NumberEx(label string, value *float64, step float64, format string, opt Opt) Result {
	var res Result
	id := ctx.GetID(label)
	base := ctx.LayoutNext()
	last := *value

	if ctx.numberTextbox(value, base, id) {
		return res
	}

	ctx.UpdateControl(id, base, opt|OptHoldFocus)
	if ctx.focus == id && ctx.input.mouseDown == MouseLeft {
		*value += float64(ctx.input.mouseDelta.X) * step
	}
	if *value != last {
		res |= ResChange
	}

	ctx.DrawControlFrame(id, base, ColorBase, opt)
	ctx.DrawControlText(fmt.Sprintf(format, *value), base, ColorText, opt)
	return res
}

// numberTextbox runs the text-entry mode shared by sliders and number
// fields. It returns true while the field with id is being edited as text.
// A committed edit updates *value only when the text parses as a finite
// number.
func (ctx *Context) numberTextbox(value *float64, r Rect, id ID) bool {
	in := &ctx.input
	if in.mousePressed == MouseLeft && ctx.hover == id && ctx.numberEdit != id &&
		(ctx.focus == id || in.keyDown&KeyShift != 0) {
		ctx.numberEdit = id
		ctx.numberEditBuf = strconv.FormatFloat(*value, 'g', -1, 64)
	}
	if ctx.numberEdit != id {
		return false
	}

	res := ctx.TextboxRaw(&ctx.numberEditBuf, maxNumberText, id, r, 0)
	if res&ResSubmit == 0 && ctx.focus == id {
		return true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(ctx.numberEditBuf), 64)
	switch {
	case err != nil:
		ctx.logger.Debug("number edit discarded", "id", id, "text", ctx.numberEditBuf, "err", err)
	case math.IsNaN(f) || math.IsInf(f, 0):
		ctx.logger.Debug("number edit discarded", "id", id, "text", ctx.numberEditBuf)
	default:
		*value = f
	}
	ctx.numberEdit = 0
	ctx.numberEditBuf = ""
	return false
}
