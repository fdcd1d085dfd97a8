package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/ui"
)

// widgetRun declares one widget in a title-less window on every frame and
// keeps the result of the latest frame.
type widgetRun struct {
	ctx     *ui.Context
	declare func(ctx *ui.Context) ui.Result
	res     ui.Result
}

func newWidgetRun(declare func(ctx *ui.Context) ui.Result, opts ...ui.Option) *widgetRun {
	return &widgetRun{ctx: newTestContext(opts...), declare: declare}
}

func (w *widgetRun) step() ui.Result {
	frame(w.ctx, func() {
		window(w.ctx, "w", layoutWindow, func() {
			w.res = w.declare(w.ctx)
		})
	})
	return w.res
}

// hover parks the pointer at (x, y) and runs the two frames it takes for
// the window to become the hover root and the widget to become hovered.
func (w *widgetRun) hover(x, y int) {
	w.ctx.InputMouseMove(x, y)
	w.step()
	w.step()
}

func (w *widgetRun) press(x, y int) ui.Result {
	w.ctx.InputMouseDown(x, y, ui.MouseLeft)
	return w.step()
}

func (w *widgetRun) release(x, y int) ui.Result {
	w.ctx.InputMouseUp(x, y, ui.MouseLeft)
	return w.step()
}

func (w *widgetRun) key(k ui.Key) ui.Result {
	w.ctx.InputKeyDown(k)
	w.ctx.InputKeyUp(k)
	return w.step()
}

func (w *widgetRun) text(s string) ui.Result {
	w.ctx.InputText(s)
	return w.step()
}

func TestButtonClick(t *testing.T) {
	w := newWidgetRun(func(ctx *ui.Context) ui.Result { return ctx.Button("ok") })
	w.hover(20, 15)
	assert.Zero(t, w.res)

	res := w.press(20, 15)
	assert.True(t, res.Has(ui.ResActive))
	assert.False(t, res.Has(ui.ResSubmit))

	res = w.release(20, 15)
	assert.True(t, res.Has(ui.ResSubmit))
	assert.False(t, res.Has(ui.ResActive))

	assert.Zero(t, w.step())
}

func TestButtonReleaseOutside(t *testing.T) {
	w := newWidgetRun(func(ctx *ui.Context) ui.Result { return ctx.Button("ok") })
	w.hover(20, 15)
	w.press(20, 15)
	w.ctx.InputMouseMove(200, 150)
	assert.True(t, w.step().Has(ui.ResActive))

	res := w.release(200, 150)
	assert.False(t, res.Has(ui.ResSubmit))
	assert.Zero(t, w.ctx.Focus())
}

func TestButtonClickBetweenFrames(t *testing.T) {
	w := newWidgetRun(func(ctx *ui.Context) ui.Result { return ctx.Button("ok") })
	w.hover(20, 15)

	w.ctx.InputMouseDown(20, 15, ui.MouseLeft)
	w.ctx.InputMouseUp(20, 15, ui.MouseLeft)
	assert.True(t, w.step().Has(ui.ResSubmit))
}

func TestCheckboxTogglesOnPress(t *testing.T) {
	var checked bool
	w := newWidgetRun(func(ctx *ui.Context) ui.Result { return ctx.Checkbox("c", &checked) })
	w.hover(10, 15)

	assert.True(t, w.press(10, 15).Has(ui.ResChange))
	assert.True(t, checked)
	assert.Zero(t, w.release(10, 15))
	assert.True(t, checked)

	w.press(10, 15)
	w.release(10, 15)
	assert.False(t, checked)
}

func TestTextboxTypeAndSubmit(t *testing.T) {
	var buf string
	w := newWidgetRun(func(ctx *ui.Context) ui.Result { return ctx.Textbox("name", &buf) })
	w.hover(20, 15)
	w.press(20, 15)
	w.release(20, 15)
	require.NotZero(t, w.ctx.Focus(), "a textbox keeps focus after release")

	assert.True(t, w.text("ok").Has(ui.ResChange))
	assert.Equal(t, "ok", buf)

	assert.True(t, w.key(ui.KeyBackspace).Has(ui.ResChange))
	assert.Equal(t, "o", buf)

	w.text("k")
	assert.True(t, w.key(ui.KeyReturn).Has(ui.ResSubmit))
	assert.Equal(t, "ok", buf)
	assert.Zero(t, w.ctx.Focus())

	// Unfocused, typing goes nowhere.
	w.text("zz")
	assert.Equal(t, "ok", buf)
}

func TestTextboxMaxLenKeepsRunesWhole(t *testing.T) {
	tests := []struct {
		name   string
		maxLen int
		want   string
	}{
		{name: "cut inside two-byte rune", maxLen: 2, want: "h"},
		{name: "cut after two-byte rune", maxLen: 4, want: "hél"},
		{name: "fits", maxLen: 16, want: "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf string
			w := newWidgetRun(func(ctx *ui.Context) ui.Result {
				return ctx.TextboxEx("t", &buf, tt.maxLen, 0)
			})
			w.hover(20, 15)
			w.press(20, 15)
			w.release(20, 15)
			w.text("héllo")
			assert.Equal(t, tt.want, buf)
		})
	}
}

func TestSliderDrag(t *testing.T) {
	v := 10.0
	w := newWidgetRun(func(ctx *ui.Context) ui.Result {
		ctx.LayoutRow(0, -1)
		return ctx.Slider("s", &v, 0, 100)
	})
	w.hover(100, 15)
	w.press(100, 15)
	assert.InDelta(t, 10.0, v, 1e-9)

	// 290px wide, so 29px moves a tenth of the range.
	w.ctx.InputMouseMove(129, 15)
	assert.True(t, w.step().Has(ui.ResChange))
	assert.InDelta(t, 20.0, v, 1e-9)

	w.ctx.InputMouseMove(1000, 15)
	w.step()
	assert.InDelta(t, 100.0, v, 1e-9)

	w.ctx.InputMouseMove(-1000, 15)
	w.step()
	assert.InDelta(t, 0.0, v, 1e-9)
}

func TestSliderStep(t *testing.T) {
	v := 10.0
	w := newWidgetRun(func(ctx *ui.Context) ui.Result {
		ctx.LayoutRow(0, -1)
		return ctx.SliderEx("s", &v, 0, 100, 5, "%.0f", 0)
	})
	w.hover(100, 15)
	w.press(100, 15)
	w.ctx.InputMouseMove(120, 15)
	w.step()
	// 10 + 20*100/290 = 16.9, snapped to 15.
	assert.InDelta(t, 15.0, v, 1e-9)
}

func TestNumberEdit(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  float64
	}{
		{name: "valid", typed: "42", want: 42},
		{name: "garbage reverts", typed: "abc", want: 5},
		{name: "nan reverts", typed: "nan", want: 5},
		{name: "inf reverts", typed: "inf", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := 5.0
			w := newWidgetRun(func(ctx *ui.Context) ui.Result {
				return ctx.Number("n", &v, 1)
			})
			w.hover(20, 15)
			w.press(20, 15)
			w.release(20, 15)

			// A second click on the focused field switches to text entry,
			// seeded with the current value.
			w.press(20, 15)
			w.release(20, 15)
			w.key(ui.KeyBackspace)
			w.text(tt.typed)
			w.key(ui.KeyReturn)

			assert.InDelta(t, tt.want, v, 1e-9)
		})
	}
}

func TestNumberDrag(t *testing.T) {
	v := 5.0
	w := newWidgetRun(func(ctx *ui.Context) ui.Result {
		return ctx.Number("n", &v, 0.5)
	})
	w.hover(20, 15)
	w.press(20, 15)
	w.ctx.InputMouseMove(30, 15)
	assert.True(t, w.step().Has(ui.ResChange))
	assert.InDelta(t, 10.0, v, 1e-9)
}

func TestHeaderToggle(t *testing.T) {
	for _, opt := range []ui.Opt{0, ui.OptExpanded} {
		w := newWidgetRun(func(ctx *ui.Context) ui.Result {
			return ctx.Header("h", opt)
		})
		initial := opt&ui.OptExpanded != 0
		w.hover(50, 15)
		assert.Equal(t, initial, w.res.Has(ui.ResActive))

		assert.Equal(t, !initial, w.press(50, 15).Has(ui.ResActive))
		assert.Equal(t, !initial, w.release(50, 15).Has(ui.ResActive))
		assert.Equal(t, !initial, w.step().Has(ui.ResActive))

		w.press(50, 15)
		assert.Equal(t, initial, w.release(50, 15).Has(ui.ResActive))
	}
}

func TestTreeNodeScopesAndIndents(t *testing.T) {
	ctx := newTestContext()
	var nodeID, scoped ui.ID
	var child ui.Rect
	frame(ctx, func() {
		window(ctx, "w", layoutWindow, func() {
			nodeID = ctx.GetID("node")
			if ctx.BeginTreeNode("node", ui.OptExpanded).Has(ui.ResActive) {
				scoped = ctx.CurrentID()
				child = ctx.LayoutNext()
				ctx.EndTreeNode()
			}
		})
	})

	assert.Equal(t, nodeID, scoped)
	style := ui.DefaultStyle()
	assert.Equal(t, 5+style.Indent, child.X)
	assert.Equal(t, 290-style.Indent, child.W)
}

func TestCollapsedTreeNode(t *testing.T) {
	ctx := newTestContext()
	var res ui.Result
	frame(ctx, func() {
		window(ctx, "w", layoutWindow, func() {
			res = ctx.BeginTreeNode("node", 0)
		})
	})
	assert.False(t, res.Has(ui.ResActive))
}

func TestTextWraps(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "word wrap", text: "aaaa bbbb cccc dddd eeee", want: []string{"aaaa bbbb cccc dddd", "eeee"}},
		{name: "newline", text: "ab\ncd", want: []string{"ab", "cd"}},
		{name: "single word", text: "word", want: []string{"word"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			frame(ctx, func() {
				window(ctx, "w", ui.Rect{W: 200, H: 200}, func() {
					ctx.LayoutRow(0, -1)
					ctx.Text(tt.text)
				})
			})
			assert.Equal(t, tt.want, texts(ctx))
		})
	}
}

func TestHoverAndFocusDropWhenUndeclared(t *testing.T) {
	show := true
	w := newWidgetRun(func(ctx *ui.Context) ui.Result {
		if !show {
			return 0
		}
		var buf string
		return ctx.Textbox("t", &buf)
	})
	w.hover(20, 15)
	require.NotZero(t, w.ctx.Hover())
	w.press(20, 15)
	w.release(20, 15)
	require.NotZero(t, w.ctx.Focus())

	show = false
	w.step()
	assert.Zero(t, w.ctx.Hover())
	assert.Zero(t, w.ctx.Focus())
}

func TestPopupClosesOnOutsidePress(t *testing.T) {
	ctx := newTestContext()
	open := false
	declare := func() bool {
		var shown bool
		frame(ctx, func() {
			if open {
				ctx.OpenPopup("menu")
				open = false
			}
			if ctx.BeginPopup("menu") {
				shown = true
				ctx.Label("item")
				ctx.EndPopup()
			}
		})
		return shown
	}

	assert.False(t, declare())

	ctx.InputMouseMove(10, 10)
	open = true
	assert.True(t, declare())
	assert.True(t, declare())

	ctx.InputMouseMove(500, 500)
	assert.True(t, declare())
	ctx.InputMouseDown(500, 500, ui.MouseLeft)
	assert.True(t, declare(), "the popup is still declared on the closing frame")
	ctx.InputMouseUp(500, 500, ui.MouseLeft)
	assert.False(t, declare())
}

func TestPopupSurvivesOpeningPress(t *testing.T) {
	ctx := newTestContext()
	ctx.InputMouseDown(10, 10, ui.MouseLeft)
	var shown bool
	frame(ctx, func() {
		ctx.OpenPopup("menu")
		if ctx.BeginPopup("menu") {
			shown = true
			ctx.EndPopup()
		}
	})
	assert.True(t, shown)
	assert.True(t, ctx.GetContainer("menu").Open)
}

func TestStyleStack(t *testing.T) {
	ctx := newTestContext()
	red := ui.RGBA(255, 0, 0, 255)
	var colors []ui.Color
	frame(ctx, func() {
		window(ctx, "w", layoutWindow, func() {
			ctx.PushStyleColor(ui.ColorText, red)
			ctx.Label("red")
			ctx.PopStyle()
			ctx.Label("plain")
		})
	})
	for cmd := range ctx.Commands() {
		if cmd.Type == ui.CommandText {
			colors = append(colors, cmd.Text.Color)
		}
	}
	assert.Equal(t, []ui.Color{red, ui.DefaultStyle().Colors[ui.ColorText]}, colors)
}

func TestIconButtonIDDistinctFromLabel(t *testing.T) {
	var iconID, labelID ui.ID
	var labelRes ui.Result
	w := newWidgetRun(func(ctx *ui.Context) ui.Result {
		res := ctx.ButtonEx("", ui.IconClose, 0)
		iconID = ctx.LastID()
		labelRes = ctx.Button("1")
		labelID = ctx.LastID()
		return res
	})
	w.hover(20, 15)
	assert.NotEqual(t, iconID, labelID)

	w.press(20, 15)
	assert.True(t, w.res.Has(ui.ResActive))
	assert.Zero(t, labelRes)

	w.release(20, 15)
	assert.True(t, w.res.Has(ui.ResSubmit))
	assert.Zero(t, labelRes)
}

func TestDrawControlFrameColors(t *testing.T) {
	style := ui.DefaultStyle()
	r := ui.Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name  string
		color ui.ColorID
		want  ui.ColorID
	}{
		{name: "button shifts", color: ui.ColorButton, want: ui.ColorButtonFocus},
		{name: "base shifts", color: ui.ColorBase, want: ui.ColorBaseFocus},
		{name: "scroll thumb", color: ui.ColorScrollThumb, want: ui.ColorScrollThumb},
		{name: "scroll base", color: ui.ColorScrollBase, want: ui.ColorScrollBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			require.NotPanics(t, func() {
				frame(ctx, func() {
					window(ctx, "w", layoutWindow, func() {
						id := ctx.GetID("control")
						ctx.SetFocus(id)
						ctx.DrawControlFrame(id, r, tt.color, 0)
					})
				})
			})

			var found bool
			for _, cmd := range drawn(ctx) {
				if cmd.Type == ui.CommandRect && cmd.Rect.Rect == r {
					found = true
					assert.Equal(t, style.Colors[tt.want], cmd.Rect.Color)
				}
			}
			assert.True(t, found)
		})
	}
}
