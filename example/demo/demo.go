// Package demo declares the sample interface shared by the example
// programs: a widget showcase, a log with a text input and a live style
// editor.
package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-theft-auto/ui"
)

// logLimit bounds the log window's history.
const logLimit = 256

// State holds everything the demo windows edit. The zero value is not
// usable; call New.
type State struct {
	Background [3]float64

	logLines   []string
	logUpdated bool
	input      string
	checks     [3]bool

	demoWin, logWin, styleWin ui.Container
	inited                    bool
}

// New returns the demo in its initial state.
func New() *State {
	return &State{
		Background: [3]float64{90, 95, 100},
		checks:     [3]bool{true, false, true},
	}
}

// BackgroundColor is the clear color picked with the sliders.
func (s *State) BackgroundColor() ui.Color {
	return ui.RGBA(uint8(s.Background[0]), uint8(s.Background[1]), uint8(s.Background[2]), 0xff)
}

// Log appends a line to the log window.
func (s *State) Log(line string) {
	s.logLines = append(s.logLines, line)
	if n := len(s.logLines); n > logLimit {
		s.logLines = append(s.logLines[:0], s.logLines[n-logLimit:]...)
	}
	s.logUpdated = true
	slog.Debug("demo log", "line", line)
}

// Lines returns the log contents.
func (s *State) Lines() []string { return s.logLines }

// Frame declares all demo windows. It must be called between Begin and
// End.
func (s *State) Frame(ctx *ui.Context) {
	if !s.inited {
		ctx.InitContainer("Demo Window", &s.demoWin, ui.Rect{X: 40, Y: 40, W: 300, H: 450}, 0)
		ctx.InitContainer("Log Window", &s.logWin, ui.Rect{X: 350, Y: 40, W: 300, H: 200}, 0)
		ctx.InitContainer("Style Editor", &s.styleWin, ui.Rect{X: 350, Y: 250, W: 300, H: 240}, 0)
		s.inited = true
	}
	s.testWindow(ctx)
	s.logWindow(ctx)
	s.styleWindow(ctx)
}

func (s *State) testWindow(ctx *ui.Context) {
	s.demoWin.Rect.W = max(s.demoWin.Rect.W, 240)
	s.demoWin.Rect.H = max(s.demoWin.Rect.H, 300)
	if !ctx.BeginWindow("Demo Window", s.demoWin.Rect, 0) {
		return
	}
	defer ctx.EndWindow()

	if ctx.Header("Window Info", 0).Has(ui.ResActive) {
		ctx.LayoutRow(0, 54, -1)
		ctx.Label("Position:")
		ctx.Label(fmt.Sprintf("%d, %d", s.demoWin.Rect.X, s.demoWin.Rect.Y))
		ctx.Label("Size:")
		ctx.Label(fmt.Sprintf("%d, %d", s.demoWin.Rect.W, s.demoWin.Rect.H))
	}

	if ctx.Header("Test Buttons", ui.OptExpanded).Has(ui.ResActive) {
		ctx.LayoutRow(0, 86, -110, -1)
		ctx.Label("Test buttons 1:")
		s.button(ctx, "Button 1")
		s.button(ctx, "Button 2")
		ctx.Label("Test buttons 2:")
		s.button(ctx, "Button 3")
		s.button(ctx, "Button 4")
	}

	if ctx.Header("Tree and Text", ui.OptExpanded).Has(ui.ResActive) {
		ctx.LayoutRow(0, 140, -1)
		ctx.LayoutBeginColumn()
		s.tree(ctx)
		ctx.LayoutEndColumn()

		ctx.LayoutBeginColumn()
		ctx.LayoutRow(0, -1)
		ctx.Text("Lorem ipsum dolor sit amet, consectetur adipiscing " +
			"elit. Maecenas lacinia, sem eu lacinia molestie, mi risus faucibus " +
			"ipsum, eu varius magna felis a nulla.")
		ctx.LayoutEndColumn()
	}

	if ctx.Header("Background Color", ui.OptExpanded).Has(ui.ResActive) {
		ctx.LayoutRow(74, -78, -1)
		ctx.LayoutBeginColumn()
		ctx.LayoutRow(0, 46, -1)
		ctx.Label("Red:")
		ctx.Slider("red", &s.Background[0], 0, 255)
		ctx.Label("Green:")
		ctx.Slider("green", &s.Background[1], 0, 255)
		ctx.Label("Blue:")
		ctx.Slider("blue", &s.Background[2], 0, 255)
		ctx.LayoutEndColumn()

		r := ctx.LayoutNext()
		c := s.BackgroundColor()
		ctx.DrawRect(r, c)
		ctx.DrawControlText(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B), r, ui.ColorText, ui.OptAlignCenter)
	}
}

func (s *State) tree(ctx *ui.Context) {
	if ctx.BeginTreeNode("Test 1", 0).Has(ui.ResActive) {
		if ctx.BeginTreeNode("Test 1a", 0).Has(ui.ResActive) {
			ctx.Label("Hello")
			ctx.Label("world")
			ctx.EndTreeNode()
		}
		if ctx.BeginTreeNode("Test 1b", 0).Has(ui.ResActive) {
			s.button(ctx, "Button 1")
			s.button(ctx, "Button 2")
			ctx.EndTreeNode()
		}
		ctx.EndTreeNode()
	}
	if ctx.BeginTreeNode("Test 2", 0).Has(ui.ResActive) {
		ctx.LayoutRow(0, 54, 54)
		s.button(ctx, "Button 3")
		s.button(ctx, "Button 4")
		s.button(ctx, "Button 5")
		s.button(ctx, "Button 6")
		ctx.EndTreeNode()
	}
	if ctx.BeginTreeNode("Test 3", 0).Has(ui.ResActive) {
		ctx.Checkbox("Checkbox 1", &s.checks[0])
		ctx.Checkbox("Checkbox 2", &s.checks[1])
		ctx.Checkbox("Checkbox 3", &s.checks[2])
		ctx.EndTreeNode()
	}
}

func (s *State) button(ctx *ui.Context, label string) {
	if ctx.Button(label).Has(ui.ResSubmit) {
		s.Log("Pressed " + strings.ToLower(label))
	}
}

func (s *State) logWindow(ctx *ui.Context) {
	if !ctx.BeginWindow("Log Window", s.logWin.Rect, 0) {
		return
	}
	defer ctx.EndWindow()

	ctx.LayoutRow(-28, -1)
	ctx.BeginPanel("log", 0)
	ctx.LayoutRow(-1, -1)
	ctx.Text(strings.Join(s.logLines, "\n"))
	ctx.EndPanel()
	if s.logUpdated {
		if panel := ctx.GetContainer("log"); panel != nil {
			panel.Scroll.Y = panel.ContentSize.Y
		}
		s.logUpdated = false
	}

	submitted := false
	ctx.LayoutRow(0, -70, -1)
	if ctx.Textbox("input", &s.input).Has(ui.ResSubmit) {
		ctx.SetFocus(ctx.LastID())
		submitted = true
	}
	if ctx.Button("Submit").Has(ui.ResSubmit) {
		submitted = true
	}
	if submitted && s.input != "" {
		s.Log(s.input)
		s.input = ""
	}
}

func (s *State) styleWindow(ctx *ui.Context) {
	if !ctx.BeginWindow("Style Editor", s.styleWin.Rect, 0) {
		return
	}
	defer ctx.EndWindow()

	style := ctx.Style()
	sw := int(float64(ctx.CurrentContainer().Body.W) * 0.14)
	ctx.LayoutRow(0, 80, sw, sw, sw, sw, -1)
	for id := ui.ColorID(0); id < ui.ColorMax; id++ {
		ctx.Label(id.String() + ":")
		ctx.PushIDInt(int(id))
		c := &style.Colors[id]
		channelSlider(ctx, "r", &c.R)
		channelSlider(ctx, "g", &c.G)
		channelSlider(ctx, "b", &c.B)
		channelSlider(ctx, "a", &c.A)
		ctx.PopID()
		ctx.DrawRect(ctx.LayoutNext(), *c)
	}
}

func channelSlider(ctx *ui.Context, label string, v *uint8) ui.Result {
	f := float64(*v)
	res := ctx.SliderEx(label, &f, 0, 255, 0, "%.0f", ui.OptAlignCenter)
	*v = uint8(f)
	return res
}
