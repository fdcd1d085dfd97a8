package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/ui"
)

// ScrollScale converts GLFW wheel offsets to pixels. GLFW reports positive
// y when scrolling up, which scrolls content towards the top.
const ScrollScale = -30

// InputSink receives platform input between frames. *ui.Context
// implements it.
type InputSink interface {
	InputMouseMove(x, y int)
	InputMouseDown(x, y int, btn ui.MouseButton)
	InputMouseUp(x, y int, btn ui.MouseButton)
	InputScroll(x, y int)
	InputKeyDown(key ui.Key)
	InputKeyUp(key ui.Key)
	InputText(text string)
}

// InputAdapter installs GLFW callbacks that forward events to an
// InputSink.
type InputAdapter struct {
	window *glfw.Window
	sink   InputSink
}

// NewInputAdapter installs the callbacks on window.
func NewInputAdapter(window *glfw.Window, sink InputSink) *InputAdapter {
	a := &InputAdapter{window: window, sink: sink}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

func (a *InputAdapter) cursor() (int, int) {
	x, y := a.window.GetCursorPos()
	return int(x), int(y)
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == 0 {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.sink.InputKeyDown(k)
	case glfw.Release:
		a.sink.InputKeyUp(k)
	}
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.sink.InputText(string(char))
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn := glfwMouseButtonToButton(button)
	if btn == 0 {
		return
	}

	x, y := a.cursor()
	switch action {
	case glfw.Press:
		a.sink.InputMouseDown(x, y, btn)
	case glfw.Release:
		a.sink.InputMouseUp(x, y, btn)
	}
}

func (a *InputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.sink.InputScroll(int(xoff*ScrollScale), int(yoff*ScrollScale))
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.sink.InputMouseMove(int(xpos), int(ypos))
}

func glfwKeyToKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return ui.KeyShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return ui.KeyCtrl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return ui.KeyAlt
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return ui.KeyReturn
	}
	return 0
}

func glfwMouseButtonToButton(button glfw.MouseButton) ui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.MouseLeft
	case glfw.MouseButtonRight:
		return ui.MouseRight
	case glfw.MouseButtonMiddle:
		return ui.MouseMiddle
	}
	return 0
}
