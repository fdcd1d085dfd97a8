package ui

import "unicode/utf8"

// MouseButton is a bitmask of pointer buttons.
type MouseButton int

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a bitmask of the keys the core reacts to. Platform layers map
// their own key codes onto these.
type Key int

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)

// maxInputText bounds the text-input bytes accumulated between frames.
const maxInputText = 32

// inputState accumulates platform events between frames. Level state
// (position, buttons held, keys held) persists; edges are cleared at End.
type inputState struct {
	mousePos      Vec2
	lastMousePos  Vec2
	mouseDelta    Vec2
	scrollDelta   Vec2
	mouseDown     MouseButton
	mousePressed  MouseButton
	mouseReleased MouseButton
	keyDown       Key
	keyPressed    Key
	text          [maxInputText]byte
	textLen       int
}

// clearEdges drops everything that only lives for one frame.
func (in *inputState) clearEdges() {
	in.keyPressed = 0
	in.mousePressed = 0
	in.mouseReleased = 0
	in.scrollDelta = Vec2{}
	in.textLen = 0
	in.lastMousePos = in.mousePos
}

// InputMouseMove records the absolute pointer position.
func (ctx *Context) InputMouseMove(x, y int) {
	ctx.input.mousePos = Vec2{X: x, Y: y}
}

// InputMouseDown records a button press at (x, y).
func (ctx *Context) InputMouseDown(x, y int, btn MouseButton) {
	ctx.InputMouseMove(x, y)
	ctx.input.mouseDown |= btn
	ctx.input.mousePressed |= btn
}

// InputMouseUp records a button release at (x, y).
func (ctx *Context) InputMouseUp(x, y int, btn MouseButton) {
	ctx.InputMouseMove(x, y)
	ctx.input.mouseDown &^= btn
	ctx.input.mouseReleased |= btn
}

// InputScroll accumulates wheel movement. Positive y scrolls content down.
func (ctx *Context) InputScroll(x, y int) {
	ctx.input.scrollDelta.X += x
	ctx.input.scrollDelta.Y += y
}

// InputKeyDown records a key press.
func (ctx *Context) InputKeyDown(key Key) {
	ctx.input.keyPressed |= key
	ctx.input.keyDown |= key
}

// InputKeyUp records a key release.
func (ctx *Context) InputKeyUp(key Key) {
	ctx.input.keyDown &^= key
}

// InputText appends raw text bytes, typically UTF-8, typed since the last
// frame.
func (ctx *Context) InputText(text string) {
	in := &ctx.input
	if in.textLen+len(text) > len(in.text) {
		ctx.fail("InputText", ErrTextOverflow)
		n := len(in.text) - in.textLen
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}
	in.textLen += copy(in.text[in.textLen:], text)
}

// MousePos returns the current pointer position.
func (ctx *Context) MousePos() Vec2 { return ctx.input.mousePos }

// MouseDelta returns how far the pointer moved since the previous frame.
func (ctx *Context) MouseDelta() Vec2 { return ctx.input.mouseDelta }

// MouseDown reports whether any of the buttons in btn are held.
func (ctx *Context) MouseDown(btn MouseButton) bool { return ctx.input.mouseDown&btn != 0 }

// MousePressed reports whether any of the buttons in btn went down this frame.
func (ctx *Context) MousePressed(btn MouseButton) bool { return ctx.input.mousePressed&btn != 0 }

// KeyDown reports whether any of the keys in key are held.
func (ctx *Context) KeyDown(key Key) bool { return ctx.input.keyDown&key != 0 }

// KeyPressed reports whether any of the keys in key went down this frame.
func (ctx *Context) KeyPressed(key Key) bool { return ctx.input.keyPressed&key != 0 }

// TextInput returns the text typed since the last frame.
func (ctx *Context) TextInput() string {
	return string(ctx.input.text[:ctx.input.textLen])
}
