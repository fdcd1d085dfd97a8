package ui

import (
	"cmp"
	"log/slog"
	"slices"
)

// Fixed capacities of the context's stacks and pools. Exceeding one is a
// usage error, see fail.
const (
	RootListSize       = 32
	ContainerStackSize = 32
	ClipStackSize      = 32
	IDStackSize        = 32
	LayoutStackSize    = 16
	StyleStackSize     = 8
	ContainerPoolSize  = 48
	TreeNodePoolSize   = 48
)

// TextMeasurer supplies text metrics. It is consulted during layout and
// drawing of every label.
type TextMeasurer interface {
	TextWidth(font Font, text string) int
	TextHeight(font Font) int
}

// Context holds every stack, the command list, the style and the input
// accumulator of one interface. It is not safe for concurrent use; confine
// it to the UI thread.
type Context struct {
	measurer TextMeasurer
	style    Style
	logger   *slog.Logger

	saturate bool
	reported map[string]struct{}
	frameErr *UsageError

	hover        ID
	focus        ID
	lastID       ID
	updatedFocus bool
	updatedHover bool
	lastRect     Rect
	lastZIndex   int
	frame        int
	inFrame      bool

	hoverRoot     *Container
	nextHoverRoot *Container
	scrollTarget  *Container

	numberEdit    ID
	numberEditBuf string
	dragOriginX   int
	dragOrigin    float64

	commands       []Command
	scratch        Command
	scratchLayout  Layout
	scratchPanel   Container
	rootList       []*Container
	containerStack []*Container
	clipStack      []Rect
	idStack        []ID
	droppedIDs     int // overflowed pushes still owed a PopID
	layoutStack    []Layout
	styleStack     []Style

	containers *FramePool[Container]
	treeNodes  *FramePool[struct{}]
	external   map[ID]*Container

	input inputState
}

// Option configures a Context.
type Option func(*Context)

// WithStyle sets the initial style.
func WithStyle(style Style) Option {
	return func(ctx *Context) { ctx.style = style }
}

// WithTextMeasurer sets the text metrics callback. A context cannot begin a
// frame without one.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(ctx *Context) { ctx.measurer = m }
}

// WithLogger replaces the package logger for this context.
func WithLogger(l *slog.Logger) Option {
	return func(ctx *Context) { ctx.logger = l }
}

// WithSaturation makes usage errors drop the offending operation and log
// once instead of panicking.
func WithSaturation(on bool) Option {
	return func(ctx *Context) { ctx.saturate = on }
}

// NewContext allocates a context and all of its fixed-capacity storage.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		style:          DefaultStyle(),
		logger:         uiLogger,
		reported:       make(map[string]struct{}),
		commands:       make([]Command, 0, CommandListSize+1),
		rootList:       make([]*Container, 0, RootListSize),
		containerStack: make([]*Container, 0, ContainerStackSize),
		clipStack:      make([]Rect, 0, ClipStackSize),
		idStack:        make([]ID, 0, IDStackSize),
		layoutStack:    make([]Layout, 0, LayoutStackSize),
		styleStack:     make([]Style, 0, StyleStackSize),
		containers:     NewFramePool[Container](ContainerPoolSize),
		treeNodes:      NewFramePool[struct{}](TreeNodePoolSize),
		external:       make(map[ID]*Container),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// SetTextMeasurer replaces the text metrics callback.
func (ctx *Context) SetTextMeasurer(m TextMeasurer) { ctx.measurer = m }

// Frame returns the number of frames begun so far.
func (ctx *Context) Frame() int { return ctx.frame }

// Begin starts a frame. Input fed since the previous End is consumed by the
// widgets declared until End.
func (ctx *Context) Begin() {
	ctx.frameErr = nil
	if ctx.measurer == nil {
		ctx.fail("Begin", ErrNoMeasurer)
	}
	if ctx.inFrame {
		ctx.fail("Begin", ErrUnbalanced)
	}
	ctx.inFrame = true
	ctx.commands = ctx.commands[:0]
	ctx.rootList = ctx.rootList[:0]
	ctx.scrollTarget = nil
	ctx.hoverRoot = ctx.nextHoverRoot
	ctx.nextHoverRoot = nil
	ctx.input.mouseDelta = ctx.input.mousePos.Sub(ctx.input.lastMousePos)
	ctx.frame++
}

// End finishes the frame: it applies wheel scrolling, drops focus and hover
// nobody refreshed, raises the clicked root container, resets per-frame
// input, and links root containers into paint order.
func (ctx *Context) End() {
	if !ctx.inFrame {
		ctx.fail("End", ErrUnbalanced)
		return
	}
	ctx.inFrame = false
	if len(ctx.containerStack) != 0 || len(ctx.clipStack) != 0 || ctx.droppedIDs != 0 ||
		len(ctx.idStack) != 0 || len(ctx.layoutStack) != 0 || len(ctx.styleStack) != 0 {
		ctx.fail("End", ErrUnbalanced)
		// Close roots left open, innermost first.
		for i := len(ctx.containerStack) - 1; i >= 0; i-- {
			if cnt := ctx.containerStack[i]; cnt.root {
				ctx.closeRootRange(cnt)
			}
		}
		if len(ctx.styleStack) != 0 {
			ctx.style = ctx.styleStack[0]
			ctx.styleStack = ctx.styleStack[:0]
		}
		ctx.containerStack = ctx.containerStack[:0]
		ctx.clipStack = ctx.clipStack[:0]
		ctx.idStack = ctx.idStack[:0]
		ctx.droppedIDs = 0
		ctx.layoutStack = ctx.layoutStack[:0]
	}

	if st := ctx.scrollTarget; st != nil {
		st.Scroll = st.Scroll.Add(ctx.input.scrollDelta)
		ctx.clampScroll(st)
	}

	if !ctx.updatedFocus {
		ctx.focus = 0
	}
	ctx.updatedFocus = false
	if !ctx.updatedHover {
		ctx.hover = 0
	}
	ctx.updatedHover = false

	if hr := ctx.nextHoverRoot; ctx.input.mousePressed != 0 && hr != nil &&
		hr.ZIndex < ctx.lastZIndex && hr.ZIndex >= 0 {
		ctx.BringToFront(hr)
	}

	ctx.input.clearEdges()
	ctx.linkRoots()
}

// linkRoots sorts root containers by z-index and chains their command
// ranges with jumps. Commands emitted outside any root container paint
// first, then each root from back to front.
func (ctx *Context) linkRoots() {
	n := 0
	for _, cnt := range ctx.rootList {
		if cnt.head >= 0 && cnt.tail >= 0 {
			ctx.rootList[n] = cnt
			n++
			continue
		}
		// An unlinked root must not stop iteration at its head jump.
		if cnt.head >= 0 && ctx.commands[cnt.head].Jump.Dst < 0 {
			ctx.commands[cnt.head].Jump.Dst = len(ctx.commands)
		}
	}
	ctx.rootList = ctx.rootList[:n]
	if n == 0 {
		return
	}
	slices.SortStableFunc(ctx.rootList, func(a, b *Container) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})

	// The list reserves one slot past CommandListSize for this jump.
	ctx.commands = append(ctx.commands, Command{
		Type: CommandJump,
		Jump: JumpCommand{Dst: ctx.rootList[0].head + 1},
	})
	for i, cnt := range ctx.rootList {
		if i+1 < n {
			ctx.commands[cnt.tail].Jump.Dst = ctx.rootList[i+1].head + 1
		} else {
			ctx.commands[cnt.tail].Jump.Dst = len(ctx.commands)
		}
	}
}

// PushStyle saves the live style and replaces it until PopStyle.
func (ctx *Context) PushStyle(style Style) {
	if len(ctx.styleStack) == cap(ctx.styleStack) {
		ctx.fail("PushStyle", ErrStackOverflow)
		return
	}
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PushStyleColor is PushStyle with a single color role changed.
func (ctx *Context) PushStyleColor(id ColorID, c Color) {
	s := ctx.style
	s.Colors[id] = c
	ctx.PushStyle(s)
}

// PopStyle restores the style saved by the matching PushStyle.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n == 0 {
		ctx.fail("PopStyle", ErrStackUnderflow)
		return
	}
	ctx.style = ctx.styleStack[n-1]
	ctx.styleStack = ctx.styleStack[:n-1]
}

func (ctx *Context) textWidth(font Font, s string) int {
	if ctx.measurer == nil || s == "" {
		return 0
	}
	return ctx.measurer.TextWidth(font, s)
}

func (ctx *Context) textHeight(font Font) int {
	if ctx.measurer == nil {
		return 0
	}
	return ctx.measurer.TextHeight(font)
}
