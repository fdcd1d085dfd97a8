package ui

// Vec2 is an integer point or size in pixels.
type Vec2 struct {
	X, Y int
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect is an integer rectangle. W and H may go negative during layout math
// but are clamped before hit-testing or drawing.
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Expand grows the rectangle by n pixels on every side. Negative n shrinks it.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + n*2, H: r.H + n*2}
}

// Intersect returns the overlap of two rectangles. Disjoint rectangles
// produce a zero-sized result rather than a negative one.
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.W, other.X+other.W)
	y2 := min(r.Y+r.H, other.Y+other.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Packed returns the color packed as 0xAABBGGRR, the layout GL vertex
// attributes expect.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Icon identifies one of the built-in glyphs a renderer must be able to draw.
type Icon int

const (
	IconNone Icon = iota
	IconClose
	IconCheck
	IconCollapsed
	IconExpanded
	IconMax
)

func (i Icon) String() string {
	switch i {
	case IconClose:
		return "close"
	case IconCheck:
		return "check"
	case IconCollapsed:
		return "collapsed"
	case IconExpanded:
		return "expanded"
	default:
		return "none"
	}
}

// Result is the bitmask every widget returns describing what happened
// during this call.
type Result int

const (
	ResActive Result = 1 << iota
	ResSubmit
	ResChange
)

// Has reports whether all bits of flag are set.
func (r Result) Has(flag Result) bool { return r&flag == flag }

// Opt is a bitmask of per-widget behavior flags.
type Opt int

const (
	OptAlignCenter Opt = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
