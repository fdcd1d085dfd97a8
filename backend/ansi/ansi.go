// Package ansi renders a ui command stream onto a terminal cell grid.
//
// The ui package works in pixels; this backend maps every CellWidth x
// CellHeight block of pixels to one terminal cell. Use Measurer as the
// context's TextMeasurer so text advances line up with whole cells.
package ansi

import (
	"iter"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/ui"
)

// Pixel size of one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Measurer implements ui.TextMeasurer in cell units scaled to pixels.
type Measurer struct{}

func (Measurer) TextWidth(_ ui.Font, text string) int {
	return runewidth.StringWidth(text) * CellWidth
}

func (Measurer) TextHeight(ui.Font) int { return CellHeight }

// Cell is one character position. A zero Rune marks the right half of a
// double-width rune drawn in the cell to its left.
type Cell struct {
	Rune rune
	FG   ui.Color
	BG   ui.Color
}

var blank = Cell{Rune: ' '}

// iconRunes stands in for the bitmap icons.
var iconRunes = [ui.IconMax]rune{
	ui.IconClose:     '×',
	ui.IconCheck:     '✓',
	ui.IconCollapsed: '▸',
	ui.IconExpanded:  '▾',
}

// Canvas is a grid of cells. It implements ui.Renderer, with Resize taking
// columns and rows rather than pixels.
type Canvas struct {
	cols, rows int
	cells      []Cell
	clip       ui.Rect

	// Renderer styles the output of String. Nil uses lipgloss's default,
	// which adapts to the terminal on stdout.
	Renderer *lipgloss.Renderer
}

// NewCanvas returns a blank canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// PixelSize returns the canvas size in ui pixels.
func (c *Canvas) PixelSize() ui.Vec2 {
	return ui.Vec2{X: c.cols * CellWidth, Y: c.rows * CellHeight}
}

// Resize reallocates the grid and blanks it.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
	c.Clear()
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank
	}
}

// Cell returns the cell at col, row, or a blank cell when out of range.
func (c *Canvas) Cell(col, row int) Cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return blank
	}
	return c.cells[row*c.cols+col]
}

// Render paints cmds over the current contents.
func (c *Canvas) Render(cmds iter.Seq[*ui.Command]) error {
	c.clip = ui.Rect{W: c.cols * CellWidth, H: c.rows * CellHeight}
	for cmd := range cmds {
		switch cmd.Type {
		case ui.CommandClip:
			c.clip = cmd.Clip.Rect
		case ui.CommandRect:
			c.fill(cmd.Rect.Rect, cmd.Rect.Color)
		case ui.CommandText:
			c.text(cmd.Text)
		case ui.CommandIcon:
			c.icon(cmd.Icon)
		}
	}
	return nil
}

// visible reports whether the center of cell col, row lies in the clip.
func (c *Canvas) visible(col, row int) bool {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return false
	}
	return c.clip.Contains(cellCenter(col, row))
}

func cellCenter(col, row int) ui.Vec2 {
	return ui.Vec2{X: col*CellWidth + CellWidth/2, Y: row*CellHeight + CellHeight/2}
}

// cellAt rounds a pixel position to the nearest cell.
func cellAt(p ui.Vec2) (col, row int) {
	return (p.X + CellWidth/2) / CellWidth, (p.Y + CellHeight/2) / CellHeight
}

func (c *Canvas) fill(r ui.Rect, col ui.Color) {
	if col.A == 0 {
		return
	}
	r = r.Intersect(c.clip)
	if r.Empty() {
		return
	}
	x0, y0 := r.X/CellWidth, r.Y/CellHeight
	x1, y1 := (r.X+r.W-1)/CellWidth, (r.Y+r.H-1)/CellHeight
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !c.visible(x, y) || !r.Contains(cellCenter(x, y)) {
				continue
			}
			cell := &c.cells[y*c.cols+x]
			cell.BG = blend(cell.BG, col)
			cell.Rune = ' '
		}
	}
}

func (c *Canvas) text(t ui.TextCommand) {
	x, y := cellAt(t.Pos)
	for _, r := range t.Str {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.visible(x, y) && (w == 1 || c.visible(x+1, y)) {
			c.put(x, y, r, t.Color)
			if w == 2 {
				c.put(x+1, y, 0, t.Color)
			}
		}
		x += w
	}
}

func (c *Canvas) icon(ic ui.IconCommand) {
	if ic.Icon <= ui.IconNone || ic.Icon >= ui.IconMax {
		return
	}
	x, y := cellAt(ui.Vec2{X: ic.Rect.X + ic.Rect.W/2 - CellWidth/2, Y: ic.Rect.Y + ic.Rect.H/2 - CellHeight/2})
	if c.visible(x, y) {
		c.put(x, y, iconRunes[ic.Icon], ic.Color)
	}
}

func (c *Canvas) put(x, y int, r rune, fg ui.Color) {
	cell := &c.cells[y*c.cols+x]
	cell.Rune = r
	cell.FG = fg
}

// blend composites src over dst, ignoring dst alpha.
func blend(dst, src ui.Color) ui.Color {
	if src.A == 0xff {
		return src
	}
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 { return uint8((uint32(s)*a + uint32(d)*(0xff-a)) / 0xff) }
	return ui.Color{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 0xff}
}

// String returns the grid as styled lines joined by newlines. Runs of
// cells sharing colors are rendered with one lipgloss style.
func (c *Canvas) String() string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var fg, bg ui.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(c.style(fg, bg).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.cols; x++ {
			cell := c.cells[y*c.cols+x]
			if cell.Rune == 0 {
				if x > 0 && runewidth.RuneWidth(c.cells[y*c.cols+x-1].Rune) == 2 {
					continue
				}
				cell.Rune = ' '
			}
			if cell.FG != fg || cell.BG != bg {
				flush()
				fg, bg = cell.FG, cell.BG
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}

func (c *Canvas) style(fg, bg ui.Color) lipgloss.Style {
	var s lipgloss.Style
	if c.Renderer != nil {
		s = c.Renderer.NewStyle()
	} else {
		s = lipgloss.NewStyle()
	}
	if fg.A != 0 {
		s = s.Foreground(lipgloss.Color(hex(fg)))
	}
	if bg.A != 0 {
		s = s.Background(lipgloss.Color(hex(bg)))
	}
	return s
}

func hex(c ui.Color) string {
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[c.R>>4], digits[c.R&0xf],
		digits[c.G>>4], digits[c.G&0xf],
		digits[c.B>>4], digits[c.B&0xf],
	})
}
