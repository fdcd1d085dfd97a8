// Package drawlist turns a ui command stream into indexed, textured quads
// ready for upload to a GPU. It has no graphics API dependency so any
// backend that can draw triangles from one alpha texture can use it.
package drawlist

import (
	"image"
	"iter"
	"sync"

	"github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/fontface"
)

// Vertex is the per-vertex layout uploaded to the GPU.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // ui.Color.Packed, little-endian RGBA
}

// DrawCmd is a run of indices sharing one scissor rectangle.
type DrawCmd struct {
	ClipRect     ui.Rect
	ElemCount    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// maxVertsPerCmd keeps relative indices within uint16.
const maxVertsPerCmd = 1<<16 - 4

var pool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// Acquire gets a cleared DrawList from the pool. Call Release when done.
func Acquire() *DrawList {
	dl := pool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// Release returns dl to the pool.
func Release(dl *DrawList) {
	if dl != nil {
		pool.Put(dl)
	}
}

// DrawList accumulates the geometry of one frame.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	atlas   *fontface.Atlas
	texSize [2]float32
	clip    ui.Rect
}

// Clear resets the list but keeps its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clip = ui.Rect{W: 0x1000000, H: 0x1000000}
}

// Build appends the geometry for cmds, sampling glyphs and icons from atlas.
// Commands of unknown type are skipped.
func (dl *DrawList) Build(cmds iter.Seq[*ui.Command], atlas *fontface.Atlas) {
	dl.atlas = atlas
	b := atlas.Image.Bounds()
	dl.texSize = [2]float32{float32(b.Dx()), float32(b.Dy())}
	for cmd := range cmds {
		switch cmd.Type {
		case ui.CommandClip:
			dl.setClip(cmd.Clip.Rect)
		case ui.CommandRect:
			dl.AddRect(cmd.Rect.Rect, cmd.Rect.Color)
		case ui.CommandText:
			dl.AddText(cmd.Text.Pos, cmd.Text.Str, cmd.Text.Color)
		case ui.CommandIcon:
			dl.AddIcon(cmd.Icon.Icon, cmd.Icon.Rect, cmd.Icon.Color)
		}
	}
	dl.finalize()
}

func (dl *DrawList) setClip(r ui.Rect) {
	if r == dl.clip {
		return
	}
	dl.clip = r
	dl.split()
}

// split closes the current command and opens a new one at the buffer ends.
func (dl *DrawList) split() {
	dl.closeCmd()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
}

func (dl *DrawList) closeCmd() {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - last.IndexOffset
	}
}

// quad appends one textured quad. dst and src are in pixels.
func (dl *DrawList) quad(dst ui.Rect, src image.Rectangle, c ui.Color) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.CmdBuffer[len(dl.CmdBuffer)-1].VertexOffset) >= maxVertsPerCmd {
		dl.split()
	}
	base := uint16(len(dl.VtxBuffer) - int(dl.CmdBuffer[len(dl.CmdBuffer)-1].VertexOffset))
	col := c.Packed()
	x0, y0 := float32(dst.X), float32(dst.Y)
	x1, y1 := float32(dst.X+dst.W), float32(dst.Y+dst.H)
	u0, v0 := float32(src.Min.X)/dl.texSize[0], float32(src.Min.Y)/dl.texSize[1]
	u1, v1 := float32(src.Max.X)/dl.texSize[0], float32(src.Max.Y)/dl.texSize[1]
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: col},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: col},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: col},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: col},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
}

// AddRect fills r with a solid color.
func (dl *DrawList) AddRect(r ui.Rect, c ui.Color) {
	if c.A == 0 || r.Empty() {
		return
	}
	w := dl.atlas.White
	dl.quad(r, image.Rectangle{Min: w, Max: w.Add(image.Pt(1, 1))}, c)
}

// AddText draws s with the top-left of its line box at pos.
func (dl *DrawList) AddText(pos ui.Vec2, s string, c ui.Color) {
	if c.A == 0 {
		return
	}
	x := pos.X
	for _, r := range s {
		g := dl.atlas.Glyph(r)
		if !g.Src.Empty() {
			dst := ui.Rect{X: x + g.Offset.X, Y: pos.Y + g.Offset.Y, W: g.Src.Dx(), H: g.Src.Dy()}
			dl.quad(dst, g.Src, c)
		}
		x += g.Advance
	}
}

// AddIcon draws icon centered in r.
func (dl *DrawList) AddIcon(icon ui.Icon, r ui.Rect, c ui.Color) {
	if icon <= ui.IconNone || icon >= ui.IconMax || c.A == 0 {
		return
	}
	src := dl.atlas.Icons[icon]
	w, h := src.Dx(), src.Dy()
	dst := ui.Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
	dl.quad(dst, src, c)
}

// finalize closes the last command and drops empty ones.
func (dl *DrawList) finalize() {
	dl.closeCmd()
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
