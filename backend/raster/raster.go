// Package raster renders a ui command stream into an in-memory RGBA image
// with golang.org/x/image. It needs no GPU and is used for screenshots and
// pixel tests.
package raster

import (
	"image"
	"image/color"
	"iter"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/fontface"
)

// Renderer implements ui.Renderer on top of an *image.RGBA.
type Renderer struct {
	img   *image.RGBA
	face  font.Face
	atlas *fontface.Atlas
	clip  image.Rectangle
}

// New creates a width x height canvas. Text commands whose font is not a
// font.Face are drawn with face.
func New(width, height int, face font.Face) (*Renderer, error) {
	atlas, err := fontface.NewAtlas(face, 256)
	if err != nil {
		return nil, err
	}
	r := &Renderer{face: face, atlas: atlas}
	r.Resize(width, height)
	return r, nil
}

// Image returns the canvas. It is reallocated by Resize.
func (r *Renderer) Image() *image.RGBA { return r.img }

// Resize reallocates the canvas, discarding its contents.
func (r *Renderer) Resize(width, height int) {
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.clip = r.img.Bounds()
}

// Clear fills the whole canvas with c.
func (r *Renderer) Clear(c ui.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(nrgba(c)), image.Point{}, draw.Src)
}

// Render paints cmds over the current canvas contents.
func (r *Renderer) Render(cmds iter.Seq[*ui.Command]) error {
	r.clip = r.img.Bounds()
	for cmd := range cmds {
		switch cmd.Type {
		case ui.CommandClip:
			r.clip = toImage(cmd.Clip.Rect).Intersect(r.img.Bounds())
		case ui.CommandRect:
			r.fill(cmd.Rect.Rect, cmd.Rect.Color)
		case ui.CommandText:
			r.text(cmd.Text)
		case ui.CommandIcon:
			r.icon(cmd.Icon)
		}
	}
	return nil
}

func (r *Renderer) fill(rect ui.Rect, c ui.Color) {
	dst := toImage(rect).Intersect(r.clip)
	if dst.Empty() {
		return
	}
	draw.Draw(r.img, dst, image.NewUniform(nrgba(c)), image.Point{}, draw.Over)
}

func (r *Renderer) text(t ui.TextCommand) {
	if r.clip.Empty() {
		return
	}
	face := r.face
	if f, ok := t.Font.(font.Face); ok && f != nil {
		face = f
	}
	d := &font.Drawer{
		Dst:  r.img.SubImage(r.clip).(*image.RGBA),
		Src:  image.NewUniform(nrgba(t.Color)),
		Face: face,
		Dot:  fixed.P(t.Pos.X, t.Pos.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(t.Str)
}

func (r *Renderer) icon(ic ui.IconCommand) {
	if ic.Icon <= ui.IconNone || ic.Icon >= ui.IconMax {
		return
	}
	src := r.atlas.Icons[ic.Icon]
	w, h := src.Dx(), src.Dy()
	at := image.Pt(ic.Rect.X+(ic.Rect.W-w)/2, ic.Rect.Y+(ic.Rect.H-h)/2)
	full := image.Rectangle{Min: at, Max: at.Add(image.Pt(w, h))}
	dst := full.Intersect(r.clip)
	if dst.Empty() {
		return
	}
	mp := src.Min.Add(dst.Min.Sub(full.Min))
	draw.DrawMask(r.img, dst, image.NewUniform(nrgba(ic.Color)), image.Point{}, r.atlas.Image, mp, draw.Over)
}

func toImage(r ui.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func nrgba(c ui.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
