package fontface

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/ui"
)

const (
	atlasPadding = 1
	iconSize     = 9
	// FallbackRune is drawn for runes the face cannot render.
	FallbackRune = '?'
)

// Glyph locates one rune in the atlas.
type Glyph struct {
	Src     image.Rectangle // pixels in Atlas.Image
	Offset  image.Point     // from the top-left of the line to the top-left of Src
	Advance int
}

// Atlas is a single-channel texture holding the printable ASCII glyphs of
// a face plus the built-in icons, all drawn at full coverage so a renderer
// can tint them with the command color.
type Atlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	Icons      [ui.IconMax]image.Rectangle
	White      image.Point // a fully covered texel for solid fills
	LineHeight int
}

// NewAtlas rasterizes runes 32..126 of face and the icons into a shelf
// packed texture of the given width.
func NewAtlas(face font.Face, width int) (*Atlas, error) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()

	type meas struct {
		r      rune
		bounds image.Rectangle
		adv    int
	}
	var glyphs []meas
	for r := rune(32); r <= 126; r++ {
		b, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		rect := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
		glyphs = append(glyphs, meas{r: r, bounds: rect, adv: adv.Ceil()})
	}

	// Shelf pack: glyphs first, icons after.
	x, y, rowH := atlasPadding, atlasPadding, 0
	place := func(w, h int) (image.Point, error) {
		if w+atlasPadding*2 > width {
			return image.Point{}, fmt.Errorf("fontface: glyph %dx%d wider than atlas %d", w, h, width)
		}
		if x+w+atlasPadding > width {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		p := image.Pt(x, y)
		x += w + atlasPadding
		rowH = max(rowH, h)
		return p, nil
	}

	positions := make([]image.Point, len(glyphs))
	for i, g := range glyphs {
		p, err := place(g.bounds.Dx(), g.bounds.Dy())
		if err != nil {
			return nil, err
		}
		positions[i] = p
	}
	var iconPos [ui.IconMax]image.Point
	for icon := ui.IconClose; icon < ui.IconMax; icon++ {
		p, err := place(iconSize, iconSize)
		if err != nil {
			return nil, err
		}
		iconPos[icon] = p
	}
	height := y + rowH + atlasPadding

	a := &Atlas{
		Image:      image.NewAlpha(image.Rect(0, 0, width, height)),
		Glyphs:     make(map[rune]Glyph, len(glyphs)),
		LineHeight: m.Height.Ceil(),
	}
	// The top-left texel sits in the padding and is never part of a glyph.
	a.Image.SetAlpha(0, 0, color.Alpha{A: 0xff})
	drawer := &font.Drawer{Dst: a.Image, Src: image.Opaque, Face: face}
	for i, g := range glyphs {
		p := positions[i]
		src := image.Rectangle{Min: p, Max: p.Add(g.bounds.Size())}
		if !src.Empty() {
			drawer.Dot = fixed.P(p.X-g.bounds.Min.X, p.Y-g.bounds.Min.Y)
			drawer.DrawString(string(g.r))
		}
		a.Glyphs[g.r] = Glyph{
			Src:     src,
			Offset:  image.Pt(g.bounds.Min.X, ascent+g.bounds.Min.Y),
			Advance: g.adv,
		}
	}
	for icon := ui.IconClose; icon < ui.IconMax; icon++ {
		p := iconPos[icon]
		a.Icons[icon] = image.Rectangle{Min: p, Max: p.Add(image.Pt(iconSize, iconSize))}
		drawIcon(a.Image, p, icon)
	}
	return a, nil
}

// Glyph returns the glyph for r, or the fallback glyph.
func (a *Atlas) Glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	return a.Glyphs[FallbackRune]
}

// drawIcon paints a iconSize square pattern with its top-left corner at p.
func drawIcon(dst *image.Alpha, p image.Point, icon ui.Icon) {
	on := color.Alpha{A: 0xff}
	set := func(x, y int) { dst.SetAlpha(p.X+x, p.Y+y, on) }
	const n = iconSize
	switch icon {
	case ui.IconClose:
		for i := 1; i < n-1; i++ {
			set(i, i)
			set(n-1-i, i)
		}
	case ui.IconCheck:
		for i := 0; i < 3; i++ {
			set(1+i, 4+i)
			set(2+i, 4+i)
		}
		for i := 0; i < 5; i++ {
			set(4+i, 6-i-1)
			set(4+i, 6-i)
		}
	case ui.IconCollapsed:
		for x := 0; x < n/2+1; x++ {
			for y := x; y < n-x; y++ {
				set(2+x, y)
			}
		}
	case ui.IconExpanded:
		for y := 0; y < n/2+1; y++ {
			for x := y; x < n-y; x++ {
				set(x, 2+y)
			}
		}
	}
}
