// Package fontface measures and rasterizes text with golang.org/x/image
// font faces. Measurer satisfies ui.TextMeasurer; Atlas bakes a face and
// the built-in icons into one alpha texture for GPU renderers.
package fontface

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/ui"
)

// maxCached bounds the width cache before it is dropped wholesale.
const maxCached = 1024

// Measurer implements ui.TextMeasurer. A ui.Font that is itself a
// font.Face is measured with that face; anything else uses the default.
type Measurer struct {
	face   font.Face
	widths map[string]int
}

// New returns a Measurer whose default face is face.
func New(face font.Face) *Measurer {
	return &Measurer{face: face, widths: make(map[string]int, 64)}
}

// Default returns a Measurer for the 7x13 fixed face bundled with x/image.
func Default() *Measurer {
	return New(basicfont.Face7x13)
}

// Face returns the default face.
func (m *Measurer) Face() font.Face { return m.face }

// resolve picks the face for f. Only the default face is cached.
func (m *Measurer) resolve(f ui.Font) (face font.Face, cached bool) {
	if face, ok := f.(font.Face); ok && face != nil {
		return face, false
	}
	return m.face, true
}

// TextWidth returns the advance of text in whole pixels, rounded up.
func (m *Measurer) TextWidth(f ui.Font, text string) int {
	face, cached := m.resolve(f)
	if !cached {
		return font.MeasureString(face, text).Ceil()
	}
	if w, ok := m.widths[text]; ok {
		return w
	}
	if len(m.widths) >= maxCached {
		clear(m.widths)
	}
	w := font.MeasureString(face, text).Ceil()
	m.widths[text] = w
	return w
}

// TextHeight returns the line height of the face.
func (m *Measurer) TextHeight(f ui.Font) int {
	face, _ := m.resolve(f)
	return face.Metrics().Height.Ceil()
}
