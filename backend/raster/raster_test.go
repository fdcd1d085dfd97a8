package raster

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/ui"
)

var (
	black = ui.RGBA(0, 0, 0, 255)
	red   = ui.RGBA(255, 0, 0, 255)
	white = ui.RGBA(255, 255, 255, 255)
)

func render(t *testing.T, cmds ...ui.Command) *image.RGBA {
	t.Helper()
	r, err := New(64, 32, basicfont.Face7x13)
	require.NoError(t, err)
	r.Clear(black)

	ptrs := make([]*ui.Command, len(cmds))
	for i := range cmds {
		ptrs[i] = &cmds[i]
	}
	require.NoError(t, r.Render(slices.Values(ptrs)))
	return r.Image()
}

func covered(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{A: 255}) {
				n++
			}
		}
	}
	return n
}

func TestRectAndClip(t *testing.T) {
	img := render(t,
		ui.Command{Type: ui.CommandRect, Rect: ui.RectCommand{Rect: ui.Rect{W: 10, H: 10}, Color: red}},
		ui.Command{Type: ui.CommandClip, Clip: ui.ClipCommand{Rect: ui.Rect{X: 20, Y: 0, W: 5, H: 5}}},
		ui.Command{Type: ui.CommandRect, Rect: ui.RectCommand{Rect: ui.Rect{X: 20, W: 10, H: 10}, Color: red}},
	)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(15, 5))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(22, 2))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(27, 7), "outside the clip")
}

func TestTranslucentRect(t *testing.T) {
	img := render(t,
		ui.Command{Type: ui.CommandRect, Rect: ui.RectCommand{Rect: ui.Rect{W: 10, H: 10}, Color: ui.RGBA(255, 255, 255, 0)}},
	)
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(5, 5))
}

func TestText(t *testing.T) {
	img := render(t,
		ui.Command{Type: ui.CommandText, Text: ui.TextCommand{Pos: ui.Vec2{X: 20, Y: 0}, Str: "W", Color: white}},
	)
	assert.Positive(t, covered(img, image.Rect(20, 0, 27, 13)))
	assert.Zero(t, covered(img, image.Rect(0, 0, 20, 32)))

	clipped := render(t,
		ui.Command{Type: ui.CommandClip, Clip: ui.ClipCommand{Rect: ui.Rect{W: 10, H: 10}}},
		ui.Command{Type: ui.CommandText, Text: ui.TextCommand{Pos: ui.Vec2{X: 20, Y: 0}, Str: "W", Color: white}},
	)
	assert.Zero(t, covered(clipped, clipped.Bounds()))
}

func TestIcon(t *testing.T) {
	img := render(t,
		ui.Command{Type: ui.CommandIcon, Icon: ui.IconCommand{Icon: ui.IconClose, Rect: ui.Rect{W: 21, H: 21}, Color: white}},
		ui.Command{Type: ui.CommandIcon, Icon: ui.IconCommand{Icon: ui.IconNone, Rect: ui.Rect{X: 30, W: 21, H: 21}, Color: white}},
		ui.Command{Type: ui.CommandType(99)},
	)
	assert.Positive(t, covered(img, image.Rect(6, 6, 15, 15)))
	assert.Zero(t, covered(img, image.Rect(30, 0, 64, 32)))
	assert.Zero(t, covered(img, image.Rect(0, 15, 30, 32)))
}

func TestResize(t *testing.T) {
	r, err := New(8, 8, basicfont.Face7x13)
	require.NoError(t, err)
	r.Resize(100, 50)
	assert.Equal(t, image.Rect(0, 0, 100, 50), r.Image().Bounds())
}
