package drawlist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/ui"
	"github.com/go-theft-auto/ui/fontface"
)

func testAtlas(t *testing.T) *fontface.Atlas {
	t.Helper()
	a, err := fontface.NewAtlas(basicfont.Face7x13, 256)
	require.NoError(t, err)
	return a
}

func build(t *testing.T, cmds ...ui.Command) *DrawList {
	t.Helper()
	ptrs := make([]*ui.Command, len(cmds))
	for i := range cmds {
		ptrs[i] = &cmds[i]
	}
	dl := Acquire()
	t.Cleanup(func() { Release(dl) })
	dl.Build(slices.Values(ptrs), testAtlas(t))
	return dl
}

func rect(r ui.Rect, c ui.Color) ui.Command {
	return ui.Command{Type: ui.CommandRect, Rect: ui.RectCommand{Rect: r, Color: c}}
}

func clip(r ui.Rect) ui.Command {
	return ui.Command{Type: ui.CommandClip, Clip: ui.ClipCommand{Rect: r}}
}

var red = ui.RGBA(255, 0, 0, 255)

func TestRect(t *testing.T) {
	dl := build(t, rect(ui.Rect{X: 1, Y: 2, W: 3, H: 4}, red))

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer)
	require.Len(t, dl.VtxBuffer, 4)
	assert.Equal(t, [2]float32{1, 2}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{4, 6}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, red.Packed(), dl.VtxBuffer[0].Color)
	assert.Equal(t, uint32(0xff0000ff), dl.VtxBuffer[0].Color)
}

func TestInvisibleRectsSkipped(t *testing.T) {
	dl := build(t,
		rect(ui.Rect{W: 10, H: 10}, ui.RGBA(255, 0, 0, 0)),
		rect(ui.Rect{W: 0, H: 10}, red),
	)
	assert.Empty(t, dl.CmdBuffer)
	assert.Empty(t, dl.VtxBuffer)
}

func TestClipSplits(t *testing.T) {
	scissor := ui.Rect{X: 0, Y: 0, W: 10, H: 10}
	dl := build(t,
		rect(ui.Rect{W: 5, H: 5}, red),
		clip(scissor),
		rect(ui.Rect{W: 5, H: 5}, red),
		rect(ui.Rect{W: 5, H: 5}, red),
		clip(scissor),
		clip(ui.Rect{W: 20, H: 20}),
	)

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, DrawCmd{ClipRect: ui.Rect{W: 0x1000000, H: 0x1000000}, ElemCount: 6}, dl.CmdBuffer[0])
	assert.Equal(t, DrawCmd{ClipRect: scissor, ElemCount: 12, VertexOffset: 4, IndexOffset: 6}, dl.CmdBuffer[1])
	// Indices restart at each command's vertex offset.
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, dl.IdxBuffer[6:])
}

func TestText(t *testing.T) {
	dl := build(t, ui.Command{Type: ui.CommandText, Text: ui.TextCommand{
		Pos: ui.Vec2{X: 10, Y: 20}, Str: "ab", Color: red,
	}})

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(12), dl.CmdBuffer[0].ElemCount)
	require.Len(t, dl.VtxBuffer, 8)
	// The second glyph starts one advance to the right.
	assert.Equal(t, dl.VtxBuffer[0].Pos[0]+7, dl.VtxBuffer[4].Pos[0])
	assert.GreaterOrEqual(t, dl.VtxBuffer[0].Pos[1], float32(20))
}

func TestIcon(t *testing.T) {
	dl := build(t,
		ui.Command{Type: ui.CommandIcon, Icon: ui.IconCommand{Icon: ui.IconCheck, Rect: ui.Rect{X: 0, Y: 0, W: 21, H: 21}, Color: red}},
		ui.Command{Type: ui.CommandIcon, Icon: ui.IconCommand{Icon: ui.IconNone, Rect: ui.Rect{W: 21, H: 21}, Color: red}},
		ui.Command{Type: ui.CommandIcon, Icon: ui.IconCommand{Icon: ui.IconMax, Rect: ui.Rect{W: 21, H: 21}, Color: red}},
	)

	require.Len(t, dl.VtxBuffer, 4)
	// 9px icon centered in 21px.
	assert.Equal(t, [2]float32{6, 6}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{15, 15}, dl.VtxBuffer[2].Pos)
}

func TestUnknownCommandIgnored(t *testing.T) {
	dl := build(t,
		ui.Command{Type: ui.CommandType(99)},
		rect(ui.Rect{W: 5, H: 5}, red),
	)
	require.Len(t, dl.CmdBuffer, 1)
	assert.Len(t, dl.VtxBuffer, 4)
}

func TestSplitsBeforeIndexOverflow(t *testing.T) {
	const quads = maxVertsPerCmd/4 + 1
	cmds := make([]ui.Command, quads)
	for i := range cmds {
		cmds[i] = rect(ui.Rect{W: 1, H: 1}, red)
	}
	dl := build(t, cmds...)

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, uint32(maxVertsPerCmd), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint32(6), dl.CmdBuffer[1].ElemCount)
	assert.Equal(t, dl.CmdBuffer[0].ClipRect, dl.CmdBuffer[1].ClipRect)
}

func TestAcquireClears(t *testing.T) {
	dl := Acquire()
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{})
	Release(dl)

	dl = Acquire()
	defer Release(dl)
	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
}
