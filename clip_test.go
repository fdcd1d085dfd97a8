package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/ui"
)

func TestClipIntersectAndRestore(t *testing.T) {
	tests := []struct {
		name string
		a, b ui.Rect
		want ui.Rect
	}{
		{
			name: "overlap",
			a:    ui.Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    ui.Rect{X: 50, Y: 50, W: 100, H: 100},
			want: ui.Rect{X: 50, Y: 50, W: 50, H: 50},
		},
		{
			name: "nested",
			a:    ui.Rect{X: 0, Y: 0, W: 100, H: 100},
			b:    ui.Rect{X: 10, Y: 20, W: 30, H: 40},
			want: ui.Rect{X: 10, Y: 20, W: 30, H: 40},
		},
		{
			name: "disjoint",
			a:    ui.Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    ui.Rect{X: 20, Y: 30, W: 5, H: 5},
			want: ui.Rect{X: 20, Y: 30, W: 0, H: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext()
			unbounded := ctx.ClipRect()

			ctx.PushClipRect(tt.a)
			assert.Equal(t, tt.a, ctx.ClipRect())
			ctx.PushClipRect(tt.b)
			assert.Equal(t, tt.want, ctx.ClipRect())

			ctx.PopClipRect()
			assert.Equal(t, tt.a, ctx.ClipRect())
			ctx.PopClipRect()
			assert.Equal(t, unbounded, ctx.ClipRect())
		})
	}
}

func TestCheckClip(t *testing.T) {
	ctx := newTestContext()
	ctx.PushClipRect(ui.Rect{X: 0, Y: 0, W: 100, H: 100})
	defer ctx.PopClipRect()

	assert.Equal(t, ui.ClipNone, ctx.CheckClip(ui.Rect{X: 10, Y: 10, W: 20, H: 20}))
	assert.Equal(t, ui.ClipPart, ctx.CheckClip(ui.Rect{X: 90, Y: 90, W: 20, H: 20}))
	assert.Equal(t, ui.ClipAll, ctx.CheckClip(ui.Rect{X: 200, Y: 0, W: 20, H: 20}))
}

func TestPopClipRectUnderflow(t *testing.T) {
	ctx := newTestContext()
	requireUsagePanic(t, ui.ErrStackUnderflow, ctx.PopClipRect)
}

func TestPartiallyClippedTextIsBracketedByClips(t *testing.T) {
	ctx := newTestContext()
	clip := ui.Rect{X: 0, Y: 0, W: 20, H: 20}
	frame(ctx, func() {
		ctx.PushClipRect(clip)
		ctx.DrawText(nil, "long text", ui.Vec2{X: 5, Y: 5}, ui.RGBA(255, 255, 255, 255))
		ctx.DrawText(nil, "gone", ui.Vec2{X: 500, Y: 5}, ui.RGBA(255, 255, 255, 255))
		ctx.PopClipRect()
	})

	cmds := drawn(ctx)
	if assert.Len(t, cmds, 3) {
		assert.Equal(t, ui.CommandClip, cmds[0].Type)
		assert.Equal(t, clip, cmds[0].Clip.Rect)
		assert.Equal(t, ui.CommandText, cmds[1].Type)
		assert.Equal(t, "long text", cmds[1].Text.Str)
		assert.Equal(t, ui.CommandClip, cmds[2].Type)
		assert.Equal(t, ui.Rect{W: 0x1000000, H: 0x1000000}, cmds[2].Clip.Rect)
	}
}
