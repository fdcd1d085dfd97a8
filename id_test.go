package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/ui"
)

func TestGetIDFNV1a(t *testing.T) {
	ctx := newTestContext()

	// FNV-1a offset basis and the published hash of "a".
	assert.Equal(t, ui.ID(2166136261), ctx.GetID(""))
	assert.Equal(t, ui.ID(0xe40c292c), ctx.GetID("a"))
	assert.Equal(t, ctx.GetID("a"), ctx.LastID())
}

func TestGetIDStableAcrossFrames(t *testing.T) {
	ctx := newTestContext()
	collect := func() []ui.ID {
		var ids []ui.ID
		frame(ctx, func() {
			ctx.PushID("window")
			ctx.PushIDInt(3)
			ids = append(ids, ctx.GetID("button"), ctx.GetIDBytes([]byte{1, 2, 3}))
			ctx.PopID()
			ids = append(ids, ctx.GetID("button"))
			ctx.PopID()
		})
		return ids
	}

	first := collect()
	second := collect()
	assert.Equal(t, first, second)
}

func TestGetIDScopedByParent(t *testing.T) {
	ctx := newTestContext()

	ctx.PushID("left")
	left := ctx.GetID("ok")
	ctx.PopID()
	ctx.PushID("right")
	right := ctx.GetID("ok")
	ctx.PopID()

	assert.NotEqual(t, left, right)
	assert.NotEqual(t, left, ctx.GetID("ok"))
}

func TestGetIDIntMatchesDecimalLabel(t *testing.T) {
	ctx := newTestContext()
	assert.Equal(t, ctx.GetID("42"), ctx.GetIDInt(42))
	assert.Equal(t, ctx.GetID("-7"), ctx.GetIDInt(-7))
}

func TestCurrentID(t *testing.T) {
	ctx := newTestContext()
	assert.Equal(t, ui.ID(0), ctx.CurrentID())

	ctx.PushID("x")
	assert.Equal(t, ctx.LastID(), ctx.CurrentID())
	ctx.PopID()
	assert.Equal(t, ui.ID(0), ctx.CurrentID())
}

func TestIDStackOverflow(t *testing.T) {
	ctx := newTestContext()
	for i := range ui.IDStackSize {
		ctx.PushIDInt(i)
	}
	requireUsagePanic(t, ui.ErrStackOverflow, func() { ctx.PushID("one too many") })
}

func TestPopIDUnderflow(t *testing.T) {
	ctx := newTestContext()
	requireUsagePanic(t, ui.ErrStackUnderflow, ctx.PopID)
}

func TestSetFocus(t *testing.T) {
	ctx := newTestContext()
	id := ctx.GetID("field")

	ctx.SetFocus(id)
	require.Equal(t, id, ctx.Focus())
	ctx.SetFocus(0)
	assert.Equal(t, ui.ID(0), ctx.Focus())
}
