package ui_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/ui"
)

// fixedMeasurer gives every byte 8px of advance and every line 10px.
type fixedMeasurer struct{}

func (fixedMeasurer) TextWidth(_ ui.Font, text string) int { return 8 * len(text) }

func (fixedMeasurer) TextHeight(ui.Font) int { return 10 }

func newTestContext(opts ...ui.Option) *ui.Context {
	base := []ui.Option{
		ui.WithTextMeasurer(fixedMeasurer{}),
		ui.WithLogger(slog.New(slog.DiscardHandler)),
	}
	return ui.NewContext(append(base, opts...)...)
}

// frame runs one Begin/End pair around build.
func frame(ctx *ui.Context, build func()) {
	ctx.Begin()
	build()
	ctx.End()
}

// window declares build inside a title-less window at r.
func window(ctx *ui.Context, name string, r ui.Rect, build func()) {
	if ctx.BeginWindow(name, r, ui.OptNoTitle) {
		build()
		ctx.EndWindow()
	}
}

// drawn copies the committed command list in paint order.
func drawn(ctx *ui.Context) []ui.Command {
	var out []ui.Command
	for cmd := range ctx.Commands() {
		out = append(out, *cmd)
	}
	return out
}

// texts returns the strings of the TEXT commands in paint order.
func texts(ctx *ui.Context) []string {
	var out []string
	for cmd := range ctx.Commands() {
		if cmd.Type == ui.CommandText {
			out = append(out, cmd.Text.Str)
		}
	}
	return out
}

// requireUsagePanic runs fn and asserts it panics with a *ui.UsageError
// wrapping target.
func requireUsagePanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		var uerr *ui.UsageError
		require.True(t, errors.As(err, &uerr), "panic value %T is not a *ui.UsageError", err)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
