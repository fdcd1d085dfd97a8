package ui

import (
	"context"
	"log/slog"
	"os"
)

// uiLogLevel controls the level of the package logger.
// Set to slog.LevelDebug to trace focus, popup and z-order changes.
var uiLogLevel = new(slog.LevelVar)

// uiLogger is used by contexts created without WithLogger.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

// SetVerbose enables or disables debug logging for the package logger.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}

// verbose reports whether debug lines would be emitted, so hot paths can
// skip building attributes.
func (ctx *Context) verbose() bool {
	return ctx.logger.Enabled(context.Background(), slog.LevelDebug)
}
