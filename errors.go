package ui

import (
	"errors"
	"fmt"
)

// Sentinel errors for misuse of a Context. All of them are programmer errors:
// correct call graphs never produce one.
var (
	ErrStackOverflow   = errors.New("stack capacity exceeded")
	ErrStackUnderflow  = errors.New("pop from empty stack")
	ErrCommandOverflow = errors.New("command list capacity exceeded")
	ErrTextOverflow    = errors.New("text input buffer capacity exceeded")
	ErrPoolExhausted   = errors.New("container pool exhausted")
	ErrUnbalanced      = errors.New("unbalanced begin/end")
	ErrNoLayout        = errors.New("no active layout")
	ErrNoMeasurer      = errors.New("no text measurer configured")
)

// UsageError records which operation misused the context.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("ui: %s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// fail reports a usage error. In strict mode it panics with a *UsageError so
// the frame aborts at the offending call. With saturation enabled the caller
// drops the operation, the first error of the frame is kept for Err, and each
// distinct error is logged once per context.
func (ctx *Context) fail(op string, err error) {
	uerr := &UsageError{Op: op, Err: err}
	if !ctx.saturate {
		panic(uerr)
	}
	if ctx.frameErr == nil {
		ctx.frameErr = uerr
	}
	key := op + ": " + err.Error()
	if _, seen := ctx.reported[key]; seen {
		return
	}
	ctx.reported[key] = struct{}{}
	ctx.logger.Error("ui usage error, dropping operation", "op", op, "err", err, "frame", ctx.frame)
}

// Err returns the first usage error recorded during the current frame when
// saturation is enabled. It is reset by Begin.
func (ctx *Context) Err() error {
	if ctx.frameErr == nil {
		return nil
	}
	return ctx.frameErr
}
