package ui

import "strconv"

// ID identifies a widget or container. IDs are stable across frames for the
// same payload hashed under the same ID stack.
type ID uint32

const (
	hashInitial ID = 2166136261
	hashPrime   ID = 16777619
)

// hashBytes folds data into seed with FNV-1a. hash/fnv cannot start from an
// arbitrary accumulator, which the ID stack needs.
func hashBytes(seed ID, data []byte) ID {
	h := seed
	for _, b := range data {
		h = (h ^ ID(b)) * hashPrime
	}
	return h
}

func hashString(seed ID, s string) ID {
	h := seed
	for i := 0; i < len(s); i++ {
		h = (h ^ ID(s[i])) * hashPrime
	}
	return h
}

func (ctx *Context) idSeed() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return hashInitial
}

// GetID hashes label under the current ID stack.
func (ctx *Context) GetID(label string) ID {
	ctx.lastID = hashString(ctx.idSeed(), label)
	return ctx.lastID
}

// GetIDBytes hashes raw bytes under the current ID stack.
func (ctx *Context) GetIDBytes(data []byte) ID {
	ctx.lastID = hashBytes(ctx.idSeed(), data)
	return ctx.lastID
}

// GetIDInt hashes the decimal form of n. Useful for items in slices whose
// labels collide.
func (ctx *Context) GetIDInt(n int) ID {
	var buf [20]byte
	return ctx.GetIDBytes(strconv.AppendInt(buf[:0], int64(n), 10))
}

// PushID pushes the ID of label so that later IDs are scoped under it.
func (ctx *Context) PushID(label string) {
	ctx.pushIDValue(ctx.GetID(label))
}

// PushIDBytes is PushID for a raw byte payload.
func (ctx *Context) PushIDBytes(data []byte) {
	ctx.pushIDValue(ctx.GetIDBytes(data))
}

// PushIDInt is PushID for a loop index.
func (ctx *Context) PushIDInt(n int) {
	ctx.pushIDValue(ctx.GetIDInt(n))
}

func (ctx *Context) pushIDValue(id ID) {
	if len(ctx.idStack) == cap(ctx.idStack) {
		ctx.fail("PushID", ErrStackOverflow)
		ctx.droppedIDs++
		return
	}
	ctx.idStack = append(ctx.idStack, id)
}

// PopID removes the last pushed ID. Pops matching pushes that overflowed
// are absorbed so the enclosing scope keeps its seed.
func (ctx *Context) PopID() {
	if ctx.droppedIDs > 0 {
		ctx.droppedIDs--
		return
	}
	if len(ctx.idStack) == 0 {
		ctx.fail("PopID", ErrStackUnderflow)
		return
	}
	ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
}

// CurrentID returns the top of the ID stack, or 0 when it is empty.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}

// LastID returns the ID produced by the most recent GetID call.
func (ctx *Context) LastID() ID { return ctx.lastID }

// SetFocus makes id the sole focus target. Passing 0 clears focus.
func (ctx *Context) SetFocus(id ID) {
	if ctx.focus != id && ctx.verbose() {
		ctx.logger.Debug("focus changed", "from", ctx.focus, "to", id, "frame", ctx.frame)
	}
	ctx.focus = id
	ctx.updatedFocus = true
}

// Focus returns the focused ID, or 0.
func (ctx *Context) Focus() ID { return ctx.focus }

// Hover returns the hovered ID, or 0.
func (ctx *Context) Hover() ID { return ctx.hover }
