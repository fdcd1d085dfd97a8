package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/ui"
)

func TestFramePool(t *testing.T) {
	p := ui.NewFramePool[int](2)
	assert.Equal(t, -1, p.Get(1))

	assert.Equal(t, 0, p.Init(1, 1))
	assert.Equal(t, 1, p.Init(2, 1))
	*p.At(0) = 10
	*p.At(1) = 20
	assert.Equal(t, 2, p.Len())

	// Both slots were touched this frame.
	assert.Equal(t, -1, p.Init(3, 1))

	// Next frame the oldest slot is recycled and zeroed.
	p.Update(1, 2)
	assert.Equal(t, 0, p.Init(3, 2))
	assert.Zero(t, *p.At(0))
	assert.Equal(t, -1, p.Get(1))
	assert.Equal(t, 0, p.Get(3))
	assert.Equal(t, 20, *p.At(p.Get(2)))

	p.Remove(0)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, -1, p.Get(3))
	assert.Equal(t, 0, p.Init(4, 2), "a freed slot is reused first")
}

func TestFramePoolPointersStable(t *testing.T) {
	p := ui.NewFramePool[ui.Container](4)
	idx := p.Init(7, 1)
	ptr := p.At(idx)
	ptr.Open = true
	p.Init(8, 1)
	p.Init(9, 1)
	assert.Same(t, ptr, p.At(p.Get(7)))
	assert.True(t, p.At(p.Get(7)).Open)
}
