package ui

// FramePool is a fixed-size table of T keyed by ID. Each slot remembers the
// frame it was last touched in; when a new ID needs a slot, the one idle
// for the longest time is recycled. Storage is allocated once, so pointers
// returned by At stay valid for the lifetime of the pool.
//
// Usage:
//
//	idx := pool.Get(id)
//	if idx < 0 {
//	    idx = pool.Init(id, ctx.Frame())
//	}
//	state := pool.At(idx)
type FramePool[T any] struct {
	ids        []ID
	lastUpdate []int
	live       []bool
	items      []T
}

// NewFramePool creates a pool with size slots.
func NewFramePool[T any](size int) *FramePool[T] {
	return &FramePool[T]{
		ids:        make([]ID, size),
		lastUpdate: make([]int, size),
		live:       make([]bool, size),
		items:      make([]T, size),
	}
}

// Get returns the slot holding id, or -1.
func (p *FramePool[T]) Get(id ID) int {
	for i, v := range p.ids {
		if v == id && p.live[i] {
			return i
		}
	}
	return -1
}

// Init claims the least recently updated slot for id and zeroes it.
// It returns -1 when every slot was already touched during frame.
func (p *FramePool[T]) Init(id ID, frame int) int {
	n := -1
	oldest := frame
	for i := range p.ids {
		if !p.live[i] {
			n = i
			break
		}
		if p.lastUpdate[i] < oldest {
			oldest = p.lastUpdate[i]
			n = i
		}
	}
	if n < 0 {
		return -1
	}
	var zero T
	p.ids[n] = id
	p.live[n] = true
	p.items[n] = zero
	p.lastUpdate[n] = frame
	return n
}

// Update marks slot idx as used during frame.
func (p *FramePool[T]) Update(idx, frame int) {
	p.lastUpdate[idx] = frame
}

// Remove frees slot idx.
func (p *FramePool[T]) Remove(idx int) {
	var zero T
	p.live[idx] = false
	p.ids[idx] = 0
	p.items[idx] = zero
}

// At returns the value stored in slot idx.
func (p *FramePool[T]) At(idx int) *T {
	return &p.items[idx]
}

// Len returns the number of live slots.
func (p *FramePool[T]) Len() int {
	n := 0
	for _, l := range p.live {
		if l {
			n++
		}
	}
	return n
}
