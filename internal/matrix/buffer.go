package matrix

import (
	"sync"
	"sync/atomic"
)

// buffer is the reference-counted storage shared by aliasing Matrix views.
// A transposed view and its parent hold the very same buffer, so a write
// through either is immediately visible through the other. The count tracks
// how many views may still read or write the storage.
type buffer struct {
	data     []float32
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newBuffer creates a zero-filled buffer with refCount = 1.
func newBuffer(size int) *buffer {
	b := &buffer{
		data: make([]float32, size),
	}
	b.refCount.Store(1)
	return b
}

// addRef increments the reference count (for transposed views and aliases).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the storage once the
// last view lets go.
func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if this buffer has only one referencing view.
func (b *buffer) isUnique() bool {
	return b.refCount.Load() == 1
}
