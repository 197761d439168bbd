package splice

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// DefaultCapacity is the initial capacity of buffers created with a
// non-positive capacity.
const DefaultCapacity = 16

// counters tracks the work done by a Buffer's splices.
type counters struct {
	splices       uint64
	inserted      uint64
	shifted       uint64
	reallocations uint64
}

// Buffer is an owned growable array with an explicit logical length and
// allocated capacity. Not goroutine-safe; use SafeBuffer for concurrent
// access. The zero value is an empty buffer ready to use.
type Buffer[T any] struct {
	items    []T
	released bool
	stats    counters
	logger   log.Logger
}

// NewBuffer creates an empty Buffer with room for capacity elements.
// If capacity <= 0, DefaultCapacity is used.
func NewBuffer[T any](capacity int, opts ...Option) *Buffer[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	o := buildOptions(opts)
	return &Buffer[T]{
		items:  make([]T, 0, capacity),
		logger: o.logger,
	}
}

// FromSlice creates a Buffer that takes ownership of items. The caller
// must not use items afterwards.
func FromSlice[T any](items []T, opts ...Option) *Buffer[T] {
	o := buildOptions(opts)
	return &Buffer[T]{
		items:  items,
		logger: o.logger,
	}
}

// Len returns the number of valid elements.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Cap returns the number of elements the buffer can hold without
// reallocating.
func (b *Buffer[T]) Cap() int {
	return cap(b.items)
}

// Items returns the valid elements. The returned slice aliases the buffer
// and is only meaningful until the next mutating call.
func (b *Buffer[T]) Items() []T {
	b.panicIfReleased()
	return b.items
}

// At returns the element at index i.
func (b *Buffer[T]) At(i int) T {
	b.panicIfReleased()
	return b.items[i]
}

// Reserve ensures room for at least n more elements, reallocating if
// needed. Existing elements keep their order.
func (b *Buffer[T]) Reserve(n int) {
	b.panicIfReleased()
	b.reserve(n)
}

// Append adds items at the end of the buffer.
func (b *Buffer[T]) Append(items ...T) {
	b.SpliceCopy(b.Len(), items)
}

// SpliceCopy inserts src at index by assignment. src is left untouched.
// It panics with an error wrapping ErrIndexOutOfRange if index is outside
// [0, Len()].
func (b *Buffer[T]) SpliceCopy(index int, src []T) {
	b.prepare(index, len(src))
	Copy(&b.items, index, src)
}

// SpliceClone inserts clone(v) for each v in src at index, in source order.
// A panicking clone leaves the buffer and its counters unchanged.
func (b *Buffer[T]) SpliceClone(index int, src []T, clone func(T) T) {
	b.panicIfReleased()
	checkIndex(index, len(b.items))
	cloned := cloneAll(src, clone)
	b.prepare(index, len(cloned))
	Copy(&b.items, index, cloned)
}

// SpliceMove moves the contents of src into the buffer at index and
// leaves src empty with its capacity intact.
func (b *Buffer[T]) SpliceMove(index int, src *Buffer[T]) {
	src.panicIfReleased()
	if src == b {
		panic(errors.WithStack(ErrAliased))
	}
	b.panicIfReleased()
	checkIndex(index, len(b.items))
	if err := validMove(b.items, src.items); err != nil {
		panic(err)
	}
	b.prepare(index, src.Len())
	Move(&b.items, index, &src.items)
}

// CloneInto inserts deep copies of src into b at index using each
// element's Clone method.
func CloneInto[T Cloner[T]](b *Buffer[T], index int, src []T) {
	b.SpliceClone(index, src, func(v T) T { return v.Clone() })
}

// Reset sets the length to zero but keeps the allocated storage for reuse.
func (b *Buffer[T]) Reset() {
	b.panicIfReleased()
	clear(b.items)
	b.items = b.items[:0]
}

// Release drops the storage and makes the buffer unusable.
// Any subsequent operations will panic.
func (b *Buffer[T]) Release() {
	if b.released {
		return
	}
	b.debug().Log("msg", "buffer released", "cap", cap(b.items))
	b.items = nil
	b.released = true
}

// prepare validates a splice of n elements at index, reserves room for
// them and records the work. Nothing is changed when validation fails.
func (b *Buffer[T]) prepare(index, n int) {
	b.panicIfReleased()
	checkIndex(index, len(b.items))
	b.reserve(n)
	b.stats.splices++
	b.stats.inserted += uint64(n)
	if n > 0 {
		b.stats.shifted += uint64(len(b.items) - index)
	}
}

// reserve grows the backing array so that n more elements fit.
func (b *Buffer[T]) reserve(n int) {
	if n <= cap(b.items)-len(b.items) {
		return
	}
	oldCap := cap(b.items)
	b.items = slices.Grow(b.items, n)
	b.stats.reallocations++
	b.debug().Log("msg", "buffer reallocated", "len", len(b.items), "old_cap", oldCap, "new_cap", cap(b.items))
}

func (b *Buffer[T]) debug() log.Logger {
	if b.logger == nil {
		return log.NewNopLogger()
	}
	return level.Debug(b.logger)
}

func (b *Buffer[T]) panicIfReleased() {
	if b.released {
		panic(errors.WithStack(ErrReleased))
	}
}
