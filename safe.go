package splice

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// SafeBuffer is a mutex-protected wrapper around Buffer for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeBuffer[T any] struct {
	mu sync.Mutex
	b  *Buffer[T]
}

// NewSafeBuffer creates a new thread-safe buffer with the specified capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeBuffer[T any](capacity int, opts ...Option) *SafeBuffer[T] {
	return &SafeBuffer[T]{b: NewBuffer[T](capacity, opts...)}
}

// Snapshot thread-safely returns a copy of the valid elements.
func (s *SafeBuffer[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.b.Items())
}

// At thread-safely returns the element at index i.
func (s *SafeBuffer[T]) At(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.At(i)
}

// Reserve thread-safely ensures room for at least n more elements.
func (s *SafeBuffer[T]) Reserve(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Reserve(n)
}

// Append thread-safely adds items at the end of the buffer.
func (s *SafeBuffer[T]) Append(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Append(items...)
}

// SpliceCopy thread-safely inserts src at index by assignment.
func (s *SafeBuffer[T]) SpliceCopy(index int, src []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.SpliceCopy(index, src)
}

// SpliceClone thread-safely inserts clone(v) for each v in src at index.
func (s *SafeBuffer[T]) SpliceClone(index int, src []T, clone func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.SpliceClone(index, src, clone)
}

// SpliceMove thread-safely moves the contents of src into the buffer at
// index, leaving src empty. Both buffers are locked for the duration.
func (s *SafeBuffer[T]) SpliceMove(index int, src *SafeBuffer[T]) {
	if src == s {
		panic(errors.WithStack(ErrAliased))
	}
	first, second := s, src
	if uintptr(unsafe.Pointer(second)) < uintptr(unsafe.Pointer(first)) {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()
	s.b.SpliceMove(index, src.b)
}

// Reset thread-safely sets the length to zero, keeping the storage.
func (s *SafeBuffer[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Reset()
}

// Release thread-safely drops the storage and makes the buffer unusable.
func (s *SafeBuffer[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Release()
}

// SafeCloneInto thread-safely inserts deep copies of src at index.
func SafeCloneInto[T Cloner[T]](s *SafeBuffer[T], index int, src []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	CloneInto(s.b, index, src)
}
