package splice

import (
	"golang.org/x/exp/slices"
)

// Cloner is implemented by element types whose values own resources that
// a plain assignment would share, so duplication needs a deep copy.
type Cloner[T any] interface {
	Clone() T
}

// Copy inserts the elements of src into *dst at index, shifting the
// elements at or after index to the right. Elements are duplicated by
// assignment; src is left untouched.
//
// Copy panics with an error wrapping ErrIndexOutOfRange if index is
// negative or greater than len(*dst). The backing array of *dst may be
// reallocated, so slices previously taken from it no longer observe it.
func Copy[S ~[]E, E any](dst *S, index int, src []E) {
	checkIndex(index, len(*dst))
	if overlaps[E]((*dst)[:cap(*dst)], src) {
		src = slices.Clone(src)
	}
	copy(open(dst, index, len(src)), src)
}

// Clone inserts deep copies of the elements of src into *dst at index,
// calling Clone on each element in source order. src is left untouched.
//
// Clone panics with an error wrapping ErrIndexOutOfRange if index is
// negative or greater than len(*dst).
func Clone[S ~[]E, E Cloner[E]](dst *S, index int, src []E) {
	CloneFunc(dst, index, src, func(v E) E { return v.Clone() })
}

// CloneFunc is like Clone but duplicates each element with clone.
// All clones are made before *dst is touched, so a panicking clone leaves
// *dst unchanged.
func CloneFunc[S ~[]E, E any](dst *S, index int, src []E, clone func(E) E) {
	checkIndex(index, len(*dst))
	cloned := cloneAll(src, clone)
	copy(open(dst, index, len(cloned)), cloned)
}

// Move transfers the elements of *src into *dst at index and leaves *src
// empty. The moved-out slots of *src are zeroed so the source no longer
// references the elements; its capacity is retained for reuse.
//
// Move panics with an error wrapping ErrIndexOutOfRange if index is
// negative or greater than len(*dst), and with ErrAliased if *src shares
// storage with *dst.
func Move[S ~[]E, E any](dst *S, index int, src *S) {
	checkIndex(index, len(*dst))
	if err := validMove[E](*dst, *src); err != nil {
		panic(err)
	}
	s := *src
	copy(open(dst, index, len(s)), s)
	clear(s)
	*src = s[:0]
}

// TryCopy is Copy returning the bounds violation instead of panicking.
func TryCopy[S ~[]E, E any](dst *S, index int, src []E) error {
	if err := validIndex(index, len(*dst)); err != nil {
		return err
	}
	Copy(dst, index, src)
	return nil
}

// TryClone is Clone returning the bounds violation instead of panicking.
func TryClone[S ~[]E, E Cloner[E]](dst *S, index int, src []E) error {
	if err := validIndex(index, len(*dst)); err != nil {
		return err
	}
	Clone(dst, index, src)
	return nil
}

// TryCloneFunc is CloneFunc returning the bounds violation instead of
// panicking.
func TryCloneFunc[S ~[]E, E any](dst *S, index int, src []E, clone func(E) E) error {
	if err := validIndex(index, len(*dst)); err != nil {
		return err
	}
	CloneFunc(dst, index, src, clone)
	return nil
}

// TryMove is Move returning contract violations instead of panicking.
func TryMove[S ~[]E, E any](dst *S, index int, src *S) error {
	if err := validIndex(index, len(*dst)); err != nil {
		return err
	}
	if err := validMove[E](*dst, *src); err != nil {
		return err
	}
	Move(dst, index, src)
	return nil
}

// cloneAll returns clone(v) for each v in src, in source order.
func cloneAll[E any](src []E, clone func(E) E) []E {
	if len(src) == 0 {
		return nil
	}
	out := make([]E, len(src))
	for i, v := range src {
		out[i] = clone(v)
	}
	return out
}

// open grows *dst by n elements and shifts [index, len) right by n,
// returning the vacated window [index, index+n). The window still holds
// the stale pre-shift values and must be overwritten by the caller.
func open[S ~[]E, E any](dst *S, index, n int) []E {
	s := *dst
	if n == 0 {
		return s[index:index]
	}
	l := len(s)
	s = slices.Grow(s, n)[:l+n]
	// copy is defined for overlapping ranges.
	copy(s[index+n:], s[index:l])
	*dst = s
	return s[index : index+n]
}
