package splice

import (
	"unsafe"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfRange is wrapped by the panic value raised when an
	// insertion index lies outside [0, len(dst)].
	ErrIndexOutOfRange = errors.New("splice: index out of range")

	// ErrAliased is wrapped when a move source shares storage with its
	// destination.
	ErrAliased = errors.New("splice: source aliases destination")

	// ErrReleased is wrapped when a Buffer is used after Release().
	ErrReleased = errors.New("splice: use after Release()")
)

// validIndex reports the bounds violation for index against a slice of
// length n, or nil.
func validIndex(index, n int) error {
	if index < 0 || index > n {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", index, n)
	}
	return nil
}

// checkIndex panics if index is not a valid insertion point for length n.
func checkIndex(index, n int) {
	if err := validIndex(index, n); err != nil {
		panic(err)
	}
}

// validMove reports whether src may be moved into dst. The spare capacity
// of both sides counts, since the emptied src stays appendable.
func validMove[E any](dst, src []E) error {
	if overlaps(dst[:cap(dst)], src[:cap(src)]) {
		return errors.WithStack(ErrAliased)
	}
	return nil
}

// overlaps reports whether the memory ranges a[0:len(a)] and b[0:len(b)]
// share any element.
func overlaps[E any](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	elemSize := unsafe.Sizeof(a[0])
	if elemSize == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&a[0])) <= uintptr(unsafe.Pointer(&b[len(b)-1]))+(elemSize-1) &&
		uintptr(unsafe.Pointer(&b[0])) <= uintptr(unsafe.Pointer(&a[len(a)-1]))+(elemSize-1)
}
