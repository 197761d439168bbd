package splice_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/pavanmanishd/splice"
)

// naiveInsert is the reference result every splice must match.
func naiveInsert[E any](dst []E, index int, src []E) []E {
	out := make([]E, 0, len(dst)+len(src))
	out = append(out, dst[:index]...)
	out = append(out, src...)
	return append(out, dst[index:]...)
}

// TestEdgeCases covers edge cases of the splice functions
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroSizedElements", func(t *testing.T) {
		dest := make([]struct{}, 3)
		src := make([]struct{}, 2)

		splice.Copy(&dest, 1, src)
		assert.Len(t, dest, 5)

		splice.Move(&dest, 0, &src)
		assert.Len(t, dest, 7)
		assert.Empty(t, src)
	})

	t.Run("LargeElements", func(t *testing.T) {
		type block [256]byte
		dest := make([]block, 4)
		for i := range dest {
			dest[i][0] = byte(i)
		}
		src := []block{{0: 0xAA}, {0: 0xBB}}

		splice.Copy(&dest, 2, src)

		got := make([]byte, len(dest))
		for i := range dest {
			got[i] = dest[i][0]
		}
		assert.Equal(t, []byte{0, 1, 0xAA, 0xBB, 2, 3}, got)
	})

	t.Run("SourceLargerThanDestination", func(t *testing.T) {
		dest := []int{1}
		src := make([]int, 1000)
		for i := range src {
			src[i] = i
		}

		splice.Copy(&dest, 1, src)
		require.Len(t, dest, 1001)
		assert.Equal(t, 1, dest[0])
		assert.Equal(t, 999, dest[1000])
	})

	t.Run("ExactCapacity", func(t *testing.T) {
		dest := make([]int, 2, 4)
		addr := &dest[:cap(dest)][0]

		splice.Copy(&dest, 1, []int{7, 8})

		assert.Equal(t, 4, cap(dest))
		assert.Same(t, addr, &dest[0])
		assert.Equal(t, []int{0, 7, 8, 0}, dest)
	})

	t.Run("OneOverCapacity", func(t *testing.T) {
		dest := make([]int, 2, 4)
		old := dest

		splice.Copy(&dest, 0, []int{7, 8, 9})

		assert.Greater(t, cap(dest), 4)
		assert.Equal(t, []int{7, 8, 9, 0, 0}, dest)
		// the old backing array is not written past its length
		assert.Equal(t, []int{0, 0}, old)
	})

	t.Run("StaleViewAfterGrowth", func(t *testing.T) {
		dest := []int{1, 2}
		view := dest

		splice.Copy(&dest, 1, []int{3})
		dest[0] = 100

		assert.Equal(t, []int{1, 2}, view)
	})

	t.Run("UseAfterRelease", func(t *testing.T) {
		b := splice.NewBuffer[int](0)
		b.Release()

		testPanic := func(name string, fn func()) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "%s: expected panic after Release()", name)
				assert.True(t, errors.Is(r.(error), splice.ErrReleased), name)
			}()
			fn()
		}

		testPanic("Append", func() { b.Append(1) })
		testPanic("SpliceCopy", func() { b.SpliceCopy(0, []int{1}) })
		testPanic("SpliceClone", func() { b.SpliceClone(0, []int{1}, func(v int) int { return v }) })
		testPanic("SpliceMove", func() { b.SpliceMove(0, splice.NewBuffer[int](0)) })
		testPanic("At", func() { b.At(0) })
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		b := splice.NewBuffer[int](0)
		b.Release()
		// Multiple releases should be safe
		b.Release()
		b.Release()
	})
}

// TestRandomSplices checks every strategy against a naive reference
// implementation over randomized inputs.
func TestRandomSplices(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		dest := make([]int, rng.Intn(40), 40+rng.Intn(20))
		for j := range dest {
			dest[j] = rng.Int()
		}
		src := make([]int, rng.Intn(50))
		for j := range src {
			src[j] = -rng.Int()
		}
		index := rng.Intn(len(dest) + 1)
		want := naiveInsert(dest, index, src)

		copied := slices.Clone(dest)
		splice.Copy(&copied, index, src)
		if diff := cmp.Diff(want, copied); diff != "" {
			t.Fatalf("Copy(len=%d, index=%d, m=%d) mismatch (-want +got):\n%s", len(dest), index, len(src), diff)
		}

		cloned := slices.Clone(dest)
		splice.CloneFunc(&cloned, index, src, func(v int) int { return v })
		if diff := cmp.Diff(want, cloned); diff != "" {
			t.Fatalf("CloneFunc(len=%d, index=%d, m=%d) mismatch (-want +got):\n%s", len(dest), index, len(src), diff)
		}

		moved := slices.Clone(dest)
		owned := slices.Clone(src)
		splice.Move(&moved, index, &owned)
		if diff := cmp.Diff(want, moved); diff != "" {
			t.Fatalf("Move(len=%d, index=%d, m=%d) mismatch (-want +got):\n%s", len(dest), index, len(src), diff)
		}
		require.Empty(t, owned)

		b := splice.FromSlice(slices.Clone(dest))
		b.SpliceCopy(index, src)
		if diff := cmp.Diff(want, b.Items()); diff != "" {
			t.Fatalf("Buffer.SpliceCopy(len=%d, index=%d, m=%d) mismatch (-want +got):\n%s", len(dest), index, len(src), diff)
		}
	}
}

// TestSelfSplice inserts a slice into itself through every overlapping shape.
func TestSelfSplice(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7}
	for lo := 0; lo <= len(base); lo++ {
		for hi := lo; hi <= len(base); hi++ {
			for index := 0; index <= len(base); index++ {
				dest := make([]int, len(base), 2*len(base))
				copy(dest, base)
				want := naiveInsert(base, index, base[lo:hi])

				splice.Copy(&dest, index, dest[lo:hi])

				require.Equal(t, want, dest, "lo=%d hi=%d index=%d", lo, hi, index)
			}
		}
	}
}
