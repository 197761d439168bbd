// Package splice inserts a range of elements into the middle of a slice
// in place.
//
// # Overview
//
// The built-in append adds elements at the end of a slice. The functions in
// this package insert a whole slice of elements at an arbitrary index,
// shifting the tail of the destination right to make room:
//
//	dst := []int{1, 2, 3, 4}
//	splice.Copy(&dst, 2, []int{5, 6})
//	// dst == [1 2 5 6 3 4]
//
// Every splice grows the destination once, moves its tail once and then
// writes the new elements into the vacated window.
//
// # Transfer Strategies
//
//   - Copy duplicates elements by assignment. Use it when a plain copy of a
//     value is a full copy (numbers, strings, structs of those).
//   - Clone and CloneFunc duplicate each element with a deep-copy operation,
//     so the source and destination end up owning independent values.
//   - Move transfers the elements of a source slice and leaves the source
//     empty. Its capacity is kept so it can be refilled.
//
// To move only part of a slice, cut that part out into its own slice first.
//
// # Contract Violations
//
// An index outside [0, len(dst)] is a programming error. The splice panics
// before touching either slice, with an error wrapping ErrIndexOutOfRange:
//
//	defer func() {
//		if err, ok := recover().(error); ok && errors.Is(err, splice.ErrIndexOutOfRange) {
//			// ...
//		}
//	}()
//
// TryCopy, TryClone, TryCloneFunc and TryMove return the violation instead.
//
// # Buffers
//
// Buffer tracks length and capacity explicitly and counts the work done by
// its splices. It is not goroutine-safe; SafeBuffer wraps it in a mutex:
//
//	b := splice.NewBuffer[int](0, splice.WithName("scratch"))
//	b.Append(1, 2, 3)
//	b.SpliceCopy(1, []int{9, 9})
//	fmt.Println(b.Items()) // [1 9 9 2 3]
//
// Buffer metrics can be exported to Prometheus with a Collector:
//
//	c := splice.NewCollector()
//	c.Add("scratch", b)
//	prometheus.MustRegister(c)
//
// # Concurrency
//
// The free functions perform no locking. The caller must hold exclusive
// access to the destination and the source for the duration of the call.
package splice
