package splice

// Utilization returns the ratio of length to capacity (0.0 to 1.0).
// Returns 0.0 if the buffer has no capacity.
func (b *Buffer[T]) Utilization() float64 {
	capacity := b.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(b.Len()) / float64(capacity)
}

// Metrics returns a snapshot of buffer statistics.
func (b *Buffer[T]) Metrics() BufferMetrics {
	return BufferMetrics{
		Len:           b.Len(),
		Cap:           b.Cap(),
		Utilization:   b.Utilization(),
		Splices:       b.stats.splices,
		Inserted:      b.stats.inserted,
		Shifted:       b.stats.shifted,
		Reallocations: b.stats.reallocations,
	}
}

// BufferMetrics contains statistical information about a buffer.
type BufferMetrics struct {
	Len           int     // Valid elements
	Cap           int     // Allocated capacity in elements
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
	Splices       uint64  // Splice calls, including empty ones
	Inserted      uint64  // Elements inserted by splices
	Shifted       uint64  // Existing elements relocated to make room
	Reallocations uint64  // Times the backing array was replaced
}

// Thread-safe metrics for SafeBuffer

// Len thread-safely returns the number of valid elements.
func (s *SafeBuffer[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Len()
}

// Cap thread-safely returns the allocated capacity.
func (s *SafeBuffer[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Cap()
}

// Utilization thread-safely returns the ratio of length to capacity.
func (s *SafeBuffer[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Utilization()
}

// Metrics thread-safely returns a snapshot of buffer statistics.
func (s *SafeBuffer[T]) Metrics() BufferMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Metrics()
}
