package splice

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/slices"
)

var (
	lengthDesc = prometheus.NewDesc(
		"splice_buffer_length",
		"The number of valid elements in the buffer.",
		[]string{"buffer"},
		nil,
	)
	capacityDesc = prometheus.NewDesc(
		"splice_buffer_capacity",
		"The allocated capacity of the buffer in elements.",
		[]string{"buffer"},
		nil,
	)
	splicesDesc = prometheus.NewDesc(
		"splice_buffer_splices_total",
		"The total number of splices performed on the buffer.",
		[]string{"buffer"},
		nil,
	)
	insertedDesc = prometheus.NewDesc(
		"splice_buffer_inserted_elements_total",
		"The total number of elements inserted into the buffer.",
		[]string{"buffer"},
		nil,
	)
	shiftedDesc = prometheus.NewDesc(
		"splice_buffer_shifted_elements_total",
		"The total number of existing elements shifted to make room for insertions.",
		[]string{"buffer"},
		nil,
	)
	reallocationsDesc = prometheus.NewDesc(
		"splice_buffer_reallocations_total",
		"The total number of times the buffer's backing array was replaced.",
		[]string{"buffer"},
		nil,
	)
)

// MetricsSource is anything that can report BufferMetrics. Both Buffer and
// SafeBuffer implement it regardless of their element type.
type MetricsSource interface {
	Metrics() BufferMetrics
}

// Collector exports the metrics of a set of named buffers to Prometheus.
// Sources are read during Collect, so a plain Buffer must not be mutated
// concurrently with a scrape; register a SafeBuffer in that case.
type Collector struct {
	mu      sync.RWMutex
	sources map[string]MetricsSource
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{sources: make(map[string]MetricsSource)}
}

// Add registers src under name, replacing any previous source with the
// same name.
func (c *Collector) Add(name string, src MetricsSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[name] = src
}

// Remove forgets the source registered under name.
func (c *Collector) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- lengthDesc
	descs <- capacityDesc
	descs <- splicesDesc
	descs <- insertedDesc
	descs <- shiftedDesc
	descs <- reallocationsDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(m chan<- prometheus.Metric) {
	c.mu.RLock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	slices.Sort(names)
	snapshots := make([]BufferMetrics, len(names))
	for i, name := range names {
		snapshots[i] = c.sources[name].Metrics()
	}
	c.mu.RUnlock()

	for i, name := range names {
		s := snapshots[i]
		m <- prometheus.MustNewConstMetric(lengthDesc, prometheus.GaugeValue, float64(s.Len), name)
		m <- prometheus.MustNewConstMetric(capacityDesc, prometheus.GaugeValue, float64(s.Cap), name)
		m <- prometheus.MustNewConstMetric(splicesDesc, prometheus.CounterValue, float64(s.Splices), name)
		m <- prometheus.MustNewConstMetric(insertedDesc, prometheus.CounterValue, float64(s.Inserted), name)
		m <- prometheus.MustNewConstMetric(shiftedDesc, prometheus.CounterValue, float64(s.Shifted), name)
		m <- prometheus.MustNewConstMetric(reallocationsDesc, prometheus.CounterValue, float64(s.Reallocations), name)
	}
}
