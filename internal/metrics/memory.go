// Package metrics provides optional Prometheus instrumentation for the
// accumulator's buffer lifecycle and the Barrett reducer's construction
// path. Nothing in this package is imported by internal/magia or
// internal/bigint directly; a caller opts in by constructing a
// *Collector and passing it to an accumulator or barrett context via
// their WithMetrics option.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector groups the counters and histograms this module exposes.
// A nil *Collector is valid and every method on it is a no-op, so
// instrumentation can be threaded through optionally without a
// parallel non-instrumented code path.
type Collector struct {
	bufferGrowths   prometheus.Counter
	bufferGrowBytes prometheus.Histogram
	barrettBuilds   prometheus.Counter
	operationLimbs  *prometheus.HistogramVec
}

// NewCollector builds a Collector and registers its metrics with reg. If
// reg is nil, prometheus.DefaultRegisterer is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		bufferGrowths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "magia",
			Subsystem: "accumulator",
			Name:      "buffer_growths_total",
			Help:      "Number of times an accumulator's backing buffer was reallocated.",
		}),
		bufferGrowBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "magia",
			Subsystem: "accumulator",
			Name:      "buffer_grow_bytes",
			Help:      "Size in bytes of accumulator buffers after a growth event.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 10),
		}),
		barrettBuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "magia",
			Subsystem: "barrett",
			Name:      "reducers_built_total",
			Help:      "Number of Barrett reducers constructed.",
		}),
		operationLimbs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "magia",
			Name:      "operation_limbs",
			Help:      "Operand size in limbs observed by instrumented operations.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"operation"}),
	}
	reg.MustRegister(c.bufferGrowths, c.bufferGrowBytes, c.barrettBuilds, c.operationLimbs)
	return c
}

// ObserveBufferGrowth records a buffer reallocation of newSize bytes.
func (c *Collector) ObserveBufferGrowth(newSizeBytes int) {
	if c == nil {
		return
	}
	c.bufferGrowths.Inc()
	c.bufferGrowBytes.Observe(float64(newSizeBytes))
}

// ObserveBarrettBuild records the construction of a Barrett reducer.
func (c *Collector) ObserveBarrettBuild() {
	if c == nil {
		return
	}
	c.barrettBuilds.Inc()
}

// ObserveOperationLimbs records the operand size, in limbs, of an
// operation named by op.
func (c *Collector) ObserveOperationLimbs(op string, limbs int) {
	if c == nil {
		return
	}
	c.operationLimbs.WithLabelValues(op).Observe(float64(limbs))
}
