// control/prometheus.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collectors for vector growth.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-vec/api"
)

// Ensure compile-time interface compliance.
var _ api.GrowthObserver = (*Metrics)(nil)

// Metrics stores vector growth metrics.
type Metrics struct {
	// reg is the Registerer used to create this set of metrics.
	reg prometheus.Registerer

	reallocations  *prometheus.CounterVec
	movedElements  prometheus.Counter
	allocatedBytes prometheus.Counter
	newCapacity    prometheus.Histogram
}

// NewMetrics creates a new set of metrics. Metrics will be registered to reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	var m Metrics
	m.reg = reg

	m.reallocations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vector",
		Name:      "reallocations_total",
		Help:      "Total number of vector storage reallocations, by triggering operation.",
	}, []string{"cause"})

	m.movedElements = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vector",
		Name:      "moved_elements_total",
		Help:      "Total number of live elements transferred into new storage.",
	})

	m.allocatedBytes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vector",
		Name:      "allocated_bytes_total",
		Help:      "Total bytes of storage allocated by reallocations.",
	})

	m.newCapacity = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "vector",
		Name:      "new_capacity",
		Help:      "Capacity, in elements, of storage allocated by reallocations.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	})

	if reg != nil {
		reg.MustRegister(m.reallocations, m.movedElements, m.allocatedBytes, m.newCapacity)
	}
	return &m
}

// ObserveGrowth implements api.GrowthObserver.
func (m *Metrics) ObserveGrowth(ev api.GrowthEvent) {
	m.reallocations.WithLabelValues(ev.Cause.String()).Inc()
	m.movedElements.Add(float64(ev.Moved))
	m.allocatedBytes.Add(float64(ev.Bytes()))
	m.newCapacity.Observe(float64(ev.NewCapacity))
}
