// control/recorder.go
// Author: momentics <momentics@gmail.com>
//
// Recorder is the in-process growth observer: totals, a metrics snapshot, and
// a debug history, all fed from one ObserveGrowth call.

package control

import "github.com/momentics/hioload-vec/api"

// Ensure compile-time interface compliance.
var _ api.GrowthObserver = (*Recorder)(nil)

// Recorder aggregates growth events from any number of vectors.
type Recorder struct {
	counters Counters
	metrics  *MetricsRegistry
	probes   *DebugProbes
}

// NewRecorder builds a Recorder keeping historySize recent events, with
// counter and platform probes registered.
func NewRecorder(historySize int) *Recorder {
	r := &Recorder{
		metrics: NewMetricsRegistry(),
		probes:  NewDebugProbes(historySize),
	}
	r.probes.RegisterProbe("counters", func() any { return r.counters.Snapshot() })
	r.probes.RegisterProbe("metrics", func() any { return r.metrics.GetSnapshot() })
	RegisterPlatformProbes(r.probes)
	return r
}

// NewRecorderFromStore builds a Recorder sized from the store's config and
// resizes its history whenever the store reloads.
func NewRecorderFromStore(cs *ConfigStore) *Recorder {
	r := NewRecorder(cs.Get().HistorySize)
	cs.OnReload(func(cfg Config) {
		r.probes.SetHistorySize(cfg.HistorySize)
	})
	return r
}

// ObserveGrowth implements api.GrowthObserver.
func (r *Recorder) ObserveGrowth(ev api.GrowthEvent) {
	r.counters.Add(ev)
	snap := r.counters.Snapshot()
	r.metrics.SetMany(map[string]any{
		MetricReallocations:  snap.Reallocations,
		MetricMovedElements:  snap.MovedElements,
		MetricAllocatedBytes: snap.AllocatedBytes,
		MetricLastCapacity:   ev.NewCapacity,
		MetricLastCause:      ev.Cause.String(),
	})
	r.probes.Record(ev)
}

// Counters returns the current totals.
func (r *Recorder) Counters() CountersSnapshot { return r.counters.Snapshot() }

// Metrics returns the metrics registry fed by r.
func (r *Recorder) Metrics() *MetricsRegistry { return r.metrics }

// Debug returns the debug probe registry fed by r.
func (r *Recorder) Debug() *DebugProbes { return r.probes }
