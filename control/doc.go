// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability and configuration layer for hioload-vec containers.
//
// Vectors report every reallocation to an api.GrowthObserver. This package
// provides the observers and the state they feed:
//   - Counters: cache-line padded atomic totals
//   - MetricsRegistry: key/value snapshot for dashboards and tests
//   - DebugProbes: named probes plus a bounded history of recent events
//   - Recorder: ties the three together as one observer
//   - Metrics: Prometheus collectors
//   - LogObserver: go-kit structured logging
//   - Config / ConfigStore: flag-registered settings with reload listeners
//
// Unlike the containers themselves, everything here is safe for concurrent use,
// since vectors owned by different goroutines may share one observer.
package control
