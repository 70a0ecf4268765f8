// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.
// Keeps a bounded FIFO of the most recent growth events for post-mortem dumps.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-vec/api"
)

// Ensure compile-time interface compliance.
var _ api.Debug = (*DebugProbes)(nil)

// DefaultHistorySize is the number of growth events kept when none is configured.
const DefaultHistorySize = 64

// DebugProbes holds registered probe functions and recent growth events.
type DebugProbes struct {
	mu      sync.RWMutex
	probes  map[string]func() any
	history *queue.Queue
	limit   int
}

// NewDebugProbes creates a probe registry keeping up to historySize events.
func NewDebugProbes(historySize int) *DebugProbes {
	if historySize < 0 {
		historySize = 0
	}
	return &DebugProbes{
		probes:  make(map[string]func() any),
		history: queue.New(),
		limit:   historySize,
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes, plus the event history under "history".
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	probes := make(map[string]func() any, len(dp.probes))
	for k, fn := range dp.probes {
		probes[k] = fn
	}
	dp.mu.RUnlock()

	// Probes run outside the lock; a probe may read the registry itself.
	out := make(map[string]any, len(probes)+1)
	for k, fn := range probes {
		out[k] = fn()
	}
	out["history"] = dp.History()
	return out
}

// Record appends ev to the history, evicting the oldest entries past the limit.
func (dp *DebugProbes) Record(ev api.GrowthEvent) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	if dp.limit == 0 {
		return
	}
	dp.history.Add(ev)
	dp.trimLocked()
}

// History returns the retained events, oldest first.
func (dp *DebugProbes) History() []api.GrowthEvent {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make([]api.GrowthEvent, dp.history.Length())
	for i := range out {
		out[i] = dp.history.Get(i).(api.GrowthEvent)
	}
	return out
}

// SetHistorySize changes the retention limit, dropping the oldest events if
// the new limit is smaller.
func (dp *DebugProbes) SetHistorySize(n int) {
	if n < 0 {
		n = 0
	}
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.limit = n
	dp.trimLocked()
}

func (dp *DebugProbes) trimLocked() {
	for dp.history.Length() > dp.limit {
		dp.history.Remove()
	}
}
