// control/counters.go
// Author: momentics <momentics@gmail.com>
//
// Hot-path reallocation totals. Each counter sits on its own cache line so
// vectors growing on different cores do not contend on one line.

package control

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-vec/api"
)

// Counters accumulates reallocation totals.
type Counters struct {
	reallocs atomic.Uint64
	_        cpu.CacheLinePad
	moved    atomic.Uint64
	_        cpu.CacheLinePad
	bytes    atomic.Uint64
	_        cpu.CacheLinePad
}

// CountersSnapshot is a point-in-time copy of Counters.
type CountersSnapshot struct {
	Reallocations  uint64
	MovedElements  uint64
	AllocatedBytes uint64
}

// Add accounts one reallocation.
func (c *Counters) Add(ev api.GrowthEvent) {
	c.reallocs.Add(1)
	c.moved.Add(uint64(ev.Moved))
	c.bytes.Add(ev.Bytes())
}

// Snapshot returns the current totals.
func (c *Counters) Snapshot() CountersSnapshot {
	return CountersSnapshot{
		Reallocations:  c.reallocs.Load(),
		MovedElements:  c.moved.Load(),
		AllocatedBytes: c.bytes.Load(),
	}
}

// Reset zeroes all totals.
func (c *Counters) Reset() {
	c.reallocs.Store(0)
	c.moved.Store(0)
	c.bytes.Store(0)
}
