// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

// GrowCause enumerates the operation that triggered a reallocation.
type GrowCause int

const (
	GrowUnknown GrowCause = iota
	GrowPushBack
	GrowInsert
	GrowReserve
	GrowResize
)

func (c GrowCause) String() string {
	switch c {
	case GrowPushBack:
		return "push_back"
	case GrowInsert:
		return "insert"
	case GrowReserve:
		return "reserve"
	case GrowResize:
		return "resize"
	default:
		return "unknown"
	}
}

// GrowthEvent describes one reallocation of a container's storage.
type GrowthEvent struct {
	Cause       GrowCause
	OldCapacity int
	NewCapacity int
	Moved       int // live elements transferred into the new block
	ElemSize    uintptr
}

// Bytes returns the size of the newly allocated block in bytes.
func (e GrowthEvent) Bytes() uint64 {
	return uint64(e.NewCapacity) * uint64(e.ElemSize)
}

// GrowthObserver receives reallocation events. Implementations used by several
// containers at once must be safe for concurrent use.
type GrowthObserver interface {
	ObserveGrowth(GrowthEvent)
}

// GrowthObserverFunc adapts a plain function to GrowthObserver.
type GrowthObserverFunc func(GrowthEvent)

// ObserveGrowth calls f(ev).
func (f GrowthObserverFunc) ObserveGrowth(ev GrowthEvent) { f(ev) }
