// Package api
// Author: momentics
//
// Live introspection of vector growth for diagnostics.

package api

// Debug exposes the state gathered from growth observers: registered probe
// values plus the recent reallocation history.
type Debug interface {
	// DumpState returns every probe's current value and, under "history",
	// the most recent growth events, oldest first.
	DumpState() map[string]any

	// RegisterProbe adds or replaces a named probe evaluated on DumpState.
	RegisterProbe(name string, fn func() any)
}
