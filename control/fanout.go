// control/fanout.go
// Author: momentics <momentics@gmail.com>

package control

import "github.com/momentics/hioload-vec/api"

type fanout []api.GrowthObserver

// Fanout returns an observer forwarding each event to every non-nil observer,
// in order.
func Fanout(observers ...api.GrowthObserver) api.GrowthObserver {
	out := make(fanout, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (f fanout) ObserveGrowth(ev api.GrowthEvent) {
	for _, o := range f {
		o.ObserveGrowth(ev)
	}
}
