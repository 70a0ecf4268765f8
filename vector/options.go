// File: vector/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for Vector construction.

package vector

import "github.com/momentics/hioload-vec/api"

// Option customizes vector construction.
type Option func(*options)

type options struct {
	reserve  int
	observer api.GrowthObserver
}

// WithReserve pre-allocates capacity for at least n elements.
func WithReserve(n int) Option {
	return func(o *options) {
		if n > o.reserve {
			o.reserve = n
		}
	}
}

// WithObserver reports every reallocation of the vector to obs.
func WithObserver(obs api.GrowthObserver) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
