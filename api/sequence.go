// Package api
// Author: momentics@gmail.com
//
// Read-only sequence contract shared by containers.

package api

import "iter"

// Sequence is a finite, random-access, read-only view over homogeneous elements.
type Sequence[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Get returns the element at offset i; 0 <= i < Len() is the caller's responsibility.
	Get(i int) T
	// All yields (offset, element) pairs in offset order.
	All() iter.Seq2[int, T]
}
