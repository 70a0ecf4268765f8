// Package api
// Author: momentics
//
// Exclusively owned memory blocks.
//
// A block has exactly one owner at a time. Ownership moves explicitly; the
// previous owner is left empty and never frees the block a second time.

package api

// Owner describes a handle that exclusively owns a contiguous block of T.
type Owner[T any] interface {
	// Len returns the element count of the owned block, 0 when empty.
	Len() int

	// IsEmpty reports whether the handle currently owns no storage.
	IsEmpty() bool

	// Release hands the block to the caller without freeing it.
	// The handle is empty afterwards.
	Release() []T

	// Free drops the block. Freeing an empty handle is a no-op.
	Free()
}
