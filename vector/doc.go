// Package vector
// Author: momentics <momentics@gmail.com>
//
// Growable, random-access sequence of T built on an owned.Buffer.
//
// A Vector tracks a logical size and an allocated capacity. Elements in
// [0, Size()) are live; slots in [Size(), Capacity()) are allocated but hold
// no live value. When an operation needs more slots than the capacity, a new
// buffer is allocated, live elements are transferred to the same offsets, the
// buffers are swapped, and the old one is freed. Appends and inserts double the
// capacity (minimum 1); Resize grows to max(requested, 2*capacity); Reserve
// grows to exactly the requested capacity.
//
// Two access tiers exist. At and Ref validate the index and return an error
// wrapping api.ErrOutOfRange. Index, Ptr, Set, Front, Back, PopBack, Erase and
// Insert only assert their preconditions; with -tags vecrelease the asserts are
// compiled out.
//
// A Vector is a single-owner value: it is not safe for concurrent mutation and
// must be used through a pointer. Copy with Clone/CopyFrom, transfer with
// Move/MoveFrom.
package vector
