// Package owned
// Author: momentics <momentics@gmail.com>
//
// Exclusive-ownership handle over a contiguous heap block of T.
//
// A Buffer never resizes. It is created empty or holding exactly n
// zero-valued elements, hands its block on by Move/MoveFrom/Release, and drops
// it exactly once on Free. Copying a Buffer by value is flagged by
// go vet -copylocks. Access by offset is not validated by the Buffer: the owner
// of the handle keeps indices inside [0, Len()).
//
// Buffers are not safe for concurrent use.
package owned
