// Package node implements the search tree behind bitarray.BitArray.
//
// # Architecture
//
// A tree has two kinds of node:
//
//   - Leaf: up to 64 flags in one machine word (uint32 for <= 32 bits).
//   - Inner: a contiguous array of children plus a summary node whose bit k
//     is set whenever child k may hold a set bit.
//
// Layout for 5000 bits (width 13, root width 1, child width 12):
//
//	             summary (Leaf, 2 bits)
//	            /                      \
//	   Inner [0, 4096)             Inner [4096, 8192)
//	   summary: 64 bits            summary: 64 bits
//	   leaves: 64 x uint64         leaves: 64 x uint64
//
// Every level below the root has a fan-out of 64; the root gets only as many
// children as the size needs. Depth is ceil(log64(size)).
//
// # Summary invariant
//
// If any bit of child k is set, summary bit k is set. SetBit always sets the
// summary bit; ClearBit clears it only after the child turned empty. Empty and
// FindLSB rely on it.
//
// Nodes do not validate indices; the caller guarantees 0 <= i < Size() and
// that FindLSB is only called on a non-empty node.
package node
