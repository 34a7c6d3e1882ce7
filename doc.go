// Package bitarray provides a fixed-size bit array that finds its lowest set
// bit in O(log64(n)).
//
// # Quick Start
//
//	b, _ := bitarray.New(5000)
//	b.SetBit(4099)
//	b.SetBit(17)
//	b.FindLSB() // 17
//	b.ClearBit(17)
//	b.FindLSB() // 4099
//
// # Architecture
//
// Up to 64 bits live in one machine word. Larger arrays are a search tree:
// each inner node holds up to 64 children and a summary word whose bit k is
// set whenever child k may contain a set bit. FindLSB follows the lowest
// summary bit down to a leaf and applies find-first-set to the leaf word.
//
//	Size        Depth   Bytes (approx)
//	64          1       16
//	4,096       2       1.1 KiB
//	262,144     3       71 KiB
//	16,777,216  4       4.4 MiB
//
// SetBit, ClearBit, IsSet, Empty and FindLSB cost O(log64(n)). ClearAll costs
// O(n/64). Swap exchanges the trees in O(1). No operation allocates after New,
// except Clone.
//
// # Preconditions
//
// Indices must be in [0, Size), and FindLSB requires a non-empty array.
// Violations are programming errors: the default build panics with
// *ErrIndexOutOfRange or ErrEmpty.
//
// Building with -tags bitarray_unchecked removes those checks. In that build,
// an out-of-range index or FindLSB on an empty array is undefined behaviour:
// it may panic inside the tree, be silently ignored, or return a wrong index.
// Swap always checks sizes and panics with *ErrSizeMismatch.
//
// # Concurrency
//
// A BitArray has no internal synchronization. Concurrent readers are safe as
// long as no goroutine mutates the array. Use package syncarray, or your own
// lock, for shared mutable access.
package bitarray
