// Package bitops provides the machine-word primitives the bit array is built on.
//
// # Operations
//
//   - Find-first-set: FFS64, FFS32 (1-indexed, 0 for a zero word)
//   - Shape arithmetic: CeilDiv, CeilLog2
//   - Integer rank: RankOfInt64, IntAtRank64
//
// # Capabilities
//
// math/bits.TrailingZeros64 is a compiler intrinsic. The instruction is fixed
// at build time: BSF on amd64 up to GOAMD64=v2, TZCNT from GOAMD64=v3, and
// RBIT+CLZ on arm64. Other targets use a de Bruijn table. ActiveFFS reports the
// compiled path; BestAvailable reports what the running CPU could execute,
// detected with golang.org/x/sys/cpu.
package bitops
