package intset

import "github.com/hupe1980/bitarray/internal/bitops"

// Integer is the set of key types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func isSigned[K Integer]() bool {
	return ^K(0) < 0
}

// rankOf maps k to its rank among all values of K, widened to uint64.
// Signed keys are sign-extended first, which keeps ranks ordered.
func rankOf[K Integer](k K) uint64 {
	if isSigned[K]() {
		return bitops.RankOfInt64(int64(k))
	}
	return uint64(k)
}

// keyAt is the inverse of rankOf.
func keyAt[K Integer](r uint64) K {
	if isSigned[K]() {
		return K(bitops.IntAtRank64(r))
	}
	return K(r)
}
