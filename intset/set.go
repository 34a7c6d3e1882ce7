package intset

import (
	"math"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/internal/conv"
)

// Set is an ordered set of keys in [lo, hi]. It is not safe for concurrent
// mutation.
type Set[K Integer] struct {
	b      *bitarray.BitArray
	lo, hi K
	base   uint64 // rank of lo
}

// New creates an empty set for keys in [lo, hi]. The range may hold at most
// bitarray.MaxSize keys.
func New[K Integer](lo, hi K, opts ...bitarray.Option) (*Set[K], error) {
	if lo > hi {
		return nil, &ErrInvalidRange[K]{Lo: lo, Hi: hi}
	}

	base := rankOf(lo)
	span := rankOf(hi) - base
	if span == math.MaxUint64 {
		return nil, &ErrInvalidRange[K]{Lo: lo, Hi: hi}
	}
	size, err := conv.Uint64ToInt(span + 1)
	if err != nil {
		return nil, &ErrInvalidRange[K]{Lo: lo, Hi: hi, cause: err}
	}

	b, err := bitarray.New(size, opts...)
	if err != nil {
		return nil, &ErrInvalidRange[K]{Lo: lo, Hi: hi, cause: err}
	}

	return &Set[K]{b: b, lo: lo, hi: hi, base: base}, nil
}

func (s *Set[K]) index(k K) int {
	if k < s.lo || k > s.hi {
		panic(&ErrKeyOutOfRange[K]{Key: k, Lo: s.lo, Hi: s.hi})
	}
	return int(rankOf(k) - s.base)
}

func (s *Set[K]) key(i int) K {
	return keyAt[K](s.base + uint64(i))
}

// Add inserts k. It panics with *ErrKeyOutOfRange if k is outside [lo, hi].
func (s *Set[K]) Add(k K) {
	s.b.SetBit(s.index(k))
}

// Remove deletes k.
func (s *Set[K]) Remove(k K) {
	s.b.ClearBit(s.index(k))
}

// Contains reports whether k is in the set.
func (s *Set[K]) Contains(k K) bool {
	return s.b.IsSet(s.index(k))
}

// Min returns the smallest key, or false if the set is empty.
func (s *Set[K]) Min() (K, bool) {
	i, ok := s.b.Min()
	if !ok {
		return 0, false
	}
	return s.key(i), true
}

// PopMin removes and returns the smallest key, or false if the set is empty.
func (s *Set[K]) PopMin() (K, bool) {
	i, ok := s.b.Min()
	if !ok {
		return 0, false
	}
	s.b.ClearBit(i)
	return s.key(i), true
}

// Clear removes every key.
func (s *Set[K]) Clear() {
	s.b.ClearAll()
}

// Empty reports whether the set has no keys.
func (s *Set[K]) Empty() bool {
	return s.b.Empty()
}

// Range returns the bounds the set was created with.
func (s *Set[K]) Range() (lo, hi K) {
	return s.lo, s.hi
}
