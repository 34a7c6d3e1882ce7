// Package intset provides an ordered set of integers drawn from a fixed
// range [lo, hi], backed by a bitarray.BitArray.
//
// Keys map to bit indices through their rank: the number of values of the
// key type that are smaller. Ranks preserve order, so the smallest key in
// the set is the lowest set bit, and Min and PopMin cost O(log64(hi-lo+1)).
//
//	s, _ := intset.New[int32](-1000, 1000)
//	s.Add(5)
//	s.Add(-7)
//	s.Min() // -7, true
package intset
