// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a naive reference bit vector
// that tests mirror every operation against.
//
// # Mirror Testing
//
//	rng := testutil.NewRNG(seed)
//	ref := testutil.NewNaive(size)
//	testutil.RandomFlips(t, b, ref, rng, 1000)
//	testutil.AssertEqual(t, b, ref)
package testutil
