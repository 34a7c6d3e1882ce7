package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertEqual fails t unless got and want agree on every bit, on Empty and,
// when non-empty, on FindLSB.
func AssertEqual(t testing.TB, got, want BitVector) {
	t.Helper()

	require.Equal(t, want.Size(), got.Size(), "size")
	for i := 0; i < want.Size(); i++ {
		if want.IsSet(i) != got.IsSet(i) {
			require.Failf(t, "bit mismatch", "index %d: want %v, got %v", i, want.IsSet(i), got.IsSet(i))
		}
	}
	require.Equal(t, want.Empty(), got.Empty(), "empty")
	if !want.Empty() {
		require.Equal(t, want.FindLSB(), got.FindLSB(), "find lsb")
	}
}

// AssertLSBExact fails t unless FindLSB of a non-empty got is set and every
// smaller index is clear.
func AssertLSBExact(t testing.TB, got BitVector) {
	t.Helper()

	if got.Empty() {
		return
	}
	lsb := got.FindLSB()
	require.True(t, got.IsSet(lsb), "find lsb %d not set", lsb)
	for j := 0; j < lsb; j++ {
		if got.IsSet(j) {
			require.Failf(t, "find lsb not minimal", "index %d set below find lsb %d", j, lsb)
		}
	}
}

// RandomFlips toggles steps random bits in both got and want, checking
// IsSet, Empty and FindLSB after every step. With probability 0.7 the lowest
// set bit is cleared afterwards so that higher bits are exercised.
func RandomFlips(t testing.TB, got, want BitVector, rng *RNG, steps int) {
	t.Helper()

	size := want.Size()
	for step := 0; step < steps; step++ {
		idx := rng.Intn(size)
		require.Equal(t, want.IsSet(idx), got.IsSet(idx), "step %d, index %d", step, idx)

		if want.IsSet(idx) {
			want.ClearBit(idx)
			got.ClearBit(idx)
		} else {
			want.SetBit(idx)
			got.SetBit(idx)
		}

		require.Equal(t, want.Empty(), got.Empty(), "step %d", step)
		if got.Empty() {
			continue
		}
		require.Equal(t, want.FindLSB(), got.FindLSB(), "step %d", step)

		if rng.Float32() > 0.3 {
			first := got.FindLSB()
			want.ClearBit(first)
			got.ClearBit(first)
		}
	}
}
