package intset

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Signed(t *testing.T) {
	s, err := New[int32](-1000, 1000)
	require.NoError(t, err)
	assert.True(t, s.Empty())

	s.Add(5)
	s.Add(-7)
	s.Add(1000)
	s.Add(-1000)

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, int32(-1000), lo)

	assert.True(t, s.Contains(-7))
	assert.False(t, s.Contains(-6))

	s.Remove(-1000)
	lo, _ = s.Min()
	assert.Equal(t, int32(-7), lo)

	var drained []int32
	for {
		k, ok := s.PopMin()
		if !ok {
			break
		}
		drained = append(drained, k)
	}
	assert.Equal(t, []int32{-7, 5, 1000}, drained)
	assert.True(t, s.Empty())
}

func TestSet_Unsigned(t *testing.T) {
	s, err := New[uint16](100, 5099)
	require.NoError(t, err)

	s.Add(4199)
	s.Add(100)
	k, ok := s.PopMin()
	require.True(t, ok)
	assert.Equal(t, uint16(100), k)

	k, _ = s.Min()
	assert.Equal(t, uint16(4199), k)

	s.Clear()
	_, ok = s.Min()
	assert.False(t, ok)

	lo, hi := s.Range()
	assert.Equal(t, uint16(100), lo)
	assert.Equal(t, uint16(5099), hi)
}

func TestSet_FullNarrowRanges(t *testing.T) {
	s8, err := New[int8](math.MinInt8, math.MaxInt8)
	require.NoError(t, err)
	s8.Add(math.MaxInt8)
	s8.Add(-1)
	s8.Add(math.MinInt8)
	for _, want := range []int8{math.MinInt8, -1, math.MaxInt8} {
		got, ok := s8.PopMin()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	u8, err := New[uint8](0, math.MaxUint8)
	require.NoError(t, err)
	u8.Add(255)
	u8.Add(0)
	got, _ := u8.Min()
	assert.Equal(t, uint8(0), got)
}

func TestSet_ExtremeInt64Range(t *testing.T) {
	s, err := New[int64](math.MaxInt64-100, math.MaxInt64)
	require.NoError(t, err)
	s.Add(math.MaxInt64)
	s.Add(math.MaxInt64 - 100)
	got, _ := s.PopMin()
	assert.Equal(t, int64(math.MaxInt64-100), got)
	got, _ = s.PopMin()
	assert.Equal(t, int64(math.MaxInt64), got)

	s, err = New[int64](math.MinInt64, math.MinInt64+10)
	require.NoError(t, err)
	s.Add(math.MinInt64 + 3)
	got, _ = s.Min()
	assert.Equal(t, int64(math.MinInt64+3), got)
}

func TestSet_MirrorSorted(t *testing.T) {
	s, err := New[int](-5000, 5000)
	require.NoError(t, err)

	rng := testutil.NewRNG(99)
	want := map[int]bool{}
	for _, idx := range rng.Indices(3000, 10001) {
		k := idx - 5000
		if want[k] {
			delete(want, k)
			s.Remove(k)
		} else {
			want[k] = true
			s.Add(k)
		}
	}

	keys := make([]int, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		require.True(t, s.Contains(k))
		got, ok := s.PopMin()
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	assert.True(t, s.Empty())
}

func TestNew_InvalidRange(t *testing.T) {
	_, err := New[int](10, 9)
	var e *ErrInvalidRange[int]
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 10, e.Lo)
	assert.Nil(t, errors.Unwrap(err))

	_, err = New[int64](math.MinInt64, math.MaxInt64)
	var e64 *ErrInvalidRange[int64]
	assert.ErrorAs(t, err, &e64)

	_, err = New[uint32](0, math.MaxUint32)
	var r *ErrInvalidRange[uint32]
	require.ErrorAs(t, err, &r)
	var sizeErr *bitarray.ErrInvalidSize
	assert.ErrorAs(t, err, &sizeErr)
}

func TestSet_KeyOutOfRange(t *testing.T) {
	s, err := New[int](-10, 10)
	require.NoError(t, err)

	assert.PanicsWithError(t, (&ErrKeyOutOfRange[int]{Key: 11, Lo: -10, Hi: 10}).Error(), func() {
		s.Add(11)
	})
	assert.Panics(t, func() { s.Remove(-11) })
	assert.Panics(t, func() { s.Contains(100) })
	assert.True(t, s.Empty())
}
