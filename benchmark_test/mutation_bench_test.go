package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/testutil"
)

func BenchmarkSetClear(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			ba := bitarray.MustNew(size)
			idx := testutil.NewRNG(4711).Indices(1024, size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				j := idx[i&1023]
				ba.SetBit(j)
				ba.ClearBit(j)
			}
		})
	}
}

func BenchmarkIsSet(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			ba := bitarray.MustNew(size)
			idx := testutil.NewRNG(4711).Indices(1024, size)
			for _, j := range idx[:512] {
				ba.SetBit(j)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = ba.IsSet(idx[i&1023])
			}
		})
	}
}

func BenchmarkClearAll(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			ba := bitarray.MustNew(size)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ba.SetBit(size - 1)
				ba.ClearAll()
			}
		})
	}
}

func BenchmarkSwap(b *testing.B) {
	x, y := bitarray.MustNew(1<<24), bitarray.MustNew(1<<24)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}

func BenchmarkNew(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = bitarray.MustNew(size)
			}
		})
	}
}
