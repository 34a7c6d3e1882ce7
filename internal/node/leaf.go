package node

import (
	"unsafe"

	"github.com/hupe1980/bitarray/internal/bitops"
)

// Leaf stores up to 64 flags in a single word.
type Leaf[W Word] struct {
	flags W
	size  uint8
}

// NewLeaf returns a cleared leaf of the given size.
// Size must be in [1, 32] for uint32 words and [1, 64] for uint64 words.
func NewLeaf[W Word](size int) *Leaf[W] {
	if size <= 0 || size > int(unsafe.Sizeof(W(0)))*8 {
		panic("node: leaf size out of range")
	}
	return &Leaf[W]{size: uint8(size)}
}

// SetBit sets bit i.
func (l *Leaf[W]) SetBit(i int) {
	l.flags |= W(1) << uint(i)
}

// ClearBit clears bit i.
func (l *Leaf[W]) ClearBit(i int) {
	l.flags &^= W(1) << uint(i)
}

// IsSet reports whether bit i is set.
func (l *Leaf[W]) IsSet(i int) bool {
	return l.flags&(W(1)<<uint(i)) != 0
}

// ClearAll clears every bit.
func (l *Leaf[W]) ClearAll() {
	l.flags = 0
}

// Empty reports whether no bit is set.
func (l *Leaf[W]) Empty() bool {
	return l.flags == 0
}

// FindLSB returns the index of the least significant set bit.
func (l *Leaf[W]) FindLSB() int {
	if unsafe.Sizeof(l.flags) == 4 {
		return bitops.FFS32(uint32(l.flags)) - 1
	}
	return bitops.FFS64(uint64(l.flags)) - 1
}

// Size returns the number of addressable bits.
func (l *Leaf[W]) Size() int {
	return int(l.size)
}

// Depth returns 1.
func (l *Leaf[W]) Depth() int {
	return 1
}

// Bytes returns the size of the leaf struct.
func (l *Leaf[W]) Bytes() int {
	return int(unsafe.Sizeof(*l))
}

// Clone returns a copy of the leaf.
func (l *Leaf[W]) Clone() Node {
	c := *l
	return &c
}
