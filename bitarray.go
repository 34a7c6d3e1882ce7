package bitarray

import (
	"math"

	"github.com/hupe1980/bitarray/internal/bitops"
	"github.com/hupe1980/bitarray/internal/node"
)

// MaxSize is the largest supported number of bits (256 MiB of payload).
const MaxSize = math.MaxInt32

// BitArray is a fixed-size array of bits optimized for finding the lowest set
// bit. It is a search tree with a fan-out of up to 64, so every operation
// except ClearAll runs in O(log64(Size)).
//
// A BitArray is not safe for concurrent mutation. Concurrent readers without
// a writer are safe; see package syncarray for a locked wrapper.
type BitArray struct {
	root node.Node
	size int
}

// Stats describes the tree built for a BitArray.
type Stats struct {
	Size   int
	Depth  int
	FanOut int // children of the root, 0 for a single word
	Bytes  int
	FFS    string // find-first-set path compiled in
	FFSCPU string // best path the CPU supports
}

// New creates a cleared BitArray holding size bits.
func New(size int, opts ...Option) (*BitArray, error) {
	o := applyOptions(opts)
	log := o.logger.WithSize(size)

	if size <= 0 || size > MaxSize {
		err := &ErrInvalidSize{Size: size}
		log.LogBuild(Stats{}, err)
		return nil, err
	}

	b := &BitArray{
		root: node.Build(size),
		size: size,
	}
	log.LogBuild(b.Stats(), nil)
	return b, nil
}

// MustNew is like New but panics on error.
func MustNew(size int, opts ...Option) *BitArray {
	b, err := New(size, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// SetBit sets bit i.
func (b *BitArray) SetBit(i int) {
	b.checkIndex(i)
	b.root.SetBit(i)
}

// ClearBit clears bit i.
func (b *BitArray) ClearBit(i int) {
	b.checkIndex(i)
	b.root.ClearBit(i)
}

// IsSet reports whether bit i is set.
func (b *BitArray) IsSet(i int) bool {
	b.checkIndex(i)
	return b.root.IsSet(i)
}

// ClearAll clears every bit. It runs in O(Size/64).
func (b *BitArray) ClearAll() {
	b.root.ClearAll()
}

// Empty reports whether no bit is set.
func (b *BitArray) Empty() bool {
	return b.root.Empty()
}

// FindLSB returns the smallest index whose bit is set.
// It panics with ErrEmpty if the array is empty; use Min to avoid the panic.
func (b *BitArray) FindLSB() int {
	if checked && b.root.Empty() {
		panic(ErrEmpty)
	}
	return b.root.FindLSB()
}

// Min returns the smallest set index, or false if the array is empty.
func (b *BitArray) Min() (int, bool) {
	if b.root.Empty() {
		return -1, false
	}
	return b.root.FindLSB(), true
}

// Swap exchanges the contents of b and other in O(1).
// It panics with *ErrSizeMismatch if the sizes differ, in every build.
func (b *BitArray) Swap(other *BitArray) {
	if b.size != other.size {
		panic(&ErrSizeMismatch{Size: b.size, Other: other.size})
	}
	b.root, other.root = other.root, b.root
}

// Clone returns an independent copy of b.
func (b *BitArray) Clone() *BitArray {
	return &BitArray{
		root: b.root.Clone(),
		size: b.size,
	}
}

// Size returns the number of bits.
func (b *BitArray) Size() int {
	return b.size
}

// Depth returns the number of tree levels.
func (b *BitArray) Depth() int {
	return b.root.Depth()
}

// Bytes returns the approximate memory footprint of the tree.
func (b *BitArray) Bytes() int {
	return b.root.Bytes()
}

// Stats returns the shape of the tree.
func (b *BitArray) Stats() Stats {
	return Stats{
		Size:   b.size,
		Depth:  b.root.Depth(),
		FanOut: node.ShapeOf(b.size).NumChildren,
		Bytes:  b.root.Bytes(),
		FFS:    bitops.ActiveFFS().String(),
		FFSCPU: bitops.BestAvailable().String(),
	}
}

func (b *BitArray) checkIndex(i int) {
	if checked && uint(i) >= uint(b.size) {
		panic(&ErrIndexOutOfRange{Index: i, Size: b.size})
	}
}
