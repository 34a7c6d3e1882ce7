package testutil

// BitVector is the operation set shared by the bit array and Naive.
type BitVector interface {
	SetBit(i int)
	ClearBit(i int)
	IsSet(i int) bool
	ClearAll()
	Empty() bool
	FindLSB() int
	Size() int
}

// Naive is an O(n) reference bit vector backed by a bool slice.
type Naive struct {
	bits []bool
}

var _ BitVector = (*Naive)(nil)

// NewNaive returns a cleared Naive of the given size.
func NewNaive(size int) *Naive {
	return &Naive{bits: make([]bool, size)}
}

// SetBit sets bit i. It panics if i is out of range.
func (n *Naive) SetBit(i int) { n.bits[i] = true }

// ClearBit clears bit i. It panics if i is out of range.
func (n *Naive) ClearBit(i int) { n.bits[i] = false }

// IsSet reports whether bit i is set.
func (n *Naive) IsSet(i int) bool { return n.bits[i] }

// ClearAll clears every bit.
func (n *Naive) ClearAll() { clear(n.bits) }

// Size returns the number of bits.
func (n *Naive) Size() int { return len(n.bits) }

// Empty reports whether no bit is set.
func (n *Naive) Empty() bool {
	for _, b := range n.bits {
		if b {
			return false
		}
	}
	return true
}

// FindLSB returns the smallest set index. It panics if n is empty.
func (n *Naive) FindLSB() int {
	for i, b := range n.bits {
		if b {
			return i
		}
	}
	panic("testutil: find lsb on empty naive bit vector")
}

// Swap exchanges the contents of n and o.
func (n *Naive) Swap(o *Naive) {
	n.bits, o.bits = o.bits, n.bits
}
