package node

// Word is the storage type of a leaf.
type Word interface {
	~uint32 | ~uint64
}

// Node is a fixed-size bit array. Both Leaf and Inner implement it.
type Node interface {
	// SetBit sets bit i.
	SetBit(i int)
	// ClearBit clears bit i.
	ClearBit(i int)
	// IsSet reports whether bit i is set.
	IsSet(i int) bool
	// ClearAll clears every bit.
	ClearAll()
	// Empty reports whether no bit is set.
	Empty() bool
	// FindLSB returns the smallest set index. The node must not be empty.
	FindLSB() int
	// Size returns the number of addressable bits.
	Size() int
	// Depth returns the number of tree levels, 1 for a leaf.
	Depth() int
	// Bytes returns the approximate memory footprint.
	Bytes() int
	// Clone returns a deep copy.
	Clone() Node
}
