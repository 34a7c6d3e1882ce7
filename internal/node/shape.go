package node

import "github.com/hupe1980/bitarray/internal/bitops"

const (
	// LeafWidth is log2 of the largest leaf.
	LeafWidth = 6
	// LeafSize is the number of bits in the largest leaf.
	LeafSize = 1 << LeafWidth
)

// Shape describes how a node of a given size is partitioned.
type Shape struct {
	Size        int
	Width       int // ceil(log2(Size))
	RootWidth   int // log2 of the fan-out bound at this level
	ChildWidth  int // log2 of ChildSize
	ChildSize   int
	NumChildren int
}

// IsLeaf reports whether a node of this shape is a single word.
func (s Shape) IsLeaf() bool {
	return s.Width <= LeafWidth
}

// ShapeOf computes the partitioning for size bits. Only the top level may have
// fewer than 64 children; all levels below are full.
func ShapeOf(size int) Shape {
	s := Shape{
		Size:  size,
		Width: bitops.CeilLog2(uint64(size)),
	}
	if s.IsLeaf() {
		s.RootWidth = s.Width
		return s
	}

	s.RootWidth = s.Width % LeafWidth
	if s.RootWidth == 0 {
		s.RootWidth = LeafWidth
	}
	s.ChildWidth = s.Width - s.RootWidth
	s.ChildSize = 1 << s.ChildWidth
	s.NumChildren = bitops.CeilDiv(size, s.ChildSize)
	return s
}

// Build allocates a cleared tree for size bits. It panics if size <= 0.
func Build(size int) Node {
	if size <= 0 {
		panic("node: size must be positive")
	}
	s := ShapeOf(size)
	if s.IsLeaf() {
		if size <= 32 {
			return NewLeaf[uint32](size)
		}
		return NewLeaf[uint64](size)
	}
	in := buildInner(s)
	return &in
}

func buildInner(s Shape) Inner {
	in := Inner{
		summary: Build(s.NumChildren),
		shift:   uint(s.ChildWidth),
		mask:    s.ChildSize - 1,
		size:    s.Size,
	}

	if s.ChildWidth == LeafWidth {
		in.leaves = make([]Leaf[uint64], s.NumChildren)
		for k := range in.leaves {
			in.leaves[k].size = LeafSize
		}
		return in
	}

	child := ShapeOf(s.ChildSize)
	in.inners = make([]Inner, s.NumChildren)
	for k := range in.inners {
		in.inners[k] = buildInner(child)
	}
	return in
}
