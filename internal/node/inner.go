package node

import "unsafe"

// Inner is a tree level above the leaves. Its children are either all leaves
// (leaves != nil) or all inner nodes (inners != nil), stored contiguously.
type Inner struct {
	summary Node
	leaves  []Leaf[uint64]
	inners  []Inner
	shift   uint // log2 of the child size
	mask    int  // child size - 1
	size    int
}

// index splits i into the child index and the offset inside that child.
func (in *Inner) index(i int) (child, local int) {
	return i >> in.shift, i & in.mask
}

// SetBit sets bit i. The summary bit is set first and unconditionally.
func (in *Inner) SetBit(i int) {
	k, j := in.index(i)
	in.summary.SetBit(k)
	if in.leaves != nil {
		in.leaves[k].SetBit(j)
		return
	}
	in.inners[k].SetBit(j)
}

// ClearBit clears bit i. The summary bit is cleared only once the child is
// empty; clearing it earlier would let Empty and FindLSB miss set bits.
func (in *Inner) ClearBit(i int) {
	k, j := in.index(i)
	var empty bool
	if in.leaves != nil {
		in.leaves[k].ClearBit(j)
		empty = in.leaves[k].Empty()
	} else {
		in.inners[k].ClearBit(j)
		empty = in.inners[k].Empty()
	}
	if empty {
		in.summary.ClearBit(k)
	}
}

// IsSet reports whether bit i is set. The summary is not consulted.
func (in *Inner) IsSet(i int) bool {
	k, j := in.index(i)
	if in.leaves != nil {
		return in.leaves[k].IsSet(j)
	}
	return in.inners[k].IsSet(j)
}

// ClearAll clears the summary and every child.
func (in *Inner) ClearAll() {
	in.summary.ClearAll()
	if in.leaves != nil {
		for k := range in.leaves {
			in.leaves[k].flags = 0
		}
		return
	}
	for k := range in.inners {
		in.inners[k].ClearAll()
	}
}

// Empty reports whether no bit is set.
func (in *Inner) Empty() bool {
	return in.summary.Empty()
}

// FindLSB returns the smallest set index.
func (in *Inner) FindLSB() int {
	k := in.summary.FindLSB()
	var j int
	if in.leaves != nil {
		j = in.leaves[k].FindLSB()
	} else {
		j = in.inners[k].FindLSB()
	}
	return k<<in.shift + j
}

// Size returns the number of addressable bits.
func (in *Inner) Size() int {
	return in.size
}

// Depth returns the number of levels including this one.
func (in *Inner) Depth() int {
	if in.leaves != nil {
		return 2
	}
	return 1 + in.inners[0].Depth()
}

// Bytes returns the approximate footprint of the subtree.
func (in *Inner) Bytes() int {
	n := int(unsafe.Sizeof(*in)) + in.summary.Bytes()
	if in.leaves != nil {
		return n + len(in.leaves)*int(unsafe.Sizeof(Leaf[uint64]{}))
	}
	for k := range in.inners {
		n += in.inners[k].Bytes()
	}
	return n
}

// Clone returns a deep copy of the subtree.
func (in *Inner) Clone() Node {
	c := in.clone()
	return &c
}

func (in *Inner) clone() Inner {
	c := *in
	c.summary = in.summary.Clone()
	if in.leaves != nil {
		c.leaves = make([]Leaf[uint64], len(in.leaves))
		copy(c.leaves, in.leaves)
		return c
	}
	c.inners = make([]Inner, len(in.inners))
	for k := range in.inners {
		c.inners[k] = in.inners[k].clone()
	}
	return c
}

// NumChildren returns the fan-out of this node.
func (in *Inner) NumChildren() int {
	if in.leaves != nil {
		return len(in.leaves)
	}
	return len(in.inners)
}

// Summary returns the summary node.
func (in *Inner) Summary() Node {
	return in.summary
}
