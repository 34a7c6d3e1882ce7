package syncarray

import (
	"sync"
	"unsafe"

	"github.com/hupe1980/bitarray"
)

// Locked is a bitarray.BitArray guarded by a read-write mutex.
type Locked struct {
	mu sync.RWMutex
	b  *bitarray.BitArray
}

// New creates a Locked bit array of the given size.
func New(size int, opts ...bitarray.Option) (*Locked, error) {
	b, err := bitarray.New(size, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked{b: b}, nil
}

// Wrap takes ownership of b. The caller must not use b afterwards.
func Wrap(b *bitarray.BitArray) *Locked {
	return &Locked{b: b}
}

// SetBit sets bit i.
func (l *Locked) SetBit(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.b.SetBit(i)
}

// ClearBit clears bit i.
func (l *Locked) ClearBit(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.b.ClearBit(i)
}

// IsSet reports whether bit i is set.
func (l *Locked) IsSet(i int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.b.IsSet(i)
}

// ClearAll clears every bit.
func (l *Locked) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.b.ClearAll()
}

// Empty reports whether no bit is set.
func (l *Locked) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.b.Empty()
}

// FindLSB returns the smallest set index. It panics if the array is empty.
func (l *Locked) FindLSB() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.b.FindLSB()
}

// Min returns the smallest set index, or false if the array is empty.
func (l *Locked) Min() (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.b.Min()
}

// PopMin clears the smallest set bit and returns its index, or false if the
// array is empty.
func (l *Locked) PopMin() (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.b.Min()
	if ok {
		l.b.ClearBit(i)
	}
	return i, ok
}

// TestAndSet sets bit i and reports whether it was already set.
func (l *Locked) TestAndSet(i int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.b.IsSet(i) {
		return true
	}
	l.b.SetBit(i)
	return false
}

// Size returns the number of bits.
func (l *Locked) Size() int {
	return l.b.Size()
}

// Swap exchanges the contents of l and other. Both locks are taken in
// address order. It panics with *bitarray.ErrSizeMismatch if the sizes differ.
func (l *Locked) Swap(other *Locked) {
	if l == other {
		return
	}

	first, second := l, other
	if uintptr(unsafe.Pointer(second)) < uintptr(unsafe.Pointer(first)) {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	l.b.Swap(other.b)
}

// View runs fn with the read lock held. fn must not mutate b or retain it.
func (l *Locked) View(fn func(b *bitarray.BitArray)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.b)
}

// Update runs fn with the write lock held. fn must not retain b.
func (l *Locked) Update(fn func(b *bitarray.BitArray)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.b)
}
