// Package syncarray wraps bitarray.BitArray with a sync.RWMutex.
//
// The bit array itself has no synchronization. Locked is the usual
// integration pattern for sharing one across goroutines: many readers or a
// single writer at a time. PopMin finds and clears the lowest bit under one
// write lock, which makes Locked usable as a concurrent free-slot allocator.
//
//	l, _ := syncarray.New(1024)
//	l.SetBit(7)
//	slot, ok := l.PopMin() // 7, true
package syncarray
