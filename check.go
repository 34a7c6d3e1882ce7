//go:build !bitarray_unchecked

package bitarray

// checked enables index and emptiness checks. Build with -tags
// bitarray_unchecked to remove them.
const checked = true
