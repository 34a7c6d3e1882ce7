//go:build bitarray_unchecked

package bitarray

const checked = false
