//go:build arm64

package bitops

const wantActiveFFS = RBITCLZ
