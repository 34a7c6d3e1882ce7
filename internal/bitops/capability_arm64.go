//go:build arm64

package bitops

// RBIT and CLZ are part of the base ARMv8 ISA.
const activeFFS = RBITCLZ

func init() {
	hasRBIT = true
}
