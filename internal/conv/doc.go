// Package conv provides checked integer conversions.
//
// Use it where a value computed in a wider or unsigned type becomes an int
// size (e.g. the span of an integer range). For conversions that are provably
// safe by construction, such as indices below a validated size, use direct
// type casts instead.
package conv
