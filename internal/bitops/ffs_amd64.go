//go:build amd64 && !amd64.v3

package bitops

const activeFFS = BSF
