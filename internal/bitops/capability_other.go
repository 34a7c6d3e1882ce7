//go:build !amd64 && !arm64

package bitops

const activeFFS = Generic
