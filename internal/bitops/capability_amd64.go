//go:build amd64

package bitops

import "golang.org/x/sys/cpu"

func init() {
	hasBSF = true
	hasBMI1 = cpu.X86.HasBMI1
}
