package bitops

// FFSImpl identifies how find-first-set executes.
type FFSImpl uint8

const (
	// Generic is the portable de Bruijn multiply-and-lookup path.
	Generic FFSImpl = iota
	// BSF is the x86-64 bit scan forward instruction (GOAMD64 v1, v2).
	BSF
	// TZCNT is the x86-64 BMI1 trailing zero count instruction (GOAMD64 v3+).
	TZCNT
	// RBITCLZ is the arm64 bit reverse plus count leading zeros pair.
	RBITCLZ
)

// String returns the string representation of an FFSImpl.
func (f FFSImpl) String() string {
	switch f {
	case Generic:
		return "generic"
	case BSF:
		return "bsf"
	case TZCNT:
		return "tzcnt"
	case RBITCLZ:
		return "rbit+clz"
	default:
		return "unknown"
	}
}

// CPU features, set once by the platform init.
var (
	hasBSF  bool // x86-64
	hasBMI1 bool // x86-64
	hasRBIT bool // arm64, always true
)

// IsAvailable reports whether the CPU can execute impl. This is independent
// of what the binary was compiled to use.
func IsAvailable(impl FFSImpl) bool {
	switch impl {
	case Generic:
		return true
	case BSF:
		return hasBSF
	case TZCNT:
		return hasBMI1
	case RBITCLZ:
		return hasRBIT
	default:
		return false
	}
}

// BestAvailable returns the fastest find-first-set path the CPU supports.
// When it differs from ActiveFFS the binary was built for an older baseline,
// e.g. GOAMD64=v1 on a CPU with BMI1.
func BestAvailable() FFSImpl {
	for _, impl := range []FFSImpl{TZCNT, RBITCLZ, BSF} {
		if IsAvailable(impl) {
			return impl
		}
	}
	return Generic
}

// ActiveFFS returns the find-first-set path compiled into this binary.
func ActiveFFS() FFSImpl {
	return activeFFS
}
