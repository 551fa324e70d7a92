package domain

// Family identifies the compiler family of a toolchain.
// It is a closed enumeration: configuration logic switches exhaustively over it
// instead of comparing vendor strings at every call site.
type Family int

const (
	// FamilyUnsupported marks a toolchain that is neither GNU nor Clang.
	// Features that require family-specific flags degrade to no-ops for it.
	FamilyUnsupported Family = iota
	// FamilyGNU marks the GNU compiler collection (gcc/g++).
	FamilyGNU
	// FamilyClang marks the LLVM Clang compiler (clang/clang++).
	FamilyClang
)

// String returns the canonical lower-case name of the family.
func (f Family) String() string {
	switch f {
	case FamilyGNU:
		return "gnu"
	case FamilyClang:
		return "clang"
	default:
		return "unsupported"
	}
}

// Supported reports whether the family is one of the recognized compiler families.
func (f Family) Supported() bool {
	return f == FamilyGNU || f == FamilyClang
}

// Toolchain describes the compiler the configuration pass operates against.
type Toolchain struct {
	Family       Family
	Version      string
	CompilerPath string
}

// Identity returns the cache partition key for this toolchain.
// Probe results recorded under one identity are never visible to another.
func (t Toolchain) Identity() string {
	return t.Family.String() + "-" + t.Version
}
