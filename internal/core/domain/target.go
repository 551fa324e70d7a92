package domain

import "go.trai.ch/zerr"

// TargetKind identifies what kind of artifact a target produces.
type TargetKind int

const (
	// KindExecutable is a linked program.
	KindExecutable TargetKind = iota
	// KindLibrary is a static or shared library with its own compilation.
	KindLibrary
	// KindInterfaceLibrary is a header-only target that carries no compilation
	// of its own; only Interface-scoped attributes apply to it.
	KindInterfaceLibrary
)

// String returns the canonical lower-case name of the kind.
func (k TargetKind) String() string {
	switch k {
	case KindExecutable:
		return "executable"
	case KindLibrary:
		return "library"
	case KindInterfaceLibrary:
		return "interface"
	default:
		return "unknown"
	}
}

// ParseTargetKind validates a target kind value. An empty value defaults to Executable.
func ParseTargetKind(s string) (TargetKind, error) {
	switch s {
	case "", "executable":
		return KindExecutable, nil
	case "library":
		return KindLibrary, nil
	case "interface":
		return KindInterfaceLibrary, nil
	default:
		return 0, zerr.With(ErrInvalidTargetKind, "kind", s)
	}
}

// Scope is the visibility of a configuration attribute: to the target's own
// compilation, to its dependents, or to both.
type Scope string

const (
	// ScopePublic applies to the target and its dependents.
	ScopePublic Scope = "public"
	// ScopePrivate applies to the target's own compilation only.
	ScopePrivate Scope = "private"
	// ScopeInterface applies to dependents only.
	ScopeInterface Scope = "interface"
)

// TargetSpec is the mutable description of one build target as the
// configuration pass assembles it. The caller owns the spec; configurator
// calls append to it and never retain a reference.
type TargetSpec struct {
	Name        string
	Kind        TargetKind
	CStandard   string
	CXXStandard string

	Flags       map[Scope][]string
	IncludeDirs map[Scope][]string
	Defines     map[Scope][]string
	LinkerFlags []string

	// OutputSubdir is set when artifacts are routed into a per-build-type
	// directory. Empty under multi-config generators, which name their own.
	OutputSubdir string
}

// NewTargetSpec creates an empty spec for the named target.
func NewTargetSpec(name string, kind TargetKind) *TargetSpec {
	return &TargetSpec{
		Name:        name,
		Kind:        kind,
		Flags:       make(map[Scope][]string),
		IncludeDirs: make(map[Scope][]string),
		Defines:     make(map[Scope][]string),
	}
}

// scopeApplies reports whether an attribute in the given scope may attach to
// this target. Interface libraries accept only Interface-scoped attributes;
// anything else is dropped silently rather than rejected.
func (t *TargetSpec) scopeApplies(scope Scope) bool {
	if t.Kind == KindInterfaceLibrary {
		return scope == ScopeInterface
	}
	return true
}

// AddFlags appends compiler flags in the given scope, honoring the kind's
// scope rules. Dropped attributes are a no-op, never an error.
func (t *TargetSpec) AddFlags(scope Scope, flags ...string) {
	if !t.scopeApplies(scope) || len(flags) == 0 {
		return
	}
	t.Flags[scope] = append(t.Flags[scope], flags...)
}

// AddIncludeDirs appends include directories in the given scope.
func (t *TargetSpec) AddIncludeDirs(scope Scope, dirs ...string) {
	if !t.scopeApplies(scope) || len(dirs) == 0 {
		return
	}
	t.IncludeDirs[scope] = append(t.IncludeDirs[scope], dirs...)
}

// AddDefines appends preprocessor definitions in the given scope.
func (t *TargetSpec) AddDefines(scope Scope, defines ...string) {
	if !t.scopeApplies(scope) || len(defines) == 0 {
		return
	}
	t.Defines[scope] = append(t.Defines[scope], defines...)
}

// AddLinkerFlags appends linker flags. Interface libraries are never linked,
// so the call is a no-op for them.
func (t *TargetSpec) AddLinkerFlags(flags ...string) {
	if t.Kind == KindInterfaceLibrary || len(flags) == 0 {
		return
	}
	t.LinkerFlags = append(t.LinkerFlags, flags...)
}
