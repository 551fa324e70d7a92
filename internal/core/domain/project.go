// Package domain contains the core domain models for the configuration pass:
// toolchains, build types, targets, probes, and pipeline graphs.
package domain

// Settings holds the project-wide knobs consumed from mason.yaml and the
// environment. They are fixed for the duration of one configuration pass.
type Settings struct {
	BuildType BuildType
	// MultiConfig marks a multi-configuration generator, which provides its
	// own per-build-type output directories.
	MultiConfig      bool
	WarningsAsErrors bool
	// ForceProbe invalidates cached probe results and re-runs every probe.
	ForceProbe     bool
	StaticAnalysis bool
	// CoverageExcludes filters paths out of the filtered coverage report.
	CoverageExcludes []string
	// CoverageArgs are extra arguments passed to the instrumented binary.
	CoverageArgs []string
	// ForceCoverageFlags applies coverage instrumentation flags to targets
	// even when the build type is not Coverage.
	ForceCoverageFlags bool
}

// ConfigRequest enumerates everything a target asks the configurator to apply.
type ConfigRequest struct {
	Name        string
	Kind        TargetKind
	CStandard   string
	CXXStandard string

	Flags          []string
	SanitizerFlags []string
	LinkerFlags    []string
	IncludeDirs    map[Scope][]string
	Defines        map[Scope][]string

	// EliminateUnusedCode enables dead-code stripping via section flags.
	// A no-op with a diagnostic on unsupported toolchains.
	EliminateUnusedCode bool
	// OutputDirPerBuildType routes artifacts into a build-type subdirectory.
	// Ignored under multi-config generators.
	OutputDirPerBuildType bool
}

// Project is the loaded configuration: project-wide settings plus one request
// per declared target.
type Project struct {
	Settings Settings
	Targets  []ConfigRequest
}
