package domain

import "go.trai.ch/zerr"

// BuildType is the closed enumeration of recognized build configurations.
type BuildType string

const (
	// BuildTypeDebug is an unoptimized build with debug info.
	BuildTypeDebug BuildType = "Debug"
	// BuildTypeRelease is an optimized build without debug info.
	BuildTypeRelease BuildType = "Release"
	// BuildTypeMinSizeRel is a size-optimized release build.
	BuildTypeMinSizeRel BuildType = "MinSizeRel"
	// BuildTypeRelWithDebInfo is an optimized build with debug info.
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	// BuildTypeCoverage is an instrumented build for coverage collection.
	BuildTypeCoverage BuildType = "Coverage"
)

// sanitizerActive maps each build type to whether sanitizer flags take effect.
// The table is consulted once at configuration time; call sites never restate
// the membership as string comparisons.
var sanitizerActive = map[BuildType]bool{
	BuildTypeDebug:          true,
	BuildTypeRelease:        false,
	BuildTypeMinSizeRel:     false,
	BuildTypeRelWithDebInfo: true,
	BuildTypeCoverage:       true,
}

// ParseBuildType validates a build type value. An empty value defaults to Debug.
func ParseBuildType(s string) (BuildType, error) {
	if s == "" {
		return BuildTypeDebug, nil
	}
	bt := BuildType(s)
	if _, ok := sanitizerActive[bt]; !ok {
		return "", zerr.With(ErrInvalidBuildType, "build_type", s)
	}
	return bt, nil
}

// SanitizersActive reports whether sanitizer flags are in effect for this build type.
func (bt BuildType) SanitizersActive() bool {
	return sanitizerActive[bt]
}

// String returns the canonical spelling of the build type.
func (bt BuildType) String() string {
	return string(bt)
}
