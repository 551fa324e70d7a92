// Package configurator applies validated configuration requests to target specs.
package configurator

import (
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

// sectionFlags enable per-function/per-data sections so the linker can drop
// unreferenced code. Identical for both supported families.
var sectionFlags = []string{"-ffunction-sections", "-fdata-sections"}

// gcSectionsFlag asks the linker to strip unreferenced sections.
const gcSectionsFlag = "-Wl,--gc-sections"

// llvmCoverageFlags enable source-based coverage instrumentation on Clang.
// The coverage pipeline's merge and report steps consume the profiles the
// instrumented binary emits.
var llvmCoverageFlags = []string{"-fprofile-instr-generate", "-fcoverage-mapping"}

// gnuCoverageFlag enables gcov-style instrumentation on GNU toolchains.
const gnuCoverageFlag = "--coverage"

// Configurator applies ConfigRequests to TargetSpecs. Settings and toolchain
// are fixed at construction: the target configuration is decided at
// graph-generation time, not re-evaluated at run time.
type Configurator struct {
	settings domain.Settings
	tc       domain.Toolchain
	logger   ports.Logger
}

// NewConfigurator creates a new Configurator for one configuration pass.
func NewConfigurator(settings domain.Settings, tc domain.Toolchain, logger ports.Logger) *Configurator {
	return &Configurator{
		settings: settings,
		tc:       tc,
		logger:   logger,
	}
}

// Configure creates a spec for the request and applies it.
func (c *Configurator) Configure(req domain.ConfigRequest) (*domain.TargetSpec, error) {
	if req.Name == "" {
		return nil, domain.ErrMissingTargetName
	}
	spec := domain.NewTargetSpec(req.Name, req.Kind)
	if err := c.Apply(spec, req); err != nil {
		return nil, err
	}
	return spec, nil
}

// Apply applies the request to the spec. The caller owns the spec; the
// configurator never retains a reference beyond the call.
//
// A missing target name is a fatal misconfiguration. Scope rules are enforced
// by the spec itself: Public/Private attributes on interface libraries are
// dropped silently.
func (c *Configurator) Apply(spec *domain.TargetSpec, req domain.ConfigRequest) error {
	if req.Name == "" {
		return domain.ErrMissingTargetName
	}
	if spec == nil {
		return zerr.With(zerr.New("nil target spec"), "target", req.Name)
	}

	spec.CStandard = req.CStandard
	spec.CXXStandard = req.CXXStandard

	spec.AddFlags(domain.ScopePrivate, req.Flags...)
	spec.AddLinkerFlags(req.LinkerFlags...)

	for scope, dirs := range req.IncludeDirs {
		spec.AddIncludeDirs(scope, dirs...)
	}
	for scope, defines := range req.Defines {
		spec.AddDefines(scope, defines...)
	}

	// Sanitizer activation is a property of the build type, consulted from
	// the domain table once here.
	if len(req.SanitizerFlags) > 0 && c.settings.BuildType.SanitizersActive() {
		spec.AddFlags(domain.ScopePrivate, req.SanitizerFlags...)
		spec.AddLinkerFlags(req.SanitizerFlags...)
	}

	if c.settings.BuildType == domain.BuildTypeCoverage || c.settings.ForceCoverageFlags {
		c.applyCoverageInstrumentation(spec)
	}

	if req.EliminateUnusedCode {
		c.applyUnusedCodeElimination(spec)
	}

	if req.OutputDirPerBuildType && !c.settings.MultiConfig {
		// Multi-config generators provide their own per-build-type
		// subdirectories, so the toggle only acts on single-config ones.
		spec.OutputSubdir = c.settings.BuildType.String()
	}

	return nil
}

func (c *Configurator) applyCoverageInstrumentation(spec *domain.TargetSpec) {
	switch c.tc.Family {
	case domain.FamilyClang:
		spec.AddFlags(domain.ScopePrivate, llvmCoverageFlags...)
		// The linker needs the profile runtime, not the mapping flag.
		spec.AddLinkerFlags(llvmCoverageFlags[0])
	case domain.FamilyGNU:
		spec.AddFlags(domain.ScopePrivate, gnuCoverageFlag)
		spec.AddLinkerFlags(gnuCoverageFlag)
	case domain.FamilyUnsupported:
		c.logger.Warn("coverage instrumentation not supported for this toolchain, skipping: " + spec.Name)
	}
}

func (c *Configurator) applyUnusedCodeElimination(spec *domain.TargetSpec) {
	switch c.tc.Family {
	case domain.FamilyGNU, domain.FamilyClang:
		spec.AddFlags(domain.ScopePrivate, sectionFlags...)
		spec.AddLinkerFlags(gcSectionsFlag)
	case domain.FamilyUnsupported:
		c.logger.Warn("unused code elimination not supported for this toolchain, skipping: " + spec.Name)
	}
}
