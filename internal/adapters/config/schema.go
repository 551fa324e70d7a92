package config

// Masonfile represents the structure of the mason.yaml configuration file.
type Masonfile struct {
	Version   string               `yaml:"version"`
	BuildType string               `yaml:"buildType"`
	Generator GeneratorDTO         `yaml:"generator"`
	Probing   ProbingDTO           `yaml:"probing"`
	Analysis  AnalysisDTO          `yaml:"analysis"`
	Coverage  CoverageDTO          `yaml:"coverage"`
	Targets   map[string]TargetDTO `yaml:"targets"`
}

// GeneratorDTO describes the downstream build generator.
type GeneratorDTO struct {
	MultiConfig bool `yaml:"multiConfig"`
}

// ProbingDTO holds flag-probing knobs.
type ProbingDTO struct {
	WarningsAsErrors bool `yaml:"warningsAsErrors"`
	ForceRefresh     bool `yaml:"forceRefresh"`
}

// AnalysisDTO holds static-analysis knobs.
type AnalysisDTO struct {
	Enabled bool `yaml:"enabled"`
}

// CoverageDTO holds coverage-report knobs.
type CoverageDTO struct {
	Excludes  []string `yaml:"excludes"`
	ExtraArgs []string `yaml:"extraArgs"`
	// ForceFlags applies coverage instrumentation flags regardless of the
	// configured build type.
	ForceFlags bool `yaml:"forceFlags"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Kind        string              `yaml:"kind"`
	CStandard   string              `yaml:"cStandard"`
	CXXStandard string              `yaml:"cxxStandard"`
	Flags       []string            `yaml:"flags"`
	Sanitizers  []string            `yaml:"sanitizers"`
	LinkerFlags []string            `yaml:"linkerFlags"`
	Includes    map[string][]string `yaml:"includes"`
	Defines     map[string][]string `yaml:"defines"`

	EliminateUnusedCode   bool `yaml:"eliminateUnusedCode"`
	OutputDirPerBuildType bool `yaml:"outputDirPerBuildType"`
}
