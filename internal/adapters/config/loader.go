// Package config provides the configuration loader for mason.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Project, error) {
	path := filepath.Join(cwd, l.Filename)
	return Load(path)
}

// Load reads a configuration file from the given path and returns a domain.Project.
// Invalid values (build type, target kind, scope) are fatal misconfigurations:
// nothing is silently substituted.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var mf Masonfile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	buildType, err := domain.ParseBuildType(mf.BuildType)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Settings: domain.Settings{
			BuildType:          buildType,
			MultiConfig:        mf.Generator.MultiConfig,
			WarningsAsErrors:   mf.Probing.WarningsAsErrors,
			ForceProbe:         mf.Probing.ForceRefresh,
			StaticAnalysis:     mf.Analysis.Enabled,
			CoverageExcludes:   mf.Coverage.Excludes,
			CoverageArgs:       mf.Coverage.ExtraArgs,
			ForceCoverageFlags: mf.Coverage.ForceFlags,
		},
	}

	// Map iteration is random; sort names for a deterministic target order.
	names := make([]string, 0, len(mf.Targets))
	for name := range mf.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		req, err := targetRequest(name, mf.Targets[name])
		if err != nil {
			return nil, err
		}
		project.Targets = append(project.Targets, req)
	}

	return project, nil
}

func targetRequest(name string, dto TargetDTO) (domain.ConfigRequest, error) {
	kind, err := domain.ParseTargetKind(dto.Kind)
	if err != nil {
		return domain.ConfigRequest{}, zerr.With(err, "target", name)
	}

	includes, err := scopedAttrs(name, dto.Includes)
	if err != nil {
		return domain.ConfigRequest{}, err
	}
	defines, err := scopedAttrs(name, dto.Defines)
	if err != nil {
		return domain.ConfigRequest{}, err
	}

	return domain.ConfigRequest{
		Name:                  name,
		Kind:                  kind,
		CStandard:             dto.CStandard,
		CXXStandard:           dto.CXXStandard,
		Flags:                 dto.Flags,
		SanitizerFlags:        dto.Sanitizers,
		LinkerFlags:           dto.LinkerFlags,
		IncludeDirs:           includes,
		Defines:               defines,
		EliminateUnusedCode:   dto.EliminateUnusedCode,
		OutputDirPerBuildType: dto.OutputDirPerBuildType,
	}, nil
}

func scopedAttrs(target string, attrs map[string][]string) (map[domain.Scope][]string, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	out := make(map[domain.Scope][]string, len(attrs))
	for scope, values := range attrs {
		switch s := domain.Scope(scope); s {
		case domain.ScopePublic, domain.ScopePrivate, domain.ScopeInterface:
			out[s] = values
		default:
			return nil, zerr.With(zerr.With(zerr.New("invalid attribute scope"), "target", target), "scope", scope)
		}
	}
	return out, nil
}
