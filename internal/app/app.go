// Package app implements the configuration-pass orchestrator for mason.
package app

import (
	"context"
	"os"

	"go.trai.ch/mason/internal/adapters/compiler"
	"go.trai.ch/mason/internal/adapters/gitfiles"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/mason/internal/engine/configurator"
	"go.trai.ch/mason/internal/engine/flagprobe"
	"go.trai.ch/mason/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// warningCandidates is the default warning flag set offered to the probe.
// Only the flags the toolchain accepts end up on targets.
var warningCandidates = []string{
	"-Wall",
	"-Wextra",
	"-Wpedantic",
	"-Wshadow",
	"-Wconversion",
	"-Wsign-conversion",
	"-Wdouble-promotion",
	"-Wformat=2",
}

// formatPathspecs selects the sources fed to the format targets.
var formatPathspecs = []string{"*.c", "*.h", "*.cc", "*.cpp", "*.hpp"}

// Deps bundles the collaborators the App orchestrates.
type Deps struct {
	Loader   ports.ConfigLoader
	Locator  ports.Locator
	Store    ports.ProbeStore
	Logger   ports.Logger
	Tracer   ports.Tracer
	Detector *compiler.Detector
	Linkers  *compiler.LinkerSelector
	Probes   *flagprobe.Runner
	Git      *gitfiles.Client
	Builder  *pipeline.Builder
	Pipeline *pipeline.Runner
}

// App drives one configuration pass end to end.
type App struct {
	deps Deps
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{deps: deps}
}

// Result is everything one configuration pass produced.
type Result struct {
	Toolchain      domain.Toolchain
	SupportedFlags []string
	LinkerFlag     string
	Targets        []*domain.TargetSpec
	Graph          *domain.PipelineGraph
}

// Configure runs the full configuration pass: load the project, sync
// submodules, detect the toolchain, probe flags, configure targets, and
// register the pipeline graphs. Fatal misconfigurations abort with a single
// error; missing optional tools degrade with warnings.
func (a *App) Configure(ctx context.Context, cwd string) (*Result, error) {
	ctx, span := a.deps.Tracer.Start(ctx, "configure")
	defer span.End()

	// Anchor the probe cache inside the project being configured, not the
	// process working directory.
	if err := a.deps.Store.Rebase(cwd); err != nil {
		return nil, zerr.Wrap(err, "failed to open probe store")
	}

	project, err := a.deps.Loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	settings := project.Settings

	if err := a.deps.Git.SyncSubmodules(ctx, cwd); err != nil {
		return nil, err
	}

	tc, err := a.deps.Detector.Detect(ctx, os.Getenv("CC"))
	if err != nil {
		return nil, err
	}

	if settings.ForceProbe {
		// Force refresh drops both caches: persisted probe records for this
		// toolchain and the process-lifetime tool handles.
		a.deps.Locator.Reset()
		if err := a.deps.Store.InvalidateToolchain(tc.Identity()); err != nil {
			return nil, zerr.Wrap(err, "failed to invalidate probe cache")
		}
	}

	supported, err := a.deps.Probes.Probe(ctx, tc, warningCandidates, settings.ForceProbe)
	if err != nil {
		return nil, err
	}
	if settings.WarningsAsErrors && tc.Family.Supported() {
		supported = append(supported, "-Werror")
	}

	linkerFlag, _ := a.deps.Linkers.Select(ctx, tc)

	targets, err := a.configureTargets(project, tc, supported, linkerFlag)
	if err != nil {
		return nil, err
	}

	if err := a.buildPipelines(ctx, cwd, settings, targets); err != nil {
		return nil, err
	}

	graph := a.deps.Builder.Graph()
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return &Result{
		Toolchain:      tc,
		SupportedFlags: supported,
		LinkerFlag:     linkerFlag,
		Targets:        targets,
		Graph:          graph,
	}, nil
}

func (a *App) configureTargets(
	project *domain.Project,
	tc domain.Toolchain,
	supported []string,
	linkerFlag string,
) ([]*domain.TargetSpec, error) {
	cfg := configurator.NewConfigurator(project.Settings, tc, a.deps.Logger)

	targets := make([]*domain.TargetSpec, 0, len(project.Targets))
	for _, req := range project.Targets {
		spec, err := cfg.Configure(req)
		if err != nil {
			return nil, err
		}
		spec.AddFlags(domain.ScopePrivate, supported...)
		if linkerFlag != "" {
			spec.AddLinkerFlags(linkerFlag)
		}
		targets = append(targets, spec)
	}
	return targets, nil
}

func (a *App) buildPipelines(
	ctx context.Context,
	cwd string,
	settings domain.Settings,
	targets []*domain.TargetSpec,
) error {
	if settings.BuildType == domain.BuildTypeCoverage {
		for _, t := range targets {
			if t.Kind != domain.KindExecutable {
				continue
			}
			opts := pipeline.CoverageOptions{
				ExtraArgs: settings.CoverageArgs,
				Excludes:  settings.CoverageExcludes,
			}
			if err := a.deps.Builder.BuildCoverageGraph(t, opts); err != nil {
				return err
			}
		}
	}

	files, err := a.deps.Git.TrackedSources(ctx, cwd, formatPathspecs)
	if err != nil {
		return err
	}
	if err := a.deps.Builder.BuildFormatGraph(files); err != nil {
		return err
	}

	if settings.StaticAnalysis {
		for _, t := range targets {
			if t.Kind == domain.KindInterfaceLibrary {
				continue
			}
			if err := a.deps.Builder.BuildAnalysisGraph(t); err != nil {
				return err
			}
		}
	}

	return nil
}

// RunTarget configures the project, then executes the named pipeline entry
// point with the given parallelism.
func (a *App) RunTarget(ctx context.Context, cwd, entry string, parallelism int) error {
	result, err := a.Configure(ctx, cwd)
	if err != nil {
		return err
	}
	return a.deps.Pipeline.Run(ctx, result.Graph, entry, parallelism)
}
