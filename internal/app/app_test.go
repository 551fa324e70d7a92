package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/compiler"
	"go.trai.ch/mason/internal/adapters/config"
	"go.trai.ch/mason/internal/adapters/fs"
	"go.trai.ch/mason/internal/adapters/gitfiles"
	"go.trai.ch/mason/internal/adapters/probestore"
	"go.trai.ch/mason/internal/adapters/telemetry"
	"go.trai.ch/mason/internal/adapters/tools"
	"go.trai.ch/mason/internal/app"
	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports/mocks"
	"go.trai.ch/mason/internal/engine/flagprobe"
	"go.trai.ch/mason/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

const clangVersion = "clang version 17.0.1\nTarget: x86_64-pc-linux-gnu\n"

// toolboxRunner simulates every external tool the configuration pass touches.
type toolboxRunner struct {
	mu  sync.Mutex
	ran []string
}

func (r *toolboxRunner) Run(_ context.Context, cmd domain.Command) (domain.CommandResult, error) {
	r.mu.Lock()
	r.ran = append(r.ran, filepath.Base(cmd.Path)+" "+strings.Join(cmd.Args, " "))
	r.mu.Unlock()

	switch filepath.Base(cmd.Path) {
	case "cc":
		if len(cmd.Args) > 0 && cmd.Args[0] == "--version" {
			return domain.CommandResult{Stdout: clangVersion}, nil
		}
		if len(cmd.Args) > 0 && strings.HasPrefix(cmd.Args[0], "-fuse-ld=lld") {
			return domain.CommandResult{Stdout: "LLD 17.0.1 (compatible with GNU linkers)"}, nil
		}
		// Flag probes: everything compiles.
		return domain.CommandResult{}, nil
	case "git":
		for _, a := range cmd.Args {
			if a == "--deleted" {
				return domain.CommandResult{}, nil
			}
		}
		if len(cmd.Args) > 0 && cmd.Args[0] == "ls-files" {
			return domain.CommandResult{Stdout: "main.c\nutil.h\n"}, nil
		}
		return domain.CommandResult{}, nil
	default:
		return domain.CommandResult{}, nil
	}
}

func newApp(t *testing.T, runner *toolboxRunner) *app.App {
	t.Helper()
	return newAppWithStore(t, runner, filepath.Join(t.TempDir(), "probes.json"))
}

func newAppWithStore(t *testing.T, runner *toolboxRunner, storePath string) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	locator := tools.NewLocatorWithLookup(func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	})
	store, err := probestore.NewStore(storePath)
	require.NoError(t, err)
	tracer := telemetry.NewNoOpTracer()

	return app.New(app.Deps{
		Loader:   &config.FileConfigLoader{Filename: "mason.yaml"},
		Locator:  locator,
		Store:    store,
		Logger:   logger,
		Tracer:   tracer,
		Detector: compiler.NewDetector(locator, runner, logger),
		Linkers:  compiler.NewLinkerSelector(runner, logger),
		Probes:   flagprobe.NewRunner(store, compiler.NewFlagProber(runner), logger, tracer),
		Git:      gitfiles.NewClient(locator, runner, logger),
		Builder:  pipeline.NewBuilder(locator, logger),
		Pipeline: pipeline.NewRunner(runner, fs.NewVerifier(), logger, tracer),
	})
}

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mason.yaml"), []byte(content), 0o644))
	return dir
}

const coverageProject = `
buildType: Coverage
probing:
  warningsAsErrors: true
analysis:
  enabled: true
targets:
  app:
    kind: executable
    sanitizers:
      - "-fsanitize=address"
  headers:
    kind: interface
`

func TestApp_Configure(t *testing.T) {
	t.Setenv("CC", "cc")
	runner := &toolboxRunner{}
	a := newApp(t, runner)
	cwd := writeProject(t, coverageProject)

	result, err := a.Configure(context.Background(), cwd)
	require.NoError(t, err)

	assert.Equal(t, domain.FamilyClang, result.Toolchain.Family)
	assert.Equal(t, "-fuse-ld=lld", result.LinkerFlag)
	assert.Contains(t, result.SupportedFlags, "-Wall")
	assert.Equal(t, "-Werror", result.SupportedFlags[len(result.SupportedFlags)-1])

	require.Len(t, result.Targets, 2)
	appTarget := result.Targets[0]
	assert.Equal(t, "app", appTarget.Name)
	assert.Contains(t, appTarget.Flags[domain.ScopePrivate], "-fsanitize=address")
	assert.Contains(t, appTarget.Flags[domain.ScopePrivate], "-fprofile-instr-generate")
	assert.Contains(t, appTarget.Flags[domain.ScopePrivate], "-fcoverage-mapping")
	assert.Contains(t, appTarget.LinkerFlags, "-fprofile-instr-generate")
	assert.Contains(t, appTarget.LinkerFlags, "-fuse-ld=lld")

	// Interface libraries keep no private attributes.
	headers := result.Targets[1]
	assert.Empty(t, headers.Flags[domain.ScopePrivate])
	assert.Empty(t, headers.LinkerFlags)

	// Coverage build type registers the coverage machinery for executables.
	for _, id := range []string{
		"coverage_setup-app", "coverage_run-app", "coverage_merge-app",
		pipeline.AggregateReport, pipeline.StepFormat, pipeline.StepCheckFormat,
		"analysis-app", pipeline.AggregateAnalysis,
	} {
		_, ok := result.Graph.Step(id)
		assert.True(t, ok, "missing step %s", id)
	}

	// No analysis for the interface library.
	_, ok := result.Graph.Step("analysis-headers")
	assert.False(t, ok)
}

func TestApp_ConfigureCachesProbes(t *testing.T) {
	t.Setenv("CC", "cc")
	runner := &toolboxRunner{}
	storePath := filepath.Join(t.TempDir(), "probes.json")
	cwd := writeProject(t, coverageProject)

	// Fresh app per pass, sharing the probe store on disk: the pipeline
	// builder accumulates per pass, the probe cache persists across them.
	_, err := newAppWithStore(t, runner, storePath).Configure(context.Background(), cwd)
	require.NoError(t, err)
	firstPass := len(runner.ran)

	_, err = newAppWithStore(t, runner, storePath).Configure(context.Background(), cwd)
	require.NoError(t, err)

	// The second pass answers flag probes from the store; only version
	// queries, git, and linker probes run again.
	probeRuns := 0
	for _, invocation := range runner.ran[firstPass:] {
		if strings.HasPrefix(invocation, "cc -Werror") {
			probeRuns++
		}
	}
	assert.Zero(t, probeRuns)
}

func TestApp_RunTargetFormat(t *testing.T) {
	t.Setenv("CC", "cc")
	runner := &toolboxRunner{}
	a := newApp(t, runner)
	cwd := writeProject(t, "buildType: Debug\n")

	require.NoError(t, a.RunTarget(context.Background(), cwd, pipeline.StepFormat, 2))

	var formatted bool
	for _, invocation := range runner.ran {
		if strings.HasPrefix(invocation, "clang-format -i") {
			formatted = true
		}
	}
	assert.True(t, formatted)
}

func TestApp_RunTargetUnknownEntry(t *testing.T) {
	t.Setenv("CC", "cc")
	a := newApp(t, &toolboxRunner{})
	cwd := writeProject(t, "buildType: Debug\n")

	err := a.RunTarget(context.Background(), cwd, "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrStepNotFound)
}
