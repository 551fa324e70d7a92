// Package pipeline constructs and executes DAGs of external-tool steps:
// the coverage machinery, format targets, and static analysis.
package pipeline

import (
	"path/filepath"
	"strings"

	"go.trai.ch/mason/internal/core/domain"
	"go.trai.ch/mason/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// AggregateReport is the shared entry point that reports coverage for
	// every registered target.
	AggregateReport = "coverage_report"
	// AggregateAnalysis is the shared entry point for all analysis steps.
	AggregateAnalysis = "analysis"
	// StepFormat rewrites tracked sources in place.
	StepFormat = "format"
	// StepCheckFormat verifies formatting without rewriting.
	StepCheckFormat = "check_format"

	coverageDir = "coverage"
)

// cppcheckFlags is the fixed flag set for the static analyzer.
var cppcheckFlags = []string{
	"--enable=warning,style,performance",
	"--error-exitcode=1",
	"--inline-suppr",
	"--quiet",
}

// CoverageOptions tune one target's coverage pipeline.
type CoverageOptions struct {
	// ExtraArgs are passed to the instrumented binary.
	ExtraArgs []string
	// AdditionalObjects are extra binaries whose counters feed the report.
	AdditionalObjects []string
	// Excludes filter paths out of a second, filtered report.
	Excludes []string
}

// Builder accumulates pipeline steps for one configuration pass into a single
// graph. Named aggregate steps are created at most once and shared: many
// targets attach to one aggregate.
type Builder struct {
	locator ports.Locator
	logger  ports.Logger
	graph   *domain.PipelineGraph
}

// NewBuilder creates a new Builder with an empty graph.
func NewBuilder(locator ports.Locator, logger ports.Logger) *Builder {
	return &Builder{
		locator: locator,
		logger:  logger,
		graph:   domain.NewPipelineGraph(),
	}
}

// Graph returns the accumulated graph. Callers validate it once building is done.
func (b *Builder) Graph() *domain.PipelineGraph {
	return b.graph
}

// BuildCoverageGraph registers the coverage machinery for one target:
// setup -> run -> merge -> report, with the report forking into full and
// filtered siblings when excludes are given.
//
// Requesting coverage for a non-executable target is a fatal configuration
// error, raised before any step is created. Missing coverage tooling only
// degrades: a warning is emitted and no steps are registered.
func (b *Builder) BuildCoverageGraph(target *domain.TargetSpec, opts CoverageOptions) error {
	if target.Kind != domain.KindExecutable {
		return zerr.With(zerr.With(domain.ErrNotExecutable, "target", target.Name), "kind", target.Kind.String())
	}

	profdataTool := b.locator.Resolve("llvm-profdata")
	covTool := b.locator.Resolve("llvm-cov")
	if !profdataTool.Found || !covTool.Found {
		b.logger.Warn("coverage tooling not found, skipping coverage targets for " + target.Name)
		return nil
	}

	name := target.Name
	profraw := filepath.Join(coverageDir, name+".profraw")
	profdata := filepath.Join(coverageDir, name+".profdata")

	setupID := "coverage_setup-" + name
	runID := "coverage_run-" + name
	mergeID := "coverage_merge-" + name
	targetAggID := AggregateReport + "-" + name

	steps := []*domain.Step{
		{
			ID:      setupID,
			Command: []string{"rm", "-f", profraw, profdata},
		},
		{
			ID:        runID,
			Command:   append([]string{"./" + name}, opts.ExtraArgs...),
			DependsOn: []string{setupID},
			Env:       []string{"LLVM_PROFILE_FILE=" + profraw},
			// A failing test run still writes usable profile data. This is
			// the one step where a non-zero exit does not stop the pipeline.
			ToleratesFailure: true,
			Byproducts:       []string{profraw},
		},
		{
			ID:         mergeID,
			Command:    []string{profdataTool.Path, "merge", "-sparse", profraw, "-o", profdata},
			DependsOn:  []string{runID},
			Byproducts: []string{profdata},
		},
	}

	reportIDs := b.reportSteps(&steps, covTool.Path, target, profdata, opts)

	// Per-target aggregate, then the shared one every target attaches to.
	steps = append(steps, &domain.Step{ID: targetAggID, DependsOn: reportIDs})

	for _, s := range steps {
		if err := b.graph.AddStep(s); err != nil {
			return err
		}
	}

	if err := b.ensureAggregate(AggregateReport); err != nil {
		return err
	}
	return b.graph.AddDependency(AggregateReport, targetAggID)
}

// reportSteps appends the terminal report step(s) and returns their ids.
func (b *Builder) reportSteps(
	steps *[]*domain.Step,
	covPath string,
	target *domain.TargetSpec,
	profdata string,
	opts CoverageOptions,
) []string {
	name := target.Name
	mergeID := "coverage_merge-" + name

	show := []string{covPath, "show", "./" + name, "-instr-profile=" + profdata}
	for _, obj := range opts.AdditionalObjects {
		show = append(show, "-object", obj)
	}

	if len(opts.Excludes) == 0 {
		outDir := filepath.Join(coverageDir, name)
		*steps = append(*steps, &domain.Step{
			ID:         "coverage_show-" + name,
			Command:    append(show, "-format=html", "-output-dir="+outDir),
			DependsOn:  []string{mergeID},
			Byproducts: []string{outDir},
		})
		return []string{"coverage_show-" + name}
	}

	fullDir := filepath.Join(coverageDir, name, "full")
	filteredDir := filepath.Join(coverageDir, name, "filtered")
	fullCmd := append(append([]string{}, show...), "-format=html", "-output-dir="+fullDir)
	filteredCmd := append(append([]string{}, show...),
		"-format=html",
		"-output-dir="+filteredDir,
		"-ignore-filename-regex="+strings.Join(opts.Excludes, "|"),
	)

	*steps = append(*steps,
		&domain.Step{
			ID:         "coverage_show-" + name + "-full",
			Command:    fullCmd,
			DependsOn:  []string{mergeID},
			Byproducts: []string{fullDir},
		},
		&domain.Step{
			ID:         "coverage_show-" + name + "-filtered",
			Command:    filteredCmd,
			DependsOn:  []string{mergeID},
			Byproducts: []string{filteredDir},
		},
	)
	return []string{"coverage_show-" + name + "-full", "coverage_show-" + name + "-filtered"}
}

// BuildFormatGraph registers the format and check_format steps over the given
// files. A missing formatter degrades with a warning.
func (b *Builder) BuildFormatGraph(files []string) error {
	if len(files) == 0 {
		return nil
	}

	formatter := b.locator.Resolve("clang-format")
	if !formatter.Found {
		b.logger.Warn("clang-format not found, skipping format targets")
		return nil
	}

	if err := b.graph.AddStep(&domain.Step{
		ID:      StepFormat,
		Command: append([]string{formatter.Path, "-i"}, files...),
	}); err != nil {
		return err
	}
	return b.graph.AddStep(&domain.Step{
		ID:      StepCheckFormat,
		Command: append([]string{formatter.Path, "--dry-run", "--Werror"}, files...),
	})
}

// BuildAnalysisGraph registers a static-analysis step for one target and
// attaches it to the shared analysis aggregate. A missing analyzer degrades
// with a warning.
func (b *Builder) BuildAnalysisGraph(target *domain.TargetSpec) error {
	analyzer := b.locator.Resolve("cppcheck")
	if !analyzer.Found {
		b.logger.Warn("cppcheck not found, skipping static analysis for " + target.Name)
		return nil
	}

	cmd := append([]string{analyzer.Path}, cppcheckFlags...)
	for _, scope := range []domain.Scope{domain.ScopePublic, domain.ScopePrivate, domain.ScopeInterface} {
		for _, dir := range target.IncludeDirs[scope] {
			cmd = append(cmd, "-I", dir)
		}
	}
	cmd = append(cmd, ".")

	stepID := "analysis-" + target.Name
	if err := b.graph.AddStep(&domain.Step{ID: stepID, Command: cmd}); err != nil {
		return err
	}

	if err := b.ensureAggregate(AggregateAnalysis); err != nil {
		return err
	}
	return b.graph.AddDependency(AggregateAnalysis, stepID)
}

// ensureAggregate creates the named command-less step once.
func (b *Builder) ensureAggregate(id string) error {
	if _, ok := b.graph.Step(id); ok {
		return nil
	}
	return b.graph.AddStep(&domain.Step{ID: id})
}
