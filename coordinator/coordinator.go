package coordinator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nox-build/modsolve"
	"github.com/nox-build/modsolve/buildmanifest"
	"github.com/nox-build/modsolve/compiler"
	"github.com/nox-build/modsolve/projectfile"
	"github.com/nox-build/modsolve/source"
)

var errNegativeConcurrency = errors.New("coordinator: max concurrency must not be negative")

// Coordinator parses a project file, resolves its inputs, runs the
// placement solver, and (for Build) drives compilation.
type Coordinator struct {
	cfg *config
}

// New builds a Coordinator from opts.
func New(opts ...Option) (*Coordinator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("coordinator option: %w", err)
		}
	}
	return &Coordinator{cfg: cfg}, nil
}

// Solve parses projectPath, optionally glob-expands its uncompiled and
// non-namespaced file patterns, and runs the placement solver.
func (c *Coordinator) Solve(projectPath string) ([]modsolve.ModuleOutput, error) {
	spec, err := c.loadSpec(projectPath)
	if err != nil {
		return nil, err
	}
	c.cfg.logger.Info("solving project", "file", projectPath, "modules", len(spec))
	outputs, err := modsolve.Solve(spec)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", projectPath, err)
	}
	return outputs, nil
}

// loadSpec parses the manifest and, when a glob root is configured,
// expands every uncompiled/non-namespaced entry as a glob pattern against
// the manifest's declared source roots (or the configured glob root, if
// the manifest declares none). Namespaced files are never glob-expanded:
// their declared order is load order, supplied by an upstream namespace
// resolver, and expanding them here would discard that order.
func (c *Coordinator) loadSpec(projectPath string) (modsolve.ProjectSpec, error) {
	file, err := projectfile.ParseFile(projectPath)
	if err != nil {
		return nil, err
	}
	spec, declaredRoots, err := projectfile.BuildProjectSpec(file)
	if err != nil {
		return nil, err
	}

	if c.cfg.globRoot == "" {
		return spec, nil
	}

	roots := declaredRoots
	if len(roots) == 0 {
		roots = []string{"."}
	}

	resolver := source.GlobResolver{MaxConcurrency: c.cfg.maxConcurrency}
	expanded := make(modsolve.ProjectSpec, len(spec))
	for name, m := range spec {
		uncompiled, err := c.expand(resolver, roots, m.Uncompiled)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", name, err)
		}
		nonNamespaced, err := c.expand(resolver, roots, m.NonNamespaced)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", name, err)
		}
		expanded[name] = modsolve.ModuleSpec{
			DirectDeps:        m.DirectDeps,
			Uncompiled:        uncompiled,
			NonNamespaced:     nonNamespaced,
			NamespacedOrdered: m.NamespacedOrdered,
		}
	}

	if c.cfg.resolveNamespaces {
		if err := c.reorderNamespaced(expanded); err != nil {
			return nil, err
		}
	}

	return expanded, nil
}

// reorderNamespaced scans every module's namespaced files' actual
// goog.provide/goog.require statements and replaces each module's
// NamespacedOrdered with the resulting dependency order, via
// source.NamespaceResolver. Files are read relative to the configured
// glob root.
func (c *Coordinator) reorderNamespaced(spec modsolve.ProjectSpec) error {
	names := make([]string, 0, len(spec))
	moduleSources := make([]source.ModuleSources, 0, len(spec))
	for name, m := range spec {
		if len(m.NamespacedOrdered) == 0 {
			continue
		}
		files := make([]source.FileSource, len(m.NamespacedOrdered))
		for i, p := range m.NamespacedOrdered {
			content, err := os.ReadFile(filepath.Join(c.cfg.globRoot, p))
			if err != nil {
				return fmt.Errorf("module %q: read namespaced file %q: %w", name, p, err)
			}
			files[i] = source.FileSource{Path: p, Content: content}
		}
		names = append(names, name)
		moduleSources = append(moduleSources, source.ModuleSources{Module: name, Files: files})
	}

	resolver := source.NamespaceResolver{MaxConcurrency: c.cfg.maxConcurrency}
	ordered, err := resolver.ResolveAll(moduleSources)
	if err != nil {
		return fmt.Errorf("resolve namespaces: %w", err)
	}

	for _, name := range names {
		m := spec[name]
		m.NamespacedOrdered = ordered[name]
		spec[name] = m
	}
	return nil
}

func (c *Coordinator) expand(resolver source.GlobResolver, roots []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	sourceRoots := make([]source.SourceRoot, len(roots))
	for i, dir := range roots {
		sourceRoots[i] = source.SourceRoot{Dir: filepath.Join(c.cfg.globRoot, dir), Patterns: patterns}
	}
	return resolver.Resolve(sourceRoots)
}

// Build solves projectPath and writes one concatenated artifact per
// module under outDir, alongside a buildmanifest.json recording what was
// written.
func (c *Coordinator) Build(ctx context.Context, projectPath, outDir string) (*buildmanifest.Manifest, error) {
	outputs, err := c.Solve(projectPath)
	if err != nil {
		return nil, err
	}

	var compiled compiler.Driver = compiler.CompiledPassthroughDriver()
	if c.cfg.compilerPath != "" {
		compiled = compiler.ExecDriver{Path: c.cfg.compilerPath, ExtraArgs: c.cfg.compilerArgs}
	}
	cc := compiler.Concatenator{
		Passthrough:    compiler.PassthroughDriver{},
		Compiled:       compiled,
		MaxConcurrency: c.cfg.maxConcurrency,
	}

	if err := writeModules(ctx, cc, outputs, outDir, c.cfg.logger); err != nil {
		return nil, err
	}

	manifest := buildmanifest.FromSolve(outputs)
	manifestPath := filepath.Join(outDir, "buildmanifest.json")
	if err := manifest.WriteFile(manifestPath); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	c.cfg.logger.Info("build complete", "modules", len(outputs), "out", outDir)
	return manifest, nil
}

// ExplainFile reports which module a given input path was placed in.
func (c *Coordinator) ExplainFile(projectPath, target string) (modsolve.ModuleOutput, bool, error) {
	outputs, err := c.Solve(projectPath)
	if err != nil {
		return modsolve.ModuleOutput{}, false, err
	}
	for _, out := range outputs {
		for _, f := range out.CompiledInputFiles {
			if f == target {
				return out, true, nil
			}
		}
		for _, f := range out.DontCompileInputFiles {
			if f == target {
				return out, true, nil
			}
		}
	}
	return modsolve.ModuleOutput{}, false, nil
}
