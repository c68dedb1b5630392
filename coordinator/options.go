// Package coordinator is the boundary driver that wires the project-file
// parser, the glob and namespace resolvers, the modsolve core, and the
// compiler drivers together into the three operations the CLI exposes:
// solving a project, building it to disk, and explaining one file's
// placement. It is the only package in this module that performs I/O on
// the coordinator's own initiative (reading the project file, globbing
// the filesystem, spawning compiler processes) — modsolve itself never
// does.
package coordinator

import (
	"log/slog"
)

// Option configures a Coordinator.
type Option func(*config) error

type config struct {
	logger            *slog.Logger
	globRoot          string
	compilerPath      string
	compilerArgs      []string
	maxConcurrency    int
	resolveNamespaces bool
}

func defaultConfig() *config {
	return &config{
		logger: slog.Default(),
	}
}

// WithLogger sets the structured logger used for boundary-layer
// diagnostics (parsing, globbing, compiling). The solver core itself
// never logs.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithGlobRoot sets the directory glob patterns in the project file are
// resolved against. If unset, input paths are taken as already-resolved
// literal paths and no globbing occurs.
func WithGlobRoot(dir string) Option {
	return func(c *config) error {
		c.globRoot = dir
		return nil
	}
}

// WithCompiler configures the external compiler binary invoked for
// compiled input files during Build.
func WithCompiler(path string, args ...string) Option {
	return func(c *config) error {
		c.compilerPath = path
		c.compilerArgs = args
		return nil
	}
}

// WithNamespaceResolution enables scanning namespaced files' actual
// goog.provide/goog.require statements (via source.NamespaceResolver) and
// reordering each module's namespaced list accordingly, instead of taking
// the manifest's declared order as already correct. Requires WithGlobRoot
// to be set, since it reads file content from disk. Off by default: a
// manifest's namespaced list is normally pre-ordered by an upstream
// resolver (spec invariant), and this option exists for projects that
// declare namespaced files in arbitrary order and want modsolve itself to
// derive the load order.
func WithNamespaceResolution() Option {
	return func(c *config) error {
		c.resolveNamespaces = true
		return nil
	}
}

// WithMaxConcurrency bounds how many modules' compiler invocations, and
// how many glob roots, run at once. Zero (the default) uses each
// collaborator's own package default.
func WithMaxConcurrency(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return errNegativeConcurrency
		}
		c.maxConcurrency = n
		return nil
	}
}
