// Package projectfile parses the Starlark-like project manifest that
// declares a project's modules and their input files, producing the
// modsolve.ProjectSpec the placement solver consumes.
//
// The manifest format mirrors Bazel's MODULE.bazel in spirit — a small set
// of top-level function calls, parsed with
// github.com/bazelbuild/buildtools/build — but the vocabulary is this
// project's own: module() declares one output module, project() declares
// project-wide source roots.
package projectfile

import "github.com/bazelbuild/buildtools/build"

// Position is a source location for diagnostics.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// File is a parsed project manifest.
type File struct {
	Path       string
	Statements []Statement
	raw        *build.File
}

// Raw returns the underlying buildtools File for advanced use cases.
func (f *File) Raw() *build.File { return f.raw }

// Statement is the interface for all recognized manifest statements.
type Statement interface {
	Position() Position
	isStatement()
}

// ModuleDecl represents a module(...) declaration.
type ModuleDecl struct {
	Pos           Position
	Name          string
	DirectDeps    []string
	Uncompiled    []string
	NonNamespaced []string
	Namespaced    []string
}

func (m *ModuleDecl) Position() Position { return m.Pos }
func (m *ModuleDecl) isStatement()       {}

// ProjectDecl represents the project(...) declaration: project-wide source
// roots that the source package's GlobResolver expands patterns against.
type ProjectDecl struct {
	Pos         Position
	SourceRoots []string
}

func (p *ProjectDecl) Position() Position { return p.Pos }
func (p *ProjectDecl) isStatement()       {}

// UnknownStatement represents an unrecognized top-level call, kept for
// forward compatibility rather than treated as a hard parse error.
type UnknownStatement struct {
	Pos      Position
	FuncName string
	Raw      build.Expr
}

func (u *UnknownStatement) Position() Position { return u.Pos }
func (u *UnknownStatement) isStatement()       {}
