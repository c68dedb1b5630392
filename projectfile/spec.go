package projectfile

import (
	"fmt"

	"github.com/nox-build/modsolve"
	"github.com/nox-build/modsolve/label"
)

// DuplicateModuleError reports the same module name declared twice in one
// manifest.
type DuplicateModuleError struct {
	Name  string
	First Position
	Again Position
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module %q declared twice (first at %s:%d, again at %s:%d)",
		e.Name, e.First.Filename, e.First.Line, e.Again.Filename, e.Again.Line)
}

// InvalidModuleNameError reports a module() name that fails label
// validation (e.g. empty, or containing characters that cannot appear in
// a Starlark identifier).
type InvalidModuleNameError struct {
	Name string
	Pos  Position
	Err  error
}

func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("%s:%d: invalid module name %q: %v", e.Pos.Filename, e.Pos.Line, e.Name, e.Err)
}

func (e *InvalidModuleNameError) Unwrap() error { return e.Err }

// InvalidFilePathError reports an input file path that fails label
// validation (empty, backslash-separated, or escaping the project root).
type InvalidFilePathError struct {
	Path   string
	Module string
	Pos    Position
	Err    error
}

func (e *InvalidFilePathError) Error() string {
	return fmt.Sprintf("%s:%d: module %q declares invalid file path %q: %v", e.Pos.Filename, e.Pos.Line, e.Module, e.Path, e.Err)
}

func (e *InvalidFilePathError) Unwrap() error { return e.Err }

// specBuilder is a Handler that assembles a modsolve.ProjectSpec and the
// project's declared source roots from a walked File.
type specBuilder struct {
	BaseHandler
	spec        modsolve.ProjectSpec
	declaredAt  map[string]Position
	sourceRoots []string
}

func newSpecBuilder() *specBuilder {
	return &specBuilder{
		spec:       make(modsolve.ProjectSpec),
		declaredAt: make(map[string]Position),
	}
}

func (b *specBuilder) Module(decl *ModuleDecl) error {
	if _, err := label.NewModuleName(decl.Name); err != nil {
		return &InvalidModuleNameError{Name: decl.Name, Pos: decl.Pos, Err: err}
	}
	if first, ok := b.declaredAt[decl.Name]; ok {
		return &DuplicateModuleError{Name: decl.Name, First: first, Again: decl.Pos}
	}
	b.declaredAt[decl.Name] = decl.Pos

	for _, paths := range [][]string{decl.Uncompiled, decl.NonNamespaced, decl.Namespaced} {
		if err := validateFilePaths(decl.Name, decl.Pos, paths); err != nil {
			return err
		}
	}

	b.spec[decl.Name] = modsolve.ModuleSpec{
		DirectDeps:        decl.DirectDeps,
		Uncompiled:        decl.Uncompiled,
		NonNamespaced:     decl.NonNamespaced,
		NamespacedOrdered: decl.Namespaced,
	}
	return nil
}

func (b *specBuilder) Project(decl *ProjectDecl) error {
	if err := validateFilePaths("project", decl.Pos, decl.SourceRoots); err != nil {
		return err
	}
	b.sourceRoots = append(b.sourceRoots, decl.SourceRoots...)
	return nil
}

func validateFilePaths(module string, pos Position, paths []string) error {
	for _, p := range paths {
		if _, err := label.NewFilePath(p); err != nil {
			return &InvalidFilePathError{Path: p, Module: module, Pos: pos, Err: err}
		}
	}
	return nil
}

// BuildProjectSpec walks file and returns the modsolve.ProjectSpec it
// declares together with the project-wide source roots from any
// project() call. Unrecognized top-level statements are ignored, for
// forward compatibility with manifest extensions this package does not
// yet understand.
func BuildProjectSpec(file *File) (modsolve.ProjectSpec, []string, error) {
	b := newSpecBuilder()
	if err := Walk(file, b); err != nil {
		return nil, nil, err
	}
	return b.spec, b.sourceRoots, nil
}
