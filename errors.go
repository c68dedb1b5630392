package modsolve

import (
	"fmt"

	"github.com/nox-build/modsolve/modgraph"
)

// UnknownDepModuleError reports a declared dependency that does not
// resolve to any declared module.
type UnknownDepModuleError = modgraph.UnknownDepError

// ModuleCycleError reports a cycle in the module dependency DAG.
type ModuleCycleError = modgraph.CycleError

// MultipleRootsError reports that a module transitively depends on more
// than one root module.
type MultipleRootsError = modgraph.MultipleRootsError

// MixedCompileClassError reports that the same path was declared with two
// incompatible compile classes somewhere in the project.
type MixedCompileClassError struct {
	Path   string
	First  CompileClass
	Second CompileClass
	Module string
}

func (e *MixedCompileClassError) Error() string {
	return fmt.Sprintf("path %q declared as %s, then as %s (in module %q)", e.Path, e.First, e.Second, e.Module)
}

// InferredFileCycleError reports that the inferred file-predecessor
// relation contains a cycle. This indicates inconsistent declared
// orderings in the input — it should not occur for well-formed input.
type InferredFileCycleError struct {
	Paths []string
}

func (e *InferredFileCycleError) Error() string {
	return fmt.Sprintf("inferred file ordering has a cycle among: %v", e.Paths)
}
