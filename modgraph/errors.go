package modgraph

import "fmt"

// UnknownDepError reports a declared dependency that does not resolve to any
// declared module.
type UnknownDepError struct {
	Module string
	Dep    string
}

func (e *UnknownDepError) Error() string {
	return fmt.Sprintf("module %q declares dependency on unknown module %q", e.Module, e.Dep)
}

// CycleError reports a cycle in the module dependency DAG.
type CycleError struct {
	// Names lists the modules left unresolved when the cycle was detected,
	// in ascending declaration-order-independent (sorted-by-name) order.
	Names []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("module dependency cycle among: %v", e.Names)
}

// MultipleRootsError reports that a module transitively depends on more
// than one root module. This should only occur before virtual-root
// injection is applied, or when declared deps manufacture a second root
// reachable from some module despite injection.
type MultipleRootsError struct {
	Module string
	Roots  []string
}

func (e *MultipleRootsError) Error() string {
	return fmt.Sprintf("module %q transitively depends on multiple roots: %v", e.Module, e.Roots)
}
