// Package modsolve implements the module placement solver: given a module
// dependency DAG and, per module, three classes of input files, it decides
// which module each file belongs to (the lowest common ancestor of every
// module that needs it) and in what order each module should emit its
// files.
//
// The package is a plain, synchronous, side-effect-free library: Solve
// takes an in-memory ProjectSpec and returns an in-memory, deterministic
// result. It performs no I/O, spawns no processes, and reads no file
// contents — those are the surrounding collaborators' job (see the
// projectfile, source, and compiler packages).
package modsolve

// CompileClass identifies how a file is fed to the external compilers that
// eventually turn it into part of a module's output artifact.
//
// Within a module's staged load order, every Uncompiled file is considered
// before any NonNamespaced file, which is considered before any Namespaced
// file — this ordering rule drives order inference (see orderinference.go).
type CompileClass int

const (
	// Uncompiled files are passed through to the output untouched.
	Uncompiled CompileClass = iota
	// NonNamespaced files are compiled but carry no namespace
	// provide/require relationships with other files.
	NonNamespaced
	// Namespaced files are compiled and have been pre-ordered by an
	// upstream namespace dependency resolver; that declared order is
	// preserved as their load-order within a module.
	Namespaced
)

// String returns a human-readable name for the compile class.
func (c CompileClass) String() string {
	switch c {
	case Uncompiled:
		return "Uncompiled"
	case NonNamespaced:
		return "NonNamespaced"
	case Namespaced:
		return "Namespaced"
	default:
		return "CompileClass(?)"
	}
}

// ModuleSpec is one module's declaration: the modules it must be loaded
// after, and its three input-file lists. Namespaced is pre-ordered by the
// upstream namespace dependency resolver (see the source package); Solve
// preserves that order as declared dependency order and never reorders it
// except where reachability and order invariants require lifting a
// predecessor to a different module.
type ModuleSpec struct {
	DirectDeps        []string
	Uncompiled        []string
	NonNamespaced     []string
	NamespacedOrdered []string
}

// ProjectSpec maps a module name to its declaration. It is the sole input
// to Solve.
type ProjectSpec map[string]ModuleSpec

// ModuleOutput is one module's placement result: the direct dependency
// modules it actually uses, and its two file buckets in final emission
// order (predecessors before dependents within each bucket).
type ModuleOutput struct {
	Name                  string
	DirectDepsUsed        []string
	CompiledInputFiles    []string
	DontCompileInputFiles []string
}
