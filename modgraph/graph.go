// Package modgraph builds and validates the module dependency DAG: interning
// module names to dense IDs, synthesizing a virtual root when multiple
// roots are declared, computing a topological order, and computing each
// module's transitive-ancestor set (used by the placement solver to find
// lowest-common-ancestor modules for a file).
package modgraph

import (
	"errors"
	"slices"

	"github.com/nox-build/modsolve/internal/graphalg"
)

// VirtualRootName is the sentinel module name synthesized when a project
// declares two or more root modules (modules with zero direct deps).
const VirtualRootName = "virtual_base_module"

// ID identifies a module within a built Graph.
type ID = graphalg.ID

// Spec is the dependency-relevant part of a module declaration: the names
// of the modules that must be loaded before this one.
type Spec struct {
	DirectDeps []string
}

// Graph is a validated, frozen module dependency DAG.
type Graph struct {
	names          []string
	index          map[string]ID
	directDeps     []graphalg.Set // outgoing edges, by ID
	ancestors      []graphalg.Set // transitive ancestors including self, by ID
	topoOrder      []ID           // roots-of-the-DAG first (modules with no deps first)
	virtualRoot    ID
	hasVirtualRoot bool
}

// Build validates specs (ground truth: map from declared module name to its
// spec) and constructs a Graph. An empty specs map yields an empty, valid
// Graph with no injection.
func Build(specs map[string]Spec) (*Graph, error) {
	g := &Graph{index: make(map[string]ID, len(specs))}

	declared := make([]string, 0, len(specs))
	for name := range specs {
		declared = append(declared, name)
	}
	slices.Sort(declared)

	for _, name := range declared {
		g.intern(name)
	}

	directDeps := make([]graphalg.Set, len(g.names))
	for name, spec := range specs {
		id := g.index[name]
		deps := make(graphalg.Set, len(spec.DirectDeps))
		for _, depName := range spec.DirectDeps {
			depID, ok := g.index[depName]
			if !ok {
				return nil, &UnknownDepError{Module: name, Dep: depName}
			}
			deps.Add(depID)
		}
		directDeps[id] = deps
	}
	g.directDeps = directDeps

	if len(g.names) == 0 {
		g.ancestors = nil
		g.topoOrder = nil
		return g, nil
	}

	roots := rootIDs(g.directDeps)
	if len(roots) >= 2 {
		vid := g.intern(VirtualRootName)
		g.directDeps = append(g.directDeps, graphalg.NewSet())
		for _, r := range roots {
			g.directDeps[r].Add(vid)
		}
		g.virtualRoot = vid
		g.hasVirtualRoot = true
	}

	adjacency := make(map[graphalg.ID]graphalg.Set, len(g.directDeps))
	for id, deps := range g.directDeps {
		adjacency[graphalg.ID(id)] = deps
	}
	order, err := graphalg.TopologicalSort(adjacency)
	if err != nil {
		var cycleErr *graphalg.CycleError
		if !errors.As(err, &cycleErr) {
			return nil, err
		}
		names := make([]string, 0, len(cycleErr.Remaining))
		for _, id := range cycleErr.Remaining {
			names = append(names, g.names[id])
		}
		slices.Sort(names)
		return nil, &CycleError{Names: names}
	}
	g.topoOrder = order

	ancestors := make([]graphalg.Set, len(g.directDeps))
	for _, id := range order {
		a := graphalg.NewSet(id)
		for dep := range g.directDeps[id] {
			graphalg.UnionInto(a, ancestors[dep])
		}
		ancestors[id] = a
	}
	g.ancestors = ancestors

	postInjectionRoots := graphalg.NewSet(rootIDs(g.directDeps)...)
	for _, id := range order {
		hit := graphalg.Intersect(g.ancestors[id], postInjectionRoots)
		if len(hit) > 1 {
			rootNames := make([]string, 0, len(hit))
			for r := range hit {
				rootNames = append(rootNames, g.names[r])
			}
			slices.Sort(rootNames)
			return nil, &MultipleRootsError{Module: g.names[id], Roots: rootNames}
		}
	}

	return g, nil
}

// rootIDs returns the IDs with an empty outgoing set, in ascending order.
func rootIDs(directDeps []graphalg.Set) []ID {
	var roots []ID
	for id, deps := range directDeps {
		if len(deps) == 0 {
			roots = append(roots, graphalg.ID(id))
		}
	}
	return roots
}

func (g *Graph) intern(name string) ID {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := graphalg.ID(len(g.names))
	g.names = append(g.names, name)
	g.index[name] = id
	return id
}

// Len returns the number of modules, including any synthesized virtual
// root.
func (g *Graph) Len() int { return len(g.names) }

// ID returns the dense identifier for a declared module name.
func (g *Graph) ID(name string) (ID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Name returns the declared (or synthesized) name for id.
func (g *Graph) Name(id ID) string { return g.names[id] }

// TopoOrder returns module IDs such that every module appears after all
// modules in its own DirectDeps set.
func (g *Graph) TopoOrder() []ID { return g.topoOrder }

// DirectDeps returns the direct dependency set of id (after virtual-root
// injection, if any).
func (g *Graph) DirectDeps(id ID) graphalg.Set { return g.directDeps[id] }

// Ancestors returns the transitive-ancestor set of id, including id itself.
func (g *Graph) Ancestors(id ID) graphalg.Set { return g.ancestors[id] }

// VirtualRoot reports the synthesized sentinel module's ID, if one was
// injected.
func (g *Graph) VirtualRoot() (ID, bool) { return g.virtualRoot, g.hasVirtualRoot }
