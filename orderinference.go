package modsolve

import (
	"errors"
	"sort"

	"github.com/nox-build/modsolve/internal/graphalg"
	"github.com/nox-build/modsolve/modgraph"
)

// moduleID is the dense identifier domain for modules, as produced by
// modgraph.Build. It shares FileID's underlying int representation but the
// two domains are never mixed in the same Set.
type moduleID = modgraph.ID

// inference is the result of a single topological pass over modules: for
// every file seen anywhere in the project, the set of files observed
// before it in *every* occurrence (its inferred predecessors), the set of
// modules it must be available in (neededIn), and a deterministic
// predecessor-respecting order over all files.
type inference struct {
	registry     *FileRegistry
	predecessors []graphalg.Set // by FileID; other FileIDs
	neededIn     []graphalg.Set // by FileID; moduleID values
	forwardOrder []FileID       // predecessors before dependents
}

// runOrderInference walks modules in g.TopoOrder() (direct deps before
// dependents), maintaining per-module uncompiledSeen and
// uncompiledAndNonNamespacedSeen sets seeded from the module's direct
// deps.
func runOrderInference(g *modgraph.Graph, specs ProjectSpec) (*inference, error) {
	registry := NewFileRegistry()
	order := g.TopoOrder()

	uncompiledSeen := make([]graphalg.Set, g.Len())
	uncompiledAndNonNamespacedSeen := make([]graphalg.Set, g.Len())

	var predecessors []graphalg.Set
	var neededIn []graphalg.Set

	ensureCapacity := func(id FileID) {
		for FileID(len(predecessors)) <= id {
			predecessors = append(predecessors, nil)
			neededIn = append(neededIn, graphalg.NewSet())
		}
	}

	recordOccurrence := func(path string, class CompileClass, moduleName string, mid moduleID, depsBefore graphalg.Set) (FileID, error) {
		id, firstSeen, err := registry.Intern(path, class, moduleName)
		if err != nil {
			return id, err
		}
		ensureCapacity(id)
		if firstSeen {
			predecessors[id] = depsBefore.Clone()
		} else {
			predecessors[id] = graphalg.Intersect(predecessors[id], depsBefore)
		}
		neededIn[id].Add(mid)
		return id, nil
	}

	for _, mid := range order {
		name := g.Name(mid)

		uSeen := graphalg.NewSet()
		unSeen := graphalg.NewSet()
		for dep := range g.DirectDeps(mid) {
			if uncompiledSeen[dep] != nil {
				graphalg.UnionInto(uSeen, uncompiledSeen[dep])
			}
			if uncompiledAndNonNamespacedSeen[dep] != nil {
				graphalg.UnionInto(unSeen, uncompiledAndNonNamespacedSeen[dep])
			}
		}

		spec := specs[name] // virtual root has no declared spec: zero value is fine

		for _, path := range spec.Uncompiled {
			id, err := recordOccurrence(path, Uncompiled, name, mid, uSeen)
			if err != nil {
				return nil, err
			}
			uSeen.Add(id)
			unSeen.Add(id)
		}

		for _, path := range spec.NonNamespaced {
			id, err := recordOccurrence(path, NonNamespaced, name, mid, unSeen)
			if err != nil {
				return nil, err
			}
			unSeen.Add(id)
		}

		namespacedSeenThisModule := graphalg.NewSet()
		for _, path := range spec.NamespacedOrdered {
			depsBefore := unSeen.Clone()
			graphalg.UnionInto(depsBefore, namespacedSeenThisModule)
			id, err := recordOccurrence(path, Namespaced, name, mid, depsBefore)
			if err != nil {
				return nil, err
			}
			namespacedSeenThisModule.Add(id)
		}

		uncompiledSeen[mid] = uSeen
		uncompiledAndNonNamespacedSeen[mid] = unSeen
	}

	adjacency := make(map[graphalg.ID]graphalg.Set, len(predecessors))
	for id, preds := range predecessors {
		if preds == nil {
			preds = graphalg.NewSet()
		}
		adjacency[graphalg.ID(id)] = preds
	}
	forwardOrder, err := graphalg.TopologicalSort(adjacency)
	if err != nil {
		var cycleErr *graphalg.CycleError
		if !errors.As(err, &cycleErr) {
			return nil, err
		}
		paths := make([]string, len(cycleErr.Remaining))
		for i, id := range cycleErr.Remaining {
			paths[i] = registry.Path(id)
		}
		sort.Strings(paths)
		return nil, &InferredFileCycleError{Paths: paths}
	}

	return &inference{
		registry:     registry,
		predecessors: predecessors,
		neededIn:     neededIn,
		forwardOrder: forwardOrder,
	}, nil
}
