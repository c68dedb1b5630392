package modsolve

import "github.com/nox-build/modsolve/modgraph"

// Solve runs the full placement pipeline over spec: build and validate the
// module DAG, infer per-file predecessor and neededIn relationships, place
// each file at the lowest common ancestor of the modules that need it, and
// emit the result in module topological order.
//
// Solve is deterministic: identical input always produces identical output,
// including tie-break choices and emission order.
func Solve(spec ProjectSpec) ([]ModuleOutput, error) {
	specs := make(map[string]modgraph.Spec, len(spec))
	for name, m := range spec {
		specs[name] = modgraph.Spec{DirectDeps: m.DirectDeps}
	}

	g, err := modgraph.Build(specs)
	if err != nil {
		return nil, err
	}

	if g.Len() == 0 {
		return nil, nil
	}

	inf, err := runOrderInference(g, spec)
	if err != nil {
		return nil, err
	}

	p := placeFiles(g, inf)

	return emit(g, inf, p), nil
}
