package modsolve

import "github.com/nox-build/modsolve/modgraph"

// emit turns a placement into the final, ordered ModuleOutput list. Modules
// appear in g.TopoOrder() (direct deps before dependents); within each
// module, files in each bucket appear in forwardOrder position, which
// already respects every inferred predecessor constraint.
func emit(g *modgraph.Graph, inf *inference, p *placement) []ModuleOutput {
	byModule := make(map[moduleID]*ModuleOutput, g.Len())
	order := g.TopoOrder()
	outputs := make([]ModuleOutput, len(order))
	for i, mid := range order {
		outputs[i] = ModuleOutput{Name: g.Name(mid)}
		byModule[mid] = &outputs[i]
	}

	for _, f := range inf.forwardOrder {
		mid := p.module[f]
		out := byModule[mid]
		path := inf.registry.Path(f)
		switch inf.registry.Class(f) {
		case Uncompiled:
			out.DontCompileInputFiles = append(out.DontCompileInputFiles, path)
		default:
			out.CompiledInputFiles = append(out.CompiledInputFiles, path)
		}
	}

	for i, mid := range order {
		deps := g.DirectDeps(mid).Sorted()
		names := make([]string, len(deps))
		for j, d := range deps {
			names[j] = g.Name(d)
		}
		outputs[i].DirectDepsUsed = names
	}

	return outputs
}
