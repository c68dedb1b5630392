package modsolve

import (
	"sort"
	"strconv"
	"strings"

	"github.com/nox-build/modsolve/internal/graphalg"
	"github.com/nox-build/modsolve/modgraph"
)

// placement holds, per file, the module it was assigned to.
type placement struct {
	module []moduleID // by FileID
}

// placeFiles assigns each file to a module: for each file, in reverse
// inferred-predecessor order (dependents before their predecessors),
// compute its lowest-common-ancestor module among the modules that need
// it, break ties by minimizing additional file movement, assign it, and
// propagate the placement to its predecessors' neededIn sets so they get
// lifted to the same module when required.
func placeFiles(g *modgraph.Graph, inf *inference) *placement {
	n := len(inf.predecessors)
	p := &placement{module: make([]moduleID, n)}

	lcaCache := make(map[string][]moduleID)

	for i := len(inf.forwardOrder) - 1; i >= 0; i-- {
		f := inf.forwardOrder[i]
		needed := inf.neededIn[f]

		candidates := lowestCommonAncestors(g, needed, lcaCache)

		var chosen moduleID
		if len(candidates) == 1 {
			chosen = candidates[0]
		} else {
			chosen = breakTie(g, candidates, inf.predecessors[f], inf.neededIn)
		}

		wasNeeded := needed.Has(chosen)
		p.module[f] = chosen

		if !wasNeeded {
			preds := inf.predecessors[f]
			if preds != nil {
				for pred := range preds {
					inf.neededIn[pred].Add(chosen)
				}
			}
		}
	}

	return p
}

// lowestCommonAncestors returns the modules of maximal transitive-ancestor-
// set size (i.e. deepest) among the intersection of the transitive
// ancestors of every module in needed.
func lowestCommonAncestors(g *modgraph.Graph, needed graphalg.Set, cache map[string][]moduleID) []moduleID {
	key := lcaKey(needed)
	if cached, ok := cache[key]; ok {
		return cached
	}

	ids := needed.Sorted()
	common := g.Ancestors(ids[0]).Clone()
	for _, m := range ids[1:] {
		common = graphalg.Intersect(common, g.Ancestors(m))
	}

	maxDepth := -1
	for m := range common {
		if depth := g.Ancestors(m).Len(); depth > maxDepth {
			maxDepth = depth
		}
	}
	var lowest []moduleID
	for m := range common {
		if g.Ancestors(m).Len() == maxDepth {
			lowest = append(lowest, m)
		}
	}
	sort.Slice(lowest, func(i, j int) bool { return lowest[i] < lowest[j] })

	cache[key] = lowest
	return lowest
}

// breakTie picks, among equally-deep LCA candidates, the one minimizing
// the number of predecessors not already needed there; ties beyond that
// break by ascending module name for determinism.
func breakTie(g *modgraph.Graph, candidates []moduleID, predecessors graphalg.Set, neededIn []graphalg.Set) moduleID {
	best := candidates[0]
	bestMoves := movesRequired(best, predecessors, neededIn)
	bestName := g.Name(best)

	for _, m := range candidates[1:] {
		moves := movesRequired(m, predecessors, neededIn)
		name := g.Name(m)
		if moves < bestMoves || (moves == bestMoves && name < bestName) {
			best, bestMoves, bestName = m, moves, name
		}
	}
	return best
}

func movesRequired(m moduleID, predecessors graphalg.Set, neededIn []graphalg.Set) int {
	count := 0
	for p := range predecessors {
		if !neededIn[p].Has(m) {
			count++
		}
	}
	return count
}

func lcaKey(s graphalg.Set) string {
	ids := s.Sorted()
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}
