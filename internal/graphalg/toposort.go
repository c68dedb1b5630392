package graphalg

import (
	"fmt"
	"slices"
)

// CycleError reports that TopologicalSort could not make progress because
// the remaining nodes form a cycle.
type CycleError struct {
	// Remaining holds the IDs that were never emitted, in ascending order.
	Remaining []ID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected among %d node(s): %v", len(e.Remaining), e.Remaining)
}

// TopologicalSort orders nodes such that every node appears after all nodes
// in its own outgoing set (leaves-first: a node with an empty outgoing set
// can be emitted immediately). adjacency need not list every node as a key
// if it never appears as a target in another node's outgoing set, but every
// node that should appear in the output must have a key in adjacency (even
// if its outgoing set is empty).
//
// Tie-breaking among nodes that are simultaneously ready is by ascending ID,
// which makes the result deterministic (downstream callers must not rely on
// any other property of the order).
func TopologicalSort(adjacency map[ID]Set) ([]ID, error) {
	remaining := make(map[ID]Set, len(adjacency))
	for id, out := range adjacency {
		remaining[id] = out.Clone()
	}

	order := make([]ID, 0, len(adjacency))
	for len(remaining) > 0 {
		ready := make([]ID, 0)
		for id, out := range remaining {
			if len(out) == 0 {
				ready = append(ready, id)
			}
		}
		if len(ready) == 0 {
			rem := make([]ID, 0, len(remaining))
			for id := range remaining {
				rem = append(rem, id)
			}
			slices.Sort(rem)
			return nil, &CycleError{Remaining: rem}
		}
		slices.Sort(ready)

		for _, id := range ready {
			delete(remaining, id)
			order = append(order, id)
		}
		for _, out := range remaining {
			for _, id := range ready {
				delete(out, id)
			}
		}
	}
	return order, nil
}
