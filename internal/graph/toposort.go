package graph

import (
	"sort"
	"strings"
)

// CycleError reports that no topological order exists. Path carries the
// first cycle found, in FindCycles form.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(e.Path, " -> ")
}

// TopoSort returns the node names in dependency-first order: whenever one
// node depends on another, the dependency comes earlier. Among the nodes
// eligible at any step the lexicographically smallest is emitted first, so
// the order is byte-for-byte reproducible. An empty graph yields an empty
// order; a cyclic graph fails with *CycleError.
func (g *Graph) TopoSort() ([]string, error) {
	// pending[i] counts i's not-yet-emitted dependencies.
	pending := make([]int, len(g.names))
	ready := make([]int, 0, len(g.names))
	for id := range g.names {
		pending[id] = len(g.out[id])
		if pending[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(g.names))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, g.names[id])
		for _, dependent := range g.in[id] {
			pending[dependent]--
			if pending[dependent] == 0 {
				ready = insertSorted(ready, dependent)
			}
		}
	}

	if len(order) != len(g.names) {
		return nil, &CycleError{Path: g.firstCycle()}
	}
	return order, nil
}

// Tiers returns the topological order partitioned into levels. Every node
// in a tier depends only on earlier tiers, and no two nodes in one tier
// are connected by any dependency path, so a tier may be processed
// concurrently. Tier members are sorted; failure semantics match TopoSort.
func (g *Graph) Tiers() ([][]string, error) {
	pending := make([]int, len(g.names))
	current := make([]int, 0, len(g.names))
	for id := range g.names {
		pending[id] = len(g.out[id])
		if pending[id] == 0 {
			current = append(current, id)
		}
	}

	var tiers [][]string
	emitted := 0
	for len(current) > 0 {
		tier := make([]string, 0, len(current))
		for _, id := range current {
			tier = append(tier, g.names[id])
		}
		tiers = append(tiers, tier)
		emitted += len(current)

		var next []int
		for _, id := range current {
			for _, dependent := range g.in[id] {
				pending[dependent]--
				if pending[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		sort.Ints(next)
		current = next
	}

	if emitted != len(g.names) {
		return nil, &CycleError{Path: g.firstCycle()}
	}
	return tiers, nil
}

func (g *Graph) firstCycle() []string {
	cycles := g.FindCycles()
	if len(cycles) == 0 {
		return nil
	}
	return cycles[0]
}

// insertSorted keeps the ready list ascending so the smallest eligible
// node is always emitted next.
func insertSorted(ids []int, id int) []int {
	at := sort.SearchInts(ids, id)
	ids = append(ids, 0)
	copy(ids[at+1:], ids[at:])
	ids[at] = id
	return ids
}
