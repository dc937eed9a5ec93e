// Package graph builds dependency graphs over named nodes and derives
// deterministic orderings from them. It knows nothing about manifests;
// callers translate its findings into their own error vocabulary.
package graph

import (
	"sort"
)

// Node is one vertex and the names it depends on. Names must be unique
// across the node set; the caller enforces this.
type Node struct {
	Name      string
	DependsOn []string
}

// Edge is a reference between two nodes, by name.
type Edge struct {
	From string
	To   string
}

// Graph is an immutable dependency graph over a fixed node set. Nodes are
// indexed by the lexicographic rank of their names, which makes every
// traversal order reproducible. References to names outside the node set
// are kept aside as dangling edges and take no part in adjacency.
type Graph struct {
	names    []string       // sorted; the index of a name is its id
	rank     map[string]int // name -> index
	out      [][]int        // out[i] = ids that i depends on, ascending
	in       [][]int        // in[i] = ids that depend on i, ascending
	dangling []Edge         // references to undefined names, sorted, unique
}

// Build constructs the graph. Duplicate references collapse into one edge;
// self-references are kept, surfacing later as single-node cycles.
func Build(nodes []Node) *Graph {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.Name)
	}
	sort.Strings(names)

	g := &Graph{
		names: names,
		rank:  make(map[string]int, len(names)),
		out:   make([][]int, len(names)),
		in:    make([][]int, len(names)),
	}
	for i, name := range names {
		g.rank[name] = i
	}

	edges := make(map[Edge]struct{})
	for _, n := range nodes {
		from := g.rank[n.Name]
		for _, dep := range n.DependsOn {
			edge := Edge{From: n.Name, To: dep}
			if _, seen := edges[edge]; seen {
				continue
			}
			edges[edge] = struct{}{}

			to, ok := g.rank[dep]
			if !ok {
				g.dangling = append(g.dangling, edge)
				continue
			}
			g.out[from] = append(g.out[from], to)
			g.in[to] = append(g.in[to], from)
		}
	}

	for i := range g.out {
		sort.Ints(g.out[i])
		sort.Ints(g.in[i])
	}
	sort.Slice(g.dangling, func(i, j int) bool {
		if g.dangling[i].From != g.dangling[j].From {
			return g.dangling[i].From < g.dangling[j].From
		}
		return g.dangling[i].To < g.dangling[j].To
	})
	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.names)
}

// Names returns every node name in lexicographic order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Has reports whether a node with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.rank[name]
	return ok
}

// Dependencies returns the names the given node depends on, sorted.
// Dangling references are not included.
func (g *Graph) Dependencies(name string) []string {
	i, ok := g.rank[name]
	if !ok {
		return nil
	}
	return g.resolve(g.out[i])
}

// Dependents returns the names that depend on the given node, sorted.
func (g *Graph) Dependents(name string) []string {
	i, ok := g.rank[name]
	if !ok {
		return nil
	}
	return g.resolve(g.in[i])
}

// Dangling returns every reference to an undefined name, sorted by source
// then target. The result shares no memory with the graph.
func (g *Graph) Dangling() []Edge {
	out := make([]Edge, len(g.dangling))
	copy(out, g.dangling)
	return out
}

func (g *Graph) resolve(ids []int) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, g.names[id])
	}
	return names
}
