package domain

import (
	"errors"
	"strings"
	"unicode"

	"github.com/rios0rios0/releaseforge/internal/graph"
)

// Manifest is an ordered, immutable collection of release entries.
// Declaration order is preserved for diagnostics; entry names are unique.
// A constructed manifest never changes, so it is safe to validate and order
// from multiple goroutines at once.
type Manifest struct {
	entries []Entry
	index   map[string]int
}

// BuildOrder is the sequence in which entries must be built: every entry
// appears after all of its dependencies.
type BuildOrder []string

// NewManifest builds a manifest from entries, keeping their order. It fails
// with *InvalidNameError on an empty or whitespace-bearing name and with
// *DuplicateEntryError when a name is defined twice. Requirement targets
// and version strings are not checked here; Validate covers those.
func NewManifest(entries []Entry) (*Manifest, error) {
	m := &Manifest{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" || strings.IndexFunc(e.Name, unicode.IsSpace) >= 0 {
			return nil, &InvalidNameError{Name: e.Name}
		}
		if _, ok := m.index[e.Name]; ok {
			return nil, &DuplicateEntryError{Name: e.Name}
		}
		m.index[e.Name] = len(m.entries)
		m.entries = append(m.entries, e.clone())
	}
	return m, nil
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Entries returns the entries in declaration order. The result shares no
// memory with the manifest.
func (m *Manifest) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.clone())
	}
	return out
}

// Names returns the entry names in declaration order.
func (m *Manifest) Names() []string {
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Name)
	}
	return out
}

// Get returns the named entry and whether it exists.
func (m *Manifest) Get(name string) (Entry, bool) {
	i, ok := m.index[name]
	if !ok {
		return Entry{}, false
	}
	return m.entries[i].clone(), true
}

// BuildOrder computes the dependency-first build sequence: for every entry
// that requires another, the required entry comes first, and ties break
// toward the lexicographically smallest name. It fails fast on the first
// structural problem, reporting it as *MissingDependencyError or
// *CircularDependencyError; dangling references win over cycles so the
// caller sees the cheapest fix first. Version and pin problems do not
// affect ordering. An empty manifest yields an empty order.
func (m *Manifest) BuildOrder() (BuildOrder, error) {
	g, err := m.orderingGraph()
	if err != nil {
		return nil, err
	}
	order, err := g.TopoSort()
	if err != nil {
		return nil, asDomainError(err)
	}
	return BuildOrder(order), nil
}

// BuildTiers partitions the build order into levels: entries within one
// tier share no dependency path and may build concurrently, and every tier
// depends only on the tiers before it. Failure semantics match BuildOrder.
func (m *Manifest) BuildTiers() ([][]string, error) {
	g, err := m.orderingGraph()
	if err != nil {
		return nil, err
	}
	tiers, err := g.Tiers()
	if err != nil {
		return nil, asDomainError(err)
	}
	return tiers, nil
}

// graph projects the entries into their dependency graph.
func (m *Manifest) graph() *graph.Graph {
	nodes := make([]graph.Node, 0, len(m.entries))
	for _, e := range m.entries {
		node := graph.Node{Name: e.Name}
		for _, req := range e.Requires {
			node.DependsOn = append(node.DependsOn, req.Name)
		}
		nodes = append(nodes, node)
	}
	return graph.Build(nodes)
}

// orderingGraph builds the graph and rejects it when a reference does not
// resolve, since no ordering over undefined entries can hold.
func (m *Manifest) orderingGraph() (*graph.Graph, error) {
	g := m.graph()
	if dangling := g.Dangling(); len(dangling) > 0 {
		return nil, &MissingDependencyError{From: dangling[0].From, To: dangling[0].To}
	}
	return g, nil
}

// asDomainError converts graph-level failures into the domain vocabulary.
func asDomainError(err error) error {
	var cycleErr *graph.CycleError
	if errors.As(err, &cycleErr) {
		return &CircularDependencyError{Path: cycleErr.Path}
	}
	return err
}
