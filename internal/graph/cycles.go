package graph

// DFS colors: a node is untouched, somewhere on the active path, or done.
const (
	colorWhite = iota
	colorGrey
	colorBlack
)

// FindCycles reports every dependency cycle as the exact path of names
// involved, starting and ending on the same name. A self-reference comes
// back as a two-element path. Roots and siblings are explored in
// lexicographic order, so repeated calls over the same graph return the
// same cycles in the same order. An acyclic graph yields an empty slice.
func (g *Graph) FindCycles() [][]string {
	color := make([]int, len(g.names))
	stack := make([]int, 0, len(g.names))
	var cycles [][]string

	var visit func(id int)
	visit = func(id int) {
		color[id] = colorGrey
		stack = append(stack, id)
		for _, next := range g.out[id] {
			switch color[next] {
			case colorWhite:
				visit(next)
			case colorGrey:
				// Back edge: the cycle is the active path from next down.
				cycles = append(cycles, g.cyclePath(stack, next))
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = colorBlack
	}

	for id := range g.names {
		if color[id] == colorWhite {
			visit(id)
		}
	}
	return cycles
}

// cyclePath slices the active DFS stack from the back-edge target to the
// top and closes the loop with the target's name.
func (g *Graph) cyclePath(stack []int, target int) []string {
	from := 0
	for i, id := range stack {
		if id == target {
			from = i
			break
		}
	}
	path := make([]string, 0, len(stack)-from+1)
	for _, id := range stack[from:] {
		path = append(path, g.names[id])
	}
	return append(path, g.names[target])
}
