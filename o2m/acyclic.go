package o2m

// DFS vertex colors for IsAcyclic.
const (
	colorUnseen = iota
	colorOnStack
	colorDone
)

// dfsFrame is one iterative-DFS call frame: the vertex being explored and
// the index of the next outgoing edge to visit.
type dfsFrame struct {
	v      int
	edgeAt int
}

// IsAcyclic reports whether the directed graph (edge u→v iff v ∈
// self[u], over [0, target)) contains no cycle, via iterative DFS with
// three colors. Rows indexed >= Count are treated as having
// no successors. Returns false on the first back-edge found.
// Complexity: O(target + total row length).
func (a *O2M) IsAcyclic() bool {
	target := a.targetRowCount()
	color := make([]int, target)

	for start := 0; start < target; start++ {
		if color[start] != colorUnseen {
			continue
		}
		if !a.dfsVisit(start, color, target) {
			return false
		}
	}

	return true
}

// dfsVisit runs an iterative DFS from start using an explicit stack,
// returning false the moment a back-edge (an edge into a colorOnStack
// vertex) is observed.
func (a *O2M) dfsVisit(start int, color []int, target int) bool {
	stack := []dfsFrame{{v: start, edgeAt: 0}}
	color[start] = colorOnStack

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		var succ []int
		if top.v < len(a.rows) {
			succ = a.rows[top.v]
		}

		advanced := false
		for top.edgeAt < len(succ) {
			next := succ[top.edgeAt]
			top.edgeAt++
			if next < 0 || next >= target {
				continue
			}
			switch color[next] {
			case colorOnStack:
				return false
			case colorUnseen:
				color[next] = colorOnStack
				stack = append(stack, dfsFrame{v: next, edgeAt: 0})
				advanced = true
			case colorDone:
				// already fully explored, skip
			}
			if advanced {
				break
			}
		}
		if advanced {
			continue
		}

		// No more outgoing edges to explore from top: finish it.
		color[top.v] = colorDone
		stack = stack[:len(stack)-1]
	}

	return true
}
