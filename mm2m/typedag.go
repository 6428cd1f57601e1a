package mm2m

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// typeGraphEdge reports whether the cell from elemType to nodeType
// carries at least one element, i.e. whether an edge elemType->nodeType
// belongs in the type-level dependency graph. The diagonal is excluded:
// a type is never considered to depend on itself.
func (tm *TypedMatrix) typeGraphEdge(elemType, nodeType int) bool {
	if elemType == nodeType {
		return false
	}

	return tm.cells[elemType][nodeType].Count() > 0
}

// buildTypeGraph assembles a directed graph over the T type indices,
// with an edge i->j whenever cell (i,j), i != j, holds at least one
// element.
func (tm *TypedMatrix) buildTypeGraph() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := 0; i < tm.t; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < tm.t; i++ {
		for j := 0; j < tm.t; j++ {
			if tm.typeGraphEdge(i, j) {
				g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
			}
		}
	}

	return g
}

// AreTypesAcyclic reports whether the type-level dependency graph
// (type i depends on type j, i != j, iff cell (i,j) holds at least one
// element) is acyclic.
// Complexity: O(T^2) to build the graph, plus gonum's Tarjan SCC cost.
func (tm *TypedMatrix) AreTypesAcyclic() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	_, err := topo.Sort(tm.buildTypeGraph())

	return err == nil
}

// GetTypeTopOrder returns the type indices in an order such that every
// type-dependency edge i->j has i appearing before j. When the graph has
// no edges, the identity order 0..T-1 is returned. Returns an error
// if the type-dependency graph contains a cycle.
// Complexity: O(T^2) to build the graph, plus gonum's Tarjan SCC cost.
func (tm *TypedMatrix) GetTypeTopOrder() ([]int, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	hasEdge := false
	for i := 0; i < tm.t && !hasEdge; i++ {
		for j := 0; j < tm.t && !hasEdge; j++ {
			hasEdge = tm.typeGraphEdge(i, j)
		}
	}
	if !hasEdge {
		identity := make([]int, tm.t)
		for i := range identity {
			identity[i] = i
		}

		return identity, nil
	}

	sorted, err := topo.Sort(tm.buildTypeGraph())
	if err != nil {
		return nil, err
	}

	out := make([]int, len(sorted))
	for i, n := range sorted {
		out[i] = int(n.ID())
	}

	return out, nil
}
