package m2m

import "github.com/katalvlaran/lvlrel/o2m"

// GetElementsWithNodes returns the elements whose row is a superset of
// nodes, ascending: computed as the intersection of
// elementsFromNode[nodes[0]] with elementsFromNode[nodes[i]] for i>=1,
// short-circuiting once the running intersection is empty. Any
// out-of-range node id, or an empty nodes argument, yields an empty
// result (no error: out-of-range query inputs are tolerated silently).
// Complexity: O(sum of candidate-row lengths).
func (m *M2M) GetElementsWithNodes(nodes []int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	return m.getElementsWithNodesLocked(nodes)
}

// GetElementsFromNodes returns the subset of GetElementsWithNodes(nodes)
// whose row has exactly len(nodes) entries — the element "is" those
// nodes rather than merely a superset of them.
// Complexity: O(sum of candidate-row lengths).
func (m *M2M) GetElementsFromNodes(nodes []int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	candidates := m.getElementsWithNodesLocked(nodes)
	out := make([]int, 0, len(candidates))
	for _, e := range candidates {
		row, _ := m.forward.Row(e)
		if len(row) == len(nodes) {
			out = append(out, e)
		}
	}

	return out
}

// getElementsWithNodesLocked is GetElementsWithNodes' body, callable
// while m.mu is already held and already synced.
func (m *M2M) getElementsWithNodesLocked(nodes []int) []int {
	if len(nodes) == 0 {
		return []int{}
	}
	acc, ok := m.elementsFromNodeRow(nodes[0])
	if !ok {
		return []int{}
	}
	acc = append([]int(nil), acc...)
	for _, n := range nodes[1:] {
		if len(acc) == 0 {
			break
		}
		row, ok := m.elementsFromNodeRow(n)
		if !ok {
			return []int{}
		}
		acc = o2m.IntersectSorted(acc, row)
	}

	return acc
}

// elementsFromNodeRow fetches elementsFromNode's row for node n, or
// (nil, false) if n is out of range.
func (m *M2M) elementsFromNodeRow(n int) ([]int, bool) {
	row, err := m.elementsFromNode.Row(n)
	if err != nil {
		return nil, false
	}

	return row, true
}

// GetElementNeighbours returns, ascending, every element e' != e sharing
// at least one node with e: the union over n ∈ self[e] of
// elementsFromNode[n], minus {e}. Returns an error if e is
// out of range.
// Complexity: O(sum of |elementsFromNode[n]| for n ∈ self[e]).
func (m *M2M) GetElementNeighbours(e int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	row, err := m.forward.Row(e)
	if err != nil {
		return nil, err
	}
	acc := []int{}
	for _, n := range row {
		nbRow, ok := m.elementsFromNodeRow(n)
		if !ok {
			continue
		}
		acc = o2m.UnionSorted(acc, nbRow)
	}

	out := make([]int, 0, len(acc))
	for _, v := range acc {
		if v != e {
			out = append(out, v)
		}
	}

	return out, nil
}

// GetNodeNeighbours returns, ascending, every node n' != n sharing at
// least one element with n: the union over e ∈ elementsFromNode[n] of
// self[e], minus {n}. Out-of-range n yields an empty result.
// Complexity: O(sum of |self[e]| for e ∈ elementsFromNode[n]).
func (m *M2M) GetNodeNeighbours(n int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	row, ok := m.elementsFromNodeRow(n)
	if !ok {
		return []int{}
	}
	acc := []int{}
	for _, e := range row {
		eRow, _ := m.forward.Row(e)
		acc = o2m.UnionSorted(acc, eRow)
	}

	out := make([]int, 0, len(acc))
	for _, v := range acc {
		if v != n {
			out = append(out, v)
		}
	}

	return out
}

// GetElementsToElements returns self * elementsFromNode: the
// element-sharing-a-node graph.
// Complexity: see o2m.Multiply.
func (m *M2M) GetElementsToElements() *o2m.O2M {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	return m.forward.Multiply(m.elementsFromNode)
}

// GetNodesToNodes returns elementsFromNode * self: the
// node-sharing-an-element graph.
// Complexity: see o2m.Multiply.
func (m *M2M) GetNodesToNodes() *o2m.O2M {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	return m.elementsFromNode.Multiply(m.forward)
}

// GetCliques delegates to o2m.GetCliques with the synchronized inverse.
// Complexity: see o2m.GetCliques.
func (m *M2M) GetCliques() [][]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	return o2m.GetCliques(m.forward, m.elementsFromNode)
}

// GetElementPositions returns elemeloc[e]: for each k, the position at
// which e appears within elementsFromNode[row], where row = self[e][k].
// Forces a resync first if the forward relation has been mutated since
// the last read. Returns an error if e is out of range.
// Complexity: amortized O(1); O(total row length) if a resync is due.
func (m *M2M) GetElementPositions(e int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	if e < 0 || e >= len(m.elemeloc) {
		return nil, ErrElementOutOfRange
	}

	return append([]int(nil), m.elemeloc[e]...), nil
}

// GetNodePositions returns nodeloc[n]: for each k, the index within
// self[e] at which n occurs, where e = elementsFromNode[n][k]. Forces a
// resync first if due. Returns an error if n is out of range.
// Complexity: amortized O(1); O(total row length) if a resync is due.
func (m *M2M) GetNodePositions(n int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureSynced()

	if n < 0 || n >= len(m.nodeloc) {
		return nil, ErrNodeOutOfRange
	}

	return append([]int(nil), m.nodeloc[n]...), nil
}
