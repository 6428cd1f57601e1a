package mm2m

import "sort"

// GetAllElementsForNode returns the sorted set of (elemType, elem) such
// that elem ∈ self[elemType,nodeType].elementsFromNode[node], for every
// elemType != nodeType. Returns ErrTypeOutOfRange if
// nodeType is invalid; an out-of-range node yields an empty result.
// Complexity: O(T * average cell row length).
func (tm *TypedMatrix) GetAllElementsForNode(nodeType, node int) ([]TypeID, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.getAllElementsForNodeLocked(nodeType, node)
}

// getAllElementsForNodeLocked is GetAllElementsForNode's body, callable
// while tm.mu is already held.
func (tm *TypedMatrix) getAllElementsForNodeLocked(nodeType, node int) ([]TypeID, error) {
	if nodeType < 0 || nodeType >= tm.t {
		return nil, ErrTypeOutOfRange
	}

	out := make([]TypeID, 0)
	for elemType := 0; elemType < tm.t; elemType++ {
		if elemType == nodeType {
			continue
		}
		cell := tm.cells[elemType][nodeType]
		for _, e := range cell.GetElementsWithNodes([]int{node}) {
			out = append(out, TypeID{Type: elemType, ID: e})
		}
	}

	return out, nil
}

// GetAllNodesForElement returns the sorted set of (nodeType, node) such
// that node ∈ self[elemType,nodeType][elem], across every nodeType in
// [0,T). Returns ErrTypeOutOfRange if elemType is invalid;
// an out-of-range elem yields an empty result.
// Complexity: O(T * average cell row length).
func (tm *TypedMatrix) GetAllNodesForElement(elemType, elem int) ([]TypeID, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if elemType < 0 || elemType >= tm.t {
		return nil, ErrTypeOutOfRange
	}

	out := make([]TypeID, 0)
	for nodeType := 0; nodeType < tm.t; nodeType++ {
		cell := tm.cells[elemType][nodeType]
		row, err := cell.Row(elem)
		if err != nil {
			continue
		}
		nodes := append([]int(nil), row...)
		sort.Ints(nodes)
		prev := -1
		for _, n := range nodes {
			if n == prev {
				continue // de-duplicate within a single cell row
			}
			prev = n
			out = append(out, TypeID{Type: nodeType, ID: n})
		}
	}

	return out, nil
}

// GetAllElementsOfType returns the sorted, deduplicated union, over
// every elemType != nodeType, of the elements that reference at least
// one node of nodeType. Returns ErrTypeOutOfRange if
// nodeType is invalid.
// Complexity: O(T * sum of cell Counts).
func (tm *TypedMatrix) GetAllElementsOfType(nodeType int) ([]TypeID, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if nodeType < 0 || nodeType >= tm.t {
		return nil, ErrTypeOutOfRange
	}

	out := make([]TypeID, 0)
	for elemType := 0; elemType < tm.t; elemType++ {
		if elemType == nodeType {
			continue
		}
		cell := tm.cells[elemType][nodeType]
		for e := 0; e < cell.Count(); e++ {
			row, _ := cell.Row(e)
			if len(row) > 0 {
				out = append(out, TypeID{Type: elemType, ID: e})
			}
		}
	}

	return out, nil
}

// GetAllNodesOfType returns the sorted, deduplicated union, over every
// nodeType != elemType, of the node ids referenced by any element of
// elemType. Returns ErrTypeOutOfRange if elemType is
// invalid.
// Complexity: O(T * total cell row length).
func (tm *TypedMatrix) GetAllNodesOfType(elemType int) ([]TypeID, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if elemType < 0 || elemType >= tm.t {
		return nil, ErrTypeOutOfRange
	}

	out := make([]TypeID, 0)
	for nodeType := 0; nodeType < tm.t; nodeType++ {
		if nodeType == elemType {
			continue
		}
		cell := tm.cells[elemType][nodeType]
		seen := make(map[int]struct{})
		for e := 0; e < cell.Count(); e++ {
			row, _ := cell.Row(e)
			for _, n := range row {
				seen[n] = struct{}{}
			}
		}
		nodes := make([]int, 0, len(seen))
		for n := range seen {
			nodes = append(nodes, n)
		}
		sort.Ints(nodes)
		for _, n := range nodes {
			out = append(out, TypeID{Type: nodeType, ID: n})
		}
	}

	return out, nil
}
