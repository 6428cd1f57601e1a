package mm2m

// dagFrame is a single (type, id) pending-visit entry during the
// cascading mark DFS.
type dagFrame struct {
	typ, id int
}

// MarkToErase flags (nodeType, node) for deletion and transitively
// marks every element, of any type, that references it: an
// explicit-stack DFS over cross-type relations rooted at
// (nodeType, node), following getAllElements at each step. A node
// already marked is a no-op. Returns ErrTypeOutOfRange if nodeType is
// invalid.
// Complexity: O(number of newly marked (type,id) pairs * average cell
// row length).
func (tm *TypedMatrix) MarkToErase(nodeType, node int) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if nodeType < 0 || nodeType >= tm.t {
		return ErrTypeOutOfRange
	}
	if _, already := tm.marked[nodeType][node]; already {
		return nil
	}

	tm.marked[nodeType][node] = struct{}{}
	stack := []dagFrame{{typ: nodeType, id: node}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		referrers, err := tm.getAllElementsForNodeLocked(cur.typ, cur.id)
		if err != nil {
			continue
		}
		for _, r := range referrers {
			if _, already := tm.marked[r.Type][r.ID]; already {
				continue
			}
			tm.marked[r.Type][r.ID] = struct{}{}
			stack = append(stack, dagFrame{typ: r.Type, id: r.ID})
		}
	}

	return nil
}

// maxIDForType returns the largest id ever observed for entities of
// type typ, across every cell where typ plays either the element role
// or the node role. Returns -1 if no such id exists.
func (tm *TypedMatrix) maxIDForType(typ int) int {
	maxID := -1
	for i := 0; i < tm.t; i++ {
		if mn := tm.cells[i][typ].MaxNode(); mn > maxID {
			maxID = mn
		}
	}
	for j := 0; j < tm.t; j++ {
		if c := tm.cells[typ][j].Count() - 1; c > maxID {
			maxID = c
		}
	}

	return maxID
}

// Compress renumbers every type's surviving ids densely, in ascending
// order of old id, eliminating every entity marked via MarkToErase and
// every dangling reference to it. For each type t a kill-list renumber
// map is built from markedForErasure[t]; every cell (i,j) is then
// rearranged with element map newToOld[i] and node map oldToNew[j].
// All marked sets are cleared on completion.
// Complexity: O(T^2 * average cell total row length).
func (tm *TypedMatrix) Compress() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	oldToNew := make([][]int, tm.t)
	newToOld := make([][]int, tm.t)
	for t := 0; t < tm.t; t++ {
		o2n, n2o := buildKillListMaps(tm.maxIDForType(t), tm.marked[t])
		oldToNew[t] = o2n
		newToOld[t] = n2o
	}

	for i := 0; i < tm.t; i++ {
		for j := 0; j < tm.t; j++ {
			tm.cells[i][j].RearrangeAfterRenumbering(newToOld[i], oldToNew[j])
		}
	}

	for t := range tm.marked {
		tm.marked[t] = make(map[int]struct{})
	}
}
