package o2m

// CompressElements builds a new O2M in which new index k holds the row
// that was at old index newToOld[k]. Entries of newToOld that are
// out-of-range ([0,Count)) or that repeat an old index already consumed
// are skipped, so the result may be shorter than len(newToOld). Rows
// are aliased, not copied.
// Complexity: O(len(newToOld)).
func (a *O2M) CompressElements(newToOld []int) *O2M {
	n := len(a.rows)
	out := make([][]int, 0, len(newToOld))
	usedOld := make([]bool, n)
	for _, oi := range newToOld {
		if oi < 0 || oi >= n || usedOld[oi] {
			continue
		}
		usedOld[oi] = true
		out = append(out, a.rows[oi])
	}

	return &O2M{rows: out, maxNodeDirty: true}
}

// isPermutation reports whether m is a bijection of [0,n): len(m)==n and
// every value in [0,n) appears exactly once.
func isPermutation(m []int, n int) bool {
	if len(m) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range m {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// PermuteElements reorders rows so that old index i ends at position
// oldToNew[i], when oldToNew is a valid permutation of [0,Count).
// Otherwise it degrades to CompressElements semantics, inverting the
// partial map (out-of-range or colliding targets are dropped, first
// writer wins). Rows are aliased, not copied.
// Complexity: O(Count).
func (a *O2M) PermuteElements(oldToNew []int) *O2M {
	n := len(a.rows)
	if isPermutation(oldToNew, n) {
		newRows := make([][]int, n)
		for i, np := range oldToNew {
			newRows[np] = a.rows[i]
		}

		return &O2M{rows: newRows, maxNodeDirty: true}
	}

	// Degrade: invert the partial map into newToOld and reuse compress.
	newToOld := make([]int, n)
	for i := range newToOld {
		newToOld[i] = -1
	}
	used := make([]bool, n)
	for i, np := range oldToNew {
		if i >= n || np < 0 || np >= n || used[np] {
			continue
		}
		newToOld[np] = i
		used[np] = true
	}

	return a.CompressElements(newToOld)
}

// PermuteNodes returns a new O2M in which every node id v appearing in
// any row is remapped to oldToNew[v] when v < len(oldToNew); values
// outside that range are left untouched. A negative mapped value (the
// kill-list sentinel for "this id was removed") drops the entry from
// its row instead of keeping a sentinel around.
// Complexity: O(total row length).
func (a *O2M) PermuteNodes(oldToNew []int) *O2M {
	rows := make([][]int, len(a.rows))
	for i, row := range a.rows {
		nr := make([]int, 0, len(row))
		for _, v := range row {
			if v >= 0 && v < len(oldToNew) {
				if mapped := oldToNew[v]; mapped >= 0 {
					nr = append(nr, mapped)
				}
				continue
			}
			nr = append(nr, v)
		}
		rows[i] = nr
	}

	return &O2M{rows: rows, maxNodeDirty: true}
}

// RearrangeAfterRenumbering composes CompressElements (element
// renumbering/deletion) followed by PermuteNodes (node relabeling),
// matching MM2M's compress protocol.
// Complexity: O(len(newToOldElem) + total row length).
func (a *O2M) RearrangeAfterRenumbering(newToOldElem, oldToNewNode []int) *O2M {
	return a.CompressElements(newToOldElem).PermuteNodes(oldToNewNode)
}
