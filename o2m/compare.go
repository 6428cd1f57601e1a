package o2m

import "sort"

// Compare lexicographically orders a against other: row count decides
// first; on a tie, rows are compared pairwise via Compare,
// which itself breaks ties on a shared prefix by row length. Returns -1,
// 0, or 1.
// Complexity: O(total row length).
func (a *O2M) Compare(other *O2M) int {
	if len(a.rows) != len(other.rows) {
		if len(a.rows) < len(other.rows) {
			return -1
		}

		return 1
	}
	for i := range a.rows {
		if c := Compare(a.rows[i], other.rows[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Equal reports whether a and other have identical rows, in the same
// order.
// Complexity: O(total row length).
func (a *O2M) Equal(other *O2M) bool {
	return a.Compare(other) == 0
}

// IsPermutationOf reports whether a and other hold the same multiset of
// rows (each row compared as an ordered sequence), irrespective of which
// element id each row is attached to: both row sets are
// sorted by row-lex order and compared pairwise.
// Complexity: O(Count log Count + total row length).
func (a *O2M) IsPermutationOf(other *O2M) bool {
	if len(a.rows) != len(other.rows) {
		return false
	}
	ia := sortedRowIndices(a.rows)
	ib := sortedRowIndices(other.rows)
	for k := range ia {
		if Compare(a.rows[ia[k]], other.rows[ib[k]]) != 0 {
			return false
		}
	}

	return true
}

// sortedRowIndices returns the indices of rows, sorted by Compare order.
func sortedRowIndices(rows [][]int) []int {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return Compare(rows[idx[i]], rows[idx[j]]) < 0
	})

	return idx
}
