package o2m

// AppendElement appends a new element whose row is row (aliased, not
// copied) and returns its newly assigned element id.
// Complexity: O(1) amortized.
func (a *O2M) AppendElement(row []int) int {
	a.rows = append(a.rows, row)
	a.invalidate()

	return len(a.rows) - 1
}

// AppendElements appends one new element per row in rows, in order, and
// returns the assigned element ids.
// Complexity: O(len(rows)) amortized.
func (a *O2M) AppendElements(rows ...[]int) []int {
	ids := make([]int, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, a.AppendElement(r))
	}

	return ids
}

// AppendNodeToElement appends node n to the end of element e's row.
// Returns ErrElementOutOfRange if e is out of bounds.
// Complexity: O(1) amortized.
func (a *O2M) AppendNodeToElement(e, n int) error {
	if e < 0 || e >= len(a.rows) {
		return ErrElementOutOfRange
	}
	a.rows[e] = append(a.rows[e], n)
	a.invalidate()

	return nil
}

// RemoveNodeFromElement removes the first occurrence of n in element e's
// row, preserving the order of the remaining entries. Returns whether a
// node was removed, and ErrElementOutOfRange if e is out of bounds.
// Complexity: O(|row e|).
func (a *O2M) RemoveNodeFromElement(e, n int) (bool, error) {
	if e < 0 || e >= len(a.rows) {
		return false, ErrElementOutOfRange
	}
	row := a.rows[e]
	for i, v := range row {
		if v == n {
			a.rows[e] = append(row[:i], row[i+1:]...)
			a.invalidate()

			return true, nil
		}
	}

	return false, nil
}

// ClearElement empties element e's row in place. Returns
// ErrElementOutOfRange if e is out of bounds.
// Complexity: O(1).
func (a *O2M) ClearElement(e int) error {
	if e < 0 || e >= len(a.rows) {
		return ErrElementOutOfRange
	}
	a.rows[e] = a.rows[e][:0]
	a.invalidate()

	return nil
}

// ReplaceElement replaces element e's row wholesale with row (aliased,
// not copied). Returns ErrElementOutOfRange if e is out of bounds.
// Complexity: O(1).
func (a *O2M) ReplaceElement(e int, row []int) error {
	if e < 0 || e >= len(a.rows) {
		return ErrElementOutOfRange
	}
	a.rows[e] = row
	a.invalidate()

	return nil
}
