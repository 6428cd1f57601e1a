package o2m

// ToCsr exports a in Compressed Sparse Row form: rowPtr has
// length Count+1 with rowPtr[0]=0 and rowPtr[i+1] = rowPtr[i] + len(row
// i); col is the concatenation of all rows in element-id order, values
// preserved in source order.
// Complexity: O(total row length).
func (a *O2M) ToCsr() (rowPtr []int, col []int) {
	rowPtr = make([]int, len(a.rows)+1)
	total := 0
	for i, row := range a.rows {
		total += len(row)
		rowPtr[i+1] = total
	}
	col = make([]int, 0, total)
	for _, row := range a.rows {
		col = append(col, row...)
	}

	return rowPtr, col
}

// FromCsr is the inverse of ToCsr: it reconstructs an O2M from a
// (rowPtr, col) pair. rowPtr must be non-decreasing, start at
// 0, and end at len(col); a malformed pair yields undefined row
// boundaries (callers should only pass CSR data produced by ToCsr or
// validated against that contract).
// Complexity: O(len(col)).
func FromCsr(rowPtr, col []int) *O2M {
	if len(rowPtr) == 0 {
		return New()
	}
	rows := make([][]int, len(rowPtr)-1)
	for i := 0; i < len(rows); i++ {
		start, end := rowPtr[i], rowPtr[i+1]
		rows[i] = append([]int(nil), col[start:end]...)
	}

	return &O2M{rows: rows, maxNodeDirty: true}
}
