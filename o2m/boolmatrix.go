package o2m

// ToBooleanMatrix renders a as a dense Count x (MaxNode()+1) byte
// matrix: m[i][j] is 1 when j ∈ self[i], 0 otherwise.
// Complexity: O(Count * (MaxNode()+1)).
func (a *O2M) ToBooleanMatrix() [][]byte {
	cols := a.MaxNode() + 1
	m := make([][]byte, len(a.rows))
	for i, row := range a.rows {
		m[i] = make([]byte, cols)
		for _, v := range row {
			if v >= 0 && v < cols {
				m[i][v] = 1
			}
		}
	}

	return m
}

// FromBooleanMatrix is the inverse of ToBooleanMatrix: row i lists, in
// ascending column order, every column j with m[i][j] truthy.
// Complexity: O(rows * cols).
func FromBooleanMatrix(m [][]byte) *O2M {
	rows := make([][]int, len(m))
	for i, r := range m {
		row := make([]int, 0)
		for j, v := range r {
			if v != 0 {
				row = append(row, j)
			}
		}
		rows[i] = row
	}

	return &O2M{rows: rows, maxNodeDirty: true}
}
