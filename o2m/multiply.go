package o2m

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Multiply computes the symbolic boolean matrix product A*B:
// row i of the result is the deduplicated union, over m ranging across
// A[i], of B[m]. Order within a result row is unspecified — callers
// should compare result rows as sets.
//
// A "checked" traversal bounds-checks each m against B's row count; the
// faster "unchecked" path is used automatically when A.MaxNode() <
// B.Count(), since every m can then only ever be a valid B index.
//
// Rows are processed in parallel chunks via errgroup once the workload
// (A.Count()) reaches parallelThreshold; below that a single
// goroutine runs inline to avoid fan-out overhead.
// Complexity: O(total A row length * average |B[m]|) amortized.
func (a *O2M) Multiply(b *O2M) *O2M {
	n := len(a.rows)
	out := make([][]int, n)
	unchecked := a.MaxNode() < len(b.rows)

	computeRow := func(i int) {
		set := newMemberSet(b.MaxNode() + 1)
		aRow := a.rows[i]
		row := make([]int, 0, len(aRow))
		for _, m := range aRow {
			var bRow []int
			if unchecked {
				bRow = b.rows[m]
			} else {
				if m < 0 || m >= len(b.rows) {
					continue
				}
				bRow = b.rows[m]
			}
			for _, v := range bRow {
				if !set.has(v) {
					set.add(v)
					row = append(row, v)
				}
			}
		}
		out[i] = row
	}

	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			computeRow(i)
		}

		return &O2M{rows: out, maxNodeDirty: true}
	}

	chunks := ChunkRanges(n)
	g, _ := errgroup.WithContext(context.Background())
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			for i := c.Start; i < c.End; i++ {
				computeRow(i)
			}

			return nil
		})
	}
	_ = g.Wait() // computeRow never errors; Wait only reconciles goroutines

	return &O2M{rows: out, maxNodeDirty: true}
}
