package o2m

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// targetRowCount returns max(Count, MaxNode()+1): the row count of a's
// transpose, sized so both the element and node spaces survive.
func (a *O2M) targetRowCount() int {
	n := len(a.rows)
	if mn := a.MaxNode() + 1; mn > n {
		return mn
	}

	return n
}

// Transpose produces an O2M whose row n lists, in ascending element-id
// order, every element e such that n ∈ self[e]. The row
// count of the result is max(Count, MaxNode()+1).
//
// Implementation is a three-pass count/allocate/fill scheme:
// above parallelThreshold elements the forward scan is chunked across
// goroutines, with a per-chunk prefix-sum offset table guaranteeing each
// target row is written by exactly one writer per chunk.
// Complexity: O(Count + total row length).
func (a *O2M) Transpose() *O2M {
	target := a.targetRowCount()
	if len(a.rows) < parallelThreshold {
		return a.transposeSerial(target)
	}

	return a.transposeParallel(target)
}

func (a *O2M) transposeSerial(target int) *O2M {
	counts := make([]int, target)
	for _, row := range a.rows {
		for _, v := range row {
			if v >= 0 && v < target {
				counts[v]++
			}
		}
	}
	rows := make([][]int, target)
	for t, c := range counts {
		if c > 0 {
			rows[t] = make([]int, 0, c)
		}
	}
	for e, row := range a.rows {
		for _, v := range row {
			if v >= 0 && v < target {
				rows[v] = append(rows[v], e)
			}
		}
	}

	return &O2M{rows: rows, maxNodeDirty: true}
}

// transposeParallel implements the chunked count/offset/fill scheme:
// pass 1 tallies per-chunk occurrence counts per target row; pass 2
// turns those into a prefix-sum write offset per (chunk,target) pair and
// allocates exactly-sized target rows; pass 3 has each chunk refill its
// own source range, writing through a local cursor seeded from its
// offset so no two goroutines ever write the same slot.
func (a *O2M) transposeParallel(target int) *O2M {
	chunks := ChunkRanges(len(a.rows))
	nc := len(chunks)

	// Pass 1: per-chunk occurrence counts.
	chunkCounts := make([][]int, nc)
	g, _ := errgroup.WithContext(context.Background())
	for ci, c := range chunks {
		ci, c := ci, c
		g.Go(func() error {
			local := make([]int, target)
			for e := c.Start; e < c.End; e++ {
				for _, v := range a.rows[e] {
					if v >= 0 && v < target {
						local[v]++
					}
				}
			}
			chunkCounts[ci] = local

			return nil
		})
	}
	_ = g.Wait()

	// Pass 2: prefix sum per target row across chunks -> per-chunk write offsets.
	offsets := make([][]int, nc)
	for ci := range offsets {
		offsets[ci] = make([]int, target)
	}
	total := make([]int, target)
	for t := 0; t < target; t++ {
		running := 0
		for ci := 0; ci < nc; ci++ {
			offsets[ci][t] = running
			running += chunkCounts[ci][t]
		}
		total[t] = running
	}
	rows := make([][]int, target)
	for t, c := range total {
		if c > 0 {
			rows[t] = make([]int, c)
		}
	}

	// Pass 3: fill. Each chunk owns a disjoint slice of every target row.
	g2, _ := errgroup.WithContext(context.Background())
	for ci, c := range chunks {
		ci, c := ci, c
		g2.Go(func() error {
			cursor := append([]int(nil), offsets[ci]...)
			for e := c.Start; e < c.End; e++ {
				for _, v := range a.rows[e] {
					if v < 0 || v >= target {
						continue
					}
					rows[v][cursor[v]] = e
					cursor[v]++
				}
			}

			return nil
		})
	}
	_ = g2.Wait()

	return &O2M{rows: rows, maxNodeDirty: true}
}
