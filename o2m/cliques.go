package o2m

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GetCliques is the static mesh-expansion primitive behind
// M2M.GetCliques: given a forward element→node O2M and its
// paired inverse (node→element) O2M, it returns, indexed by element, a
// flat sequence of (compact-id, compact-id) pairs forming the dense
// |nodes(e)|² Cartesian product of e's node list, row-major.
//
// Node ids are first mapped to compact ids via a sorted-unique
// enumeration of all nodes that actually occur (inverse's non-empty
// rows, in ascending node-id order). Cliques are reported as the dense
// Cartesian product rather than an edge list.
//
// Complexity: O(sum of |nodes(e)|²) amortized; chunked across goroutines
// once forward.Count() reaches parallelThreshold.
func GetCliques(forward, inverse *O2M) [][]int {
	numNodes := len(inverse.rows)
	compact := make([]int, numNodes)
	next := 0
	for n := 0; n < numNodes; n++ {
		if len(inverse.rows[n]) > 0 {
			compact[n] = next
			next++
		} else {
			compact[n] = -1
		}
	}

	out := make([][]int, len(forward.rows))
	computeOne := func(e int) {
		row := forward.rows[e]
		k := len(row)
		ids := make([]int, k)
		for i, v := range row {
			if v >= 0 && v < numNodes {
				ids[i] = compact[v]
			} else {
				ids[i] = -1
			}
		}
		flat := make([]int, 0, 2*k*k)
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				flat = append(flat, ids[i], ids[j])
			}
		}
		out[e] = flat
	}

	n := len(forward.rows)
	if n < parallelThreshold {
		for e := 0; e < n; e++ {
			computeOne(e)
		}

		return out
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, c := range ChunkRanges(n) {
		c := c
		g.Go(func() error {
			for e := c.Start; e < c.End; e++ {
				computeOne(e)
			}

			return nil
		})
	}
	_ = g.Wait()

	return out
}
