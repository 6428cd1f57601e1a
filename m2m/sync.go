package m2m

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlrel/o2m"
)

// parallelThreshold mirrors o2m's bulk-op gating constant:
// below this element count, position-table synchronization runs serially.
const parallelThreshold = 4096

// BeginBatch enters batch mode: subsequent mutations no longer trigger
// an automatic resync on the next read. Must be paired
// with EndBatch.
// Complexity: O(1).
func (m *M2M) BeginBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = true
}

// EndBatch leaves batch mode, resynchronizing immediately if the forward
// relation was mutated while batched.
// Complexity: O(1) if clean; O(total row length) if a resync is needed.
func (m *M2M) EndBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = false
	if m.dirty {
		m.synchronize()
	}
}

// ensureSynced rebuilds the inverse and position tables if dirty and not
// currently batched. Callers must hold m.mu.
func (m *M2M) ensureSynced() {
	if m.dirty && !m.batch {
		m.synchronize()
	}
}

// synchronize rebuilds elementsFromNode via Transpose, then elemeloc and
// nodeloc. Callers must hold m.mu.
func (m *M2M) synchronize() {
	m.elementsFromNode = m.forward.Transpose()
	count := m.forward.Count()
	if count < parallelThreshold {
		m.syncPositionsSerial()
	} else {
		m.syncPositionsParallel()
	}
	m.dirty = false
}

// syncPositionsSerial computes elemeloc/nodeloc in a single pass: for
// each element e's row, appending e to the node's bucket in
// elementsFromNode-order and recording the append position in lockstep
// on both sides. O(total row length), no search needed.
func (m *M2M) syncPositionsSerial() {
	count := m.forward.Count()
	target := m.elementsFromNode.Count()
	elemeloc := make([][]int, count)
	nodeloc := make([][]int, target)
	cursor := make([]int, target) // next free slot per node, grows with elementsFromNode

	for e := 0; e < count; e++ {
		row, _ := m.forward.Row(e)
		el := make([]int, len(row))
		for k, n := range row {
			if n < 0 || n >= target {
				el[k] = -1
				continue
			}
			pos := cursor[n]
			cursor[n]++
			el[k] = pos
			nodeloc[n] = append(nodeloc[n], k)
		}
		elemeloc[e] = el
	}
	m.elemeloc = elemeloc
	m.nodeloc = nodeloc
}

// syncPositionsParallel computes elemeloc/nodeloc by binary search
// against the already-built (ascending-by-element) elementsFromNode rows,
// since each (node, position) slot is written by exactly one element and
// slots are pre-allocated, letting chunks run lock-free.
func (m *M2M) syncPositionsParallel() {
	count := m.forward.Count()
	target := m.elementsFromNode.Count()
	elemeloc := make([][]int, count)
	nodeloc := make([][]int, target)
	for n := 0; n < target; n++ {
		row, _ := m.elementsFromNode.Row(n)
		nodeloc[n] = make([]int, len(row))
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, c := range o2m.ChunkRanges(count) {
		c := c
		g.Go(func() error {
			for e := c.Start; e < c.End; e++ {
				row, _ := m.forward.Row(e)
				el := make([]int, len(row))
				for k, n := range row {
					if n < 0 || n >= target {
						el[k] = -1
						continue
					}
					nRow, _ := m.elementsFromNode.Row(n)
					pos := sort.SearchInts(nRow, e)
					el[k] = pos
					nodeloc[n][pos] = k
				}
				elemeloc[e] = el
			}

			return nil
		})
	}
	_ = g.Wait()
	m.elemeloc = elemeloc
	m.nodeloc = nodeloc
}
