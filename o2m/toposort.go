package o2m

import "container/heap"

// intHeap is a minimal min-heap of ints, used to discharge zero-indegree
// vertices in ascending order for a deterministic topological order.
type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]

	return v
}

// GetTopOrder computes a Kahn-style topological ordering over the node
// space [0, target) where target = max(Count, MaxNode()+1) and edge u→v
// exists iff v ∈ self[u]. Vertices with index >= Count have
// no outgoing rows but may still have incoming edges. Zero-indegree
// vertices are discharged in ascending id order for determinism.
//
// If the underlying graph has a cycle, the returned order contains fewer
// than target vertices: only those that ever reach
// indegree zero are included.
// Complexity: O(target + total row length).
func (a *O2M) GetTopOrder() []int {
	target := a.targetRowCount()
	indegree := make([]int, target)
	for _, row := range a.rows {
		for _, v := range row {
			if v >= 0 && v < target {
				indegree[v]++
			}
		}
	}

	h := &intHeap{}
	heap.Init(h)
	for v := 0; v < target; v++ {
		if indegree[v] == 0 {
			heap.Push(h, v)
		}
	}

	order := make([]int, 0, target)
	for h.Len() > 0 {
		u := heap.Pop(h).(int)
		order = append(order, u)
		if u >= len(a.rows) {
			continue // no outgoing rows
		}
		for _, v := range a.rows[u] {
			if v < 0 || v >= target {
				continue
			}
			indegree[v]--
			if indegree[v] == 0 {
				heap.Push(h, v)
			}
		}
	}

	return order
}
