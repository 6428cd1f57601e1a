package o2m

// memberSet is the small-domain-fast-path membership test used by the
// boolean algebra operators: a bitset when the relevant
// domain is small, a hash set otherwise.
type memberSet interface {
	has(v int) bool
	add(v int)
	reset()
}

// newMemberSet picks bitsetSet when domain <= smallDomainBitsetLimit,
// otherwise hashSet.
func newMemberSet(domain int) memberSet {
	if domain >= 0 && domain <= smallDomainBitsetLimit {
		return newBitsetSet(domain)
	}

	return newHashSet()
}

type bitsetSet struct {
	words []uint64
}

func newBitsetSet(domain int) *bitsetSet {
	if domain < 0 {
		domain = 0
	}

	return &bitsetSet{words: make([]uint64, (domain+64)/64)}
}

func (b *bitsetSet) has(v int) bool {
	if v < 0 {
		return false
	}
	idx := v / 64
	if idx >= len(b.words) {
		return false
	}

	return b.words[idx]&(uint64(1)<<uint(v%64)) != 0
}

func (b *bitsetSet) add(v int) {
	if v < 0 {
		return
	}
	idx := v / 64
	if idx >= len(b.words) {
		// Grow rather than drop: callers size domain from observed maxNode,
		// but defensive growth keeps this correct even if that estimate is stale.
		grown := make([]uint64, idx+1)
		copy(grown, b.words)
		b.words = grown
	}
	b.words[idx] |= uint64(1) << uint(v%64)
}

func (b *bitsetSet) reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

type hashSet struct {
	m map[int]struct{}
}

func newHashSet() *hashSet {
	return &hashSet{m: make(map[int]struct{})}
}

func (h *hashSet) has(v int) bool {
	_, ok := h.m[v]

	return ok
}

func (h *hashSet) add(v int) {
	h.m[v] = struct{}{}
}

func (h *hashSet) reset() {
	for k := range h.m {
		delete(h.m, k)
	}
}

// domainOf returns the membership-set sizing hint for operands a and b:
// one past the larger of their cached maxima.
func domainOf(a, b *O2M) int {
	m := a.MaxNode()
	if bm := b.MaxNode(); bm > m {
		m = bm
	}

	return m + 1
}

// rowCount returns the larger of the two row counts, used by Union to
// decide how many output rows to produce.
func rowCount(a, b int) int {
	if b > a {
		return b
	}

	return a
}

func rowAt(rows [][]int, i int) []int {
	if i < len(rows) {
		return rows[i]
	}

	return nil
}

// Union returns A|B (also written A+B): for each row index i <
// max(Count,b.Count), the elements of A[i] in source order (deduplicated)
// followed by the elements of B[i] not already present. Short rows pair
// with implicit empty rows.
// Complexity: O(total row length) amortized.
func (a *O2M) Union(b *O2M) *O2M {
	n := rowCount(len(a.rows), len(b.rows))
	set := newMemberSet(domainOf(a, b))
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		ra, rb := rowAt(a.rows, i), rowAt(b.rows, i)
		set.reset()
		row := make([]int, 0, len(ra)+len(rb))
		for _, v := range ra {
			if !set.has(v) {
				set.add(v)
				row = append(row, v)
			}
		}
		for _, v := range rb {
			if !set.has(v) {
				set.add(v)
				row = append(row, v)
			}
		}
		out[i] = row
	}

	return &O2M{rows: out, maxNodeDirty: true}
}

// Intersect returns A&B: for each row index i < min(Count,b.Count), the
// elements of A[i], in its order, that also appear in B[i].
// Complexity: O(total row length) amortized.
func (a *O2M) Intersect(b *O2M) *O2M {
	n := len(a.rows)
	if len(b.rows) < n {
		n = len(b.rows)
	}
	bset := newMemberSet(domainOf(a, b))
	eset := newMemberSet(domainOf(a, b))
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		ra, rb := a.rows[i], b.rows[i]
		bset.reset()
		eset.reset()
		for _, v := range rb {
			bset.add(v)
		}
		row := make([]int, 0, len(ra))
		for _, v := range ra {
			if bset.has(v) && !eset.has(v) {
				eset.add(v)
				row = append(row, v)
			}
		}
		out[i] = row
	}

	return &O2M{rows: out, maxNodeDirty: true}
}

// Difference returns A-B: A[i] minus B[i], preserving A's order. Rows
// of A beyond b.Count are copied unchanged (deduplicated).
// Complexity: O(total row length) amortized.
func (a *O2M) Difference(b *O2M) *O2M {
	out := make([][]int, len(a.rows))
	bset := newMemberSet(domainOf(a, b))
	eset := newMemberSet(domainOf(a, b))
	for i, ra := range a.rows {
		bset.reset()
		eset.reset()
		if rb := rowAt(b.rows, i); rb != nil {
			for _, v := range rb {
				bset.add(v)
			}
		}
		row := make([]int, 0, len(ra))
		for _, v := range ra {
			if !bset.has(v) && !eset.has(v) {
				eset.add(v)
				row = append(row, v)
			}
		}
		out[i] = row
	}

	return &O2M{rows: out, maxNodeDirty: true}
}

// SymmetricDifference returns A^B ≡ (A|B) - (A&B).
// Complexity: O(total row length) amortized.
func (a *O2M) SymmetricDifference(b *O2M) *O2M {
	return a.Union(b).Difference(a.Intersect(b))
}
