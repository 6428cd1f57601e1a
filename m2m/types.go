package m2m

import (
	"sync"

	"github.com/katalvlaran/lvlrel/o2m"
)

// M2M is an O2M (the forward element→node relation) plus a lazily
// synchronized inverse (node→elements) and the elemeloc/nodeloc
// reciprocal position tables.
//
// A single mutex guards the forward adjacency and every derived cache
// together, since a committed mutation and the dirty flag it sets must
// change atomically.
type M2M struct {
	mu sync.Mutex

	forward *o2m.O2M // element -> node, the "is-a" O2M

	elementsFromNode *o2m.O2M // node -> elements, rebuilt on sync
	elemeloc         [][]int  // elemeloc[e][k] = position of e within elementsFromNode[forward.Row(e)[k]]
	nodeloc          [][]int  // nodeloc[n][k]  = position within forward.Row(e) at which n occurs, for the k-th element e referencing n

	dirty bool // true when elementsFromNode/elemeloc/nodeloc need a rebuild
	batch bool // true while batch mode suppresses automatic resync
}

// Option configures an M2M at construction time.
type Option func(*M2M)

// WithCapacity reserves room for n elements in the forward relation.
func WithCapacity(n int) Option {
	return func(m *M2M) {
		m.forward = o2m.New(o2m.WithCapacity(n))
	}
}

// WithForward adopts an existing O2M as the forward relation without
// copying. The caller must not mutate it directly afterwards; doing so
// bypasses M2M's dirty-flag bookkeeping.
func WithForward(a *o2m.O2M) Option {
	return func(m *M2M) {
		m.forward = a
		m.dirty = true
	}
}

// WithBatch starts the M2M already in batch mode: no
// automatic resync occurs on read until EndBatch is called.
func WithBatch() Option {
	return func(m *M2M) { m.batch = true }
}

// New constructs an empty, synchronized (trivially, since empty) M2M.
func New(opts ...Option) *M2M {
	m := &M2M{
		forward:          o2m.New(),
		elementsFromNode: o2m.New(),
		dirty:            false,
		batch:            false,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
