package mm2m

import (
	"sync"

	"github.com/katalvlaran/lvlrel/m2m"
)

// TypeID identifies an entity by its type and within-type id, the unit
// cross-type queries are expressed in.
type TypeID struct {
	Type int
	ID   int
}

// TypedMatrix is a T×T grid of M2M cells: cell (i,j) is the relation
// from type-i elements to type-j nodes. A single mutex guards every
// public method for coherence across cells.
type TypedMatrix struct {
	mu sync.Mutex

	t     int          // number of types
	cells [][]*m2m.M2M // cells[i][j]: type-i elements -> type-j nodes

	marked []map[int]struct{} // marked[t] = node ids of type t pending erasure
}

// Option configures a TypedMatrix at construction time.
type Option func(*TypedMatrix)

// WithCellCapacity forwards a per-element capacity hint to every cell's
// underlying M2M.
func WithCellCapacity(n int) Option {
	return func(tm *TypedMatrix) {
		for i := range tm.cells {
			for j := range tm.cells[i] {
				tm.cells[i][j] = m2m.New(m2m.WithCapacity(n))
			}
		}
	}
}

// New allocates a TypedMatrix with numberOfTypes types, each backed by a
// fresh M2M cell and an empty per-type marked-for-erasure set. Returns
// ErrInvalidTypeCount if numberOfTypes < 1.
func New(numberOfTypes int, opts ...Option) (*TypedMatrix, error) {
	if numberOfTypes < 1 {
		return nil, ErrInvalidTypeCount
	}

	cells := make([][]*m2m.M2M, numberOfTypes)
	for i := range cells {
		cells[i] = make([]*m2m.M2M, numberOfTypes)
		for j := range cells[i] {
			cells[i][j] = m2m.New()
		}
	}
	marked := make([]map[int]struct{}, numberOfTypes)
	for t := range marked {
		marked[t] = make(map[int]struct{})
	}

	tm := &TypedMatrix{t: numberOfTypes, cells: cells, marked: marked}
	for _, opt := range opts {
		opt(tm)
	}

	return tm, nil
}

// NumberOfTypes returns T.
// Complexity: O(1).
func (tm *TypedMatrix) NumberOfTypes() int {
	return tm.t
}

// Cell returns the M2M modeling "elements of type elemType are made of
// nodes of type nodeType". Returns ErrTypeOutOfRange if either index is
// outside [0, T).
// Complexity: O(1).
func (tm *TypedMatrix) Cell(elemType, nodeType int) (*m2m.M2M, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return tm.cellLocked(elemType, nodeType)
}

func (tm *TypedMatrix) cellLocked(elemType, nodeType int) (*m2m.M2M, error) {
	if elemType < 0 || elemType >= tm.t || nodeType < 0 || nodeType >= tm.t {
		return nil, ErrTypeOutOfRange
	}

	return tm.cells[elemType][nodeType], nil
}

// GetNumberOfElements returns self[elemType,elemType].Count(): the
// number of entities of type elemType.
// Complexity: O(1).
func (tm *TypedMatrix) GetNumberOfElements(elemType int) (int, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	cell, err := tm.cellLocked(elemType, elemType)
	if err != nil {
		return 0, err
	}

	return cell.Count(), nil
}

// GetNumberOfActiveElements counts diagonal rows of elemType whose
// leading node is currently in markedForErasure[elemType]. Despite the
// name, "active" here means currently flagged for erasure, not
// currently alive — a naming quirk carried over deliberately rather
// than silently reinterpreted.
// Complexity: O(Count of elemType's diagonal cell).
func (tm *TypedMatrix) GetNumberOfActiveElements(elemType int) (int, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	cell, err := tm.cellLocked(elemType, elemType)
	if err != nil {
		return 0, err
	}
	marked := tm.marked[elemType]
	count := 0
	for e := 0; e < cell.Count(); e++ {
		row, _ := cell.Row(e)
		if len(row) == 0 {
			continue
		}
		if _, ok := marked[row[0]]; ok {
			count++
		}
	}

	return count, nil
}
