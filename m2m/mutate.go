package m2m

import "github.com/katalvlaran/lvlrel/o2m"

// AppendElement appends a new element with the given row and returns its
// id, invalidating the sync flag.
// Complexity: O(1) amortized.
func (m *M2M) AppendElement(row []int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.forward.AppendElement(row)
	m.dirty = true

	return id
}

// AppendElements appends one element per row and returns their ids.
// Complexity: O(len(rows)) amortized.
func (m *M2M) AppendElements(rows ...[]int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := m.forward.AppendElements(rows...)
	m.dirty = true

	return ids
}

// AppendNodeToElement appends node n to element e's row.
// Complexity: O(1) amortized.
func (m *M2M) AppendNodeToElement(e, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forward.AppendNodeToElement(e, n); err != nil {
		return err
	}
	m.dirty = true

	return nil
}

// RemoveNodeFromElement removes the first occurrence of n from element
// e's row.
// Complexity: O(|row e|).
func (m *M2M) RemoveNodeFromElement(e, n int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed, err := m.forward.RemoveNodeFromElement(e, n)
	if err != nil {
		return false, err
	}
	if removed {
		m.dirty = true
	}

	return removed, nil
}

// ClearElement empties element e's row in place.
// Complexity: O(1).
func (m *M2M) ClearElement(e int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forward.ClearElement(e); err != nil {
		return err
	}
	m.dirty = true

	return nil
}

// ReplaceElement replaces element e's row wholesale.
// Complexity: O(1).
func (m *M2M) ReplaceElement(e int, row []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.forward.ReplaceElement(e, row); err != nil {
		return err
	}
	m.dirty = true

	return nil
}

// CompressElements renumbers elements per o2m.CompressElements, replacing
// the forward relation and invalidating sync.
// Complexity: O(len(newToOld)).
func (m *M2M) CompressElements(newToOld []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward = m.forward.CompressElements(newToOld)
	m.dirty = true
}

// PermuteElements reorders elements per o2m.PermuteElements.
// Complexity: O(Count).
func (m *M2M) PermuteElements(oldToNew []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward = m.forward.PermuteElements(oldToNew)
	m.dirty = true
}

// PermuteNodes relabels node ids per o2m.PermuteNodes.
// Complexity: O(total row length).
func (m *M2M) PermuteNodes(oldToNew []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward = m.forward.PermuteNodes(oldToNew)
	m.dirty = true
}

// RearrangeAfterRenumbering composes CompressElements then PermuteNodes,
// matching MM2M's compress protocol.
// Complexity: O(len(newToOldElem) + total row length).
func (m *M2M) RearrangeAfterRenumbering(newToOldElem, oldToNewNode []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward = m.forward.RearrangeAfterRenumbering(newToOldElem, oldToNewNode)
	m.dirty = true
}

// ClearAll empties the forward relation, resets the inverse to an empty
// relation, and drops the position caches.
// Complexity: O(Count).
func (m *M2M) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forward = m.forward.CompressElements(nil)
	m.elementsFromNode = o2m.New()
	m.elemeloc = nil
	m.nodeloc = nil
	m.dirty = false
	m.batch = false
}

// Count returns the number of elements.
// Complexity: O(1).
func (m *M2M) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.forward.Count()
}

// Row returns element e's node list (aliased; do not mutate).
// Complexity: O(1).
func (m *M2M) Row(e int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.forward.Row(e)
}

// MaxNode returns the forward relation's cached maximum node id.
// Complexity: amortized O(1).
func (m *M2M) MaxNode() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.forward.MaxNode()
}

// Clone returns a deep copy of m, including a deep copy of the forward
// relation; derived caches are dropped and rebuilt lazily on next sync.
// Complexity: O(total row length).
func (m *M2M) Clone() *M2M {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &M2M{
		forward: m.forward.Clone(),
		dirty:   true,
		batch:   false,
	}
}
