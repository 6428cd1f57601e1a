package m2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrel/m2m"
	"github.com/katalvlaran/lvlrel/o2m"
)

func TestAppendElement_AssignsSequentialIDs(t *testing.T) {
	m := m2m.New()
	assert.Equal(t, 0, m.AppendElement([]int{0}))
	assert.Equal(t, 1, m.AppendElement([]int{1}))
	assert.Equal(t, 2, m.Count())
}

func TestAppendElements_Bulk(t *testing.T) {
	m := m2m.New()
	ids := m.AppendElements([]int{0}, []int{1}, []int{2})
	assert.Equal(t, []int{0, 1, 2}, ids)
}

func TestAppendNodeToElement_GrowsRow(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{0})
	require.NoError(t, m.AppendNodeToElement(0, 5))
	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 5}, row)
}

func TestAppendNodeToElement_OutOfRangeElement(t *testing.T) {
	m := m2m.New()
	err := m.AppendNodeToElement(3, 0)
	assert.Error(t, err)
}

func TestRemoveNodeFromElement(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{0, 1, 2})
	removed, err := m.RemoveNodeFromElement(0, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	row, _ := m.Row(0)
	assert.Equal(t, []int{0, 2}, row)

	removed, err = m.RemoveNodeFromElement(0, 99)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestClearElement(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{0, 1})
	require.NoError(t, m.ClearElement(0))
	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Empty(t, row)
}

func TestReplaceElement(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{0})
	require.NoError(t, m.ReplaceElement(0, []int{5, 6}))
	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, row)
}

func TestCompressElements(t *testing.T) {
	m := m2m.New()
	m.AppendElements([]int{0}, []int{1}, []int{2})
	m.CompressElements([]int{2, 0})
	assert.Equal(t, 2, m.Count())
	r0, _ := m.Row(0)
	r1, _ := m.Row(1)
	assert.Equal(t, []int{2}, r0)
	assert.Equal(t, []int{0}, r1)
}

func TestPermuteElements(t *testing.T) {
	m := m2m.New()
	m.AppendElements([]int{0}, []int{1}, []int{2})
	m.PermuteElements([]int{2, 0, 1})
	r0, _ := m.Row(0)
	assert.Equal(t, []int{1}, r0)
}

func TestPermuteNodes(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{0, 1})
	m.PermuteNodes([]int{10, 11})
	row, _ := m.Row(0)
	assert.Equal(t, []int{10, 11}, row)
}

func TestRearrangeAfterRenumbering(t *testing.T) {
	m := m2m.New()
	m.AppendElements([]int{0, 1}, []int{2})
	m.RearrangeAfterRenumbering([]int{1}, []int{-1, 10, 20})
	assert.Equal(t, 1, m.Count())
	row, _ := m.Row(0)
	assert.Equal(t, []int{20}, row)
}

func TestClearAll(t *testing.T) {
	m := m2m.New()
	m.AppendElements([]int{0}, []int{1})
	m.ClearAll()
	assert.Equal(t, 0, m.Count())
	pos, err := m.GetElementPositions(0)
	assert.Error(t, err)
	assert.Nil(t, pos)
}

func TestClone_IsIndependent(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{0, 1})
	c := m.Clone()
	c.AppendElement([]int{2})
	assert.Equal(t, 1, m.Count())
	assert.Equal(t, 2, c.Count())
}

func TestMaxNode(t *testing.T) {
	m := m2m.New()
	m.AppendElement([]int{3, 7})
	assert.Equal(t, 7, m.MaxNode())
}

func TestWithForward_ClonePreservesRows(t *testing.T) {
	a := o2m.New(o2m.WithAdjacencyCopy([][]int{{0}, {1}}))
	m := m2m.New(m2m.WithForward(a))
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, row)
}
