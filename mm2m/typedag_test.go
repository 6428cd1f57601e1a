package mm2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrel/mm2m"
)

func TestAreTypesAcyclic_True(t *testing.T) {
	tm, _ := mm2m.New(2)
	cell, _ := tm.Cell(0, 1)
	cell.AppendElement([]int{0})

	assert.True(t, tm.AreTypesAcyclic())
}

func TestAreTypesAcyclic_False(t *testing.T) {
	tm, _ := mm2m.New(2)
	c01, _ := tm.Cell(0, 1)
	c01.AppendElement([]int{0})
	c10, _ := tm.Cell(1, 0)
	c10.AppendElement([]int{0})

	assert.False(t, tm.AreTypesAcyclic())
}

func TestGetTypeTopOrder(t *testing.T) {
	tm, _ := mm2m.New(2)
	cell, _ := tm.Cell(0, 1)
	cell.AppendElement([]int{0})

	order, err := tm.GetTypeTopOrder()
	require.NoError(t, err)
	require.Len(t, order, 2)
	pos := map[int]int{}
	for i, v := range order {
		pos[v] = i
	}
	assert.Less(t, pos[0], pos[1])
}

func TestGetTypeTopOrder_CycleErrors(t *testing.T) {
	tm, _ := mm2m.New(2)
	c01, _ := tm.Cell(0, 1)
	c01.AppendElement([]int{0})
	c10, _ := tm.Cell(1, 0)
	c10.AppendElement([]int{0})

	_, err := tm.GetTypeTopOrder()
	assert.Error(t, err)
}

func TestGetTypeTopOrder_NoEdgesIsIdentityOrder(t *testing.T) {
	tm, _ := mm2m.New(3)
	order, err := tm.GetTypeTopOrder()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}
