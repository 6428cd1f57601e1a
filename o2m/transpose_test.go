package o2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlrel/o2m"
)

func TestTranspose_Basic(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{0, 2}, {2}, {}}))
	tr := a.Transpose()
	assert.Equal(t, 3, tr.Count())
	r0, _ := tr.Row(0)
	assert.Equal(t, []int{0}, r0)
	r2, _ := tr.Row(2)
	assert.Equal(t, []int{0, 1}, r2)
}

func TestTranspose_RowCountCoversMaxNode(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{5}}))
	tr := a.Transpose()
	assert.Equal(t, 6, tr.Count())
}

func TestTranspose_ParallelMatchesSerial(t *testing.T) {
	n := 5000
	aRows := make([][]int, n)
	for i := 0; i < n; i++ {
		aRows[i] = []int{i % 10}
	}
	a := o2m.New(o2m.WithAdjacency(aRows))
	tr := a.Transpose()
	row0, _ := tr.Row(0)
	assert.Len(t, row0, n/10)
	for _, e := range row0 {
		assert.Equal(t, 0, e%10)
	}
}

func TestTranspose_DoubleTransposeIsPermutationOfOriginal(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{0, 1}, {1}}))
	back := a.Transpose().Transpose()
	assert.True(t, a.IsPermutationOf(back))
}
