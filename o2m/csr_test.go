package o2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlrel/o2m"
)

func TestCsrRoundTrip(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{1, 2}, {}, {0}}))
	rowPtr, col := a.ToCsr()
	assert.Equal(t, []int{0, 2, 2, 3}, rowPtr)
	assert.Equal(t, []int{1, 2, 0}, col)

	b := o2m.FromCsr(rowPtr, col)
	assert.True(t, a.Equal(b))
}

func TestBooleanMatrixRoundTrip(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{0, 2}, {1}}))
	m := a.ToBooleanMatrix()
	assert.Equal(t, [][]byte{{1, 0, 1}, {0, 1, 0}}, m)

	b := o2m.FromBooleanMatrix(m)
	assert.True(t, a.Equal(b))
}
