package o2m_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlrel/o2m"
)

func TestGetCliques_DenseCartesianProduct(t *testing.T) {
	forward := o2m.New(o2m.WithAdjacency([][]int{{0, 1}}))
	inverse := forward.Transpose()

	cliques := o2m.GetCliques(forward, inverse)
	assert.Len(t, cliques, 1)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 0, 1, 1}, cliques[0])
}

func TestGetCliques_EmptyRowYieldsEmptyClique(t *testing.T) {
	forward := o2m.New(o2m.WithAdjacency([][]int{{}}))
	inverse := forward.Transpose()
	cliques := o2m.GetCliques(forward, inverse)
	assert.Empty(t, cliques[0])
}
