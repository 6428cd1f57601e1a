package m2m_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrel/m2m"
)

// ExampleM2M demonstrates appending elements, then reading back the
// synchronized inverse and reciprocal positions.
func ExampleM2M() {
	m := m2m.New()
	m.AppendElements(
		[]int{0, 1},
		[]int{1},
	)

	neighbours := m.GetNodeNeighbours(1)
	fmt.Println("node 1 shares an element with nodes", neighbours)

	pos, _ := m.GetElementPositions(0)
	fmt.Println("element 0's reciprocal positions", pos)

	// Output:
	// node 1 shares an element with nodes [0]
	// element 0's reciprocal positions [0 0]
}
