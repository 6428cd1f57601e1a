package o2m_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrel/o2m"
)

// ExampleO2M demonstrates building a sparse element-to-node relation and
// reading back its transpose (node -> elements).
func ExampleO2M() {
	a := o2m.New(o2m.WithAdjacency([][]int{
		{0, 1}, // element 0 references nodes 0, 1
		{1},    // element 1 references node 1
	}))

	inverse := a.Transpose()
	row0, _ := inverse.Row(0)
	row1, _ := inverse.Row(1)
	fmt.Println("node 0 <- elements", row0)
	fmt.Println("node 1 <- elements", row1)

	// Output:
	// node 0 <- elements [0]
	// node 1 <- elements [0 1]
}
