package mm2m_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrel/mm2m"
)

// ExampleTypedMatrix demonstrates wiring a cross-type reference, then
// cascading a deletion through it.
func ExampleTypedMatrix() {
	tm, _ := mm2m.New(2)

	diag0, _ := tm.Cell(0, 0)
	diag0.AppendElement([]int{0})

	cross, _ := tm.Cell(0, 1)
	cross.AppendElement([]int{0}) // type-0 element 0 references type-1 node 0

	referrers, _ := tm.GetAllElementsForNode(1, 0)
	fmt.Println("node 0 of type 1 is referenced by", referrers)

	_ = tm.MarkToErase(1, 0)
	active, _ := tm.GetNumberOfActiveElements(0)
	fmt.Println("type-0 elements pending erasure:", active)

	// Output:
	// node 0 of type 1 is referenced by [{0 0}]
	// type-0 elements pending erasure: 1
}
