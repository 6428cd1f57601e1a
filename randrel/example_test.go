package randrel_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrel/randrel"
)

// ExampleNewRandomO2M demonstrates building a fully dense random
// relation (density 1.0 always includes every node) for a deterministic,
// easy-to-check example.
func ExampleNewRandomO2M() {
	a, err := randrel.NewRandomO2M(2, 3, 1.0, 7)
	if err != nil {
		panic(err)
	}

	row0, _ := a.Row(0)
	fmt.Println("element 0:", row0)

	// Output:
	// element 0: [0 1 2]
}
