package randrel

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlrel/o2m"
)

const (
	minElementCount = 1
	densityMin      = 0.0
	densityMax      = 1.0
)

// NewRandomO2M builds an O2M over elementCount elements and nodeCount
// nodes by an independent Bernoulli trial at probability density for
// every (element, node) pair: element e gets node n in its row iff the
// trial for (e,n) succeeds. Trials run in stable row-major order
// (element asc, then node asc), so two calls with the same seed produce
// identical adjacency.
//
// With no seed, a process-seeded source is used and results are not
// reproducible. Passing a seed freezes the trial stream.
//
// Returns ErrTooFewElements if elementCount < 1, ErrNegativeNodeCount if
// nodeCount < 0, or ErrInvalidDensity if density is outside [0,1].
// Complexity: O(elementCount * nodeCount).
func NewRandomO2M(elementCount, nodeCount int, density float64, seed ...int64) (*o2m.O2M, error) {
	if elementCount < minElementCount {
		return nil, fmt.Errorf("NewRandomO2M: elementCount=%d: %w", elementCount, ErrTooFewElements)
	}
	if nodeCount < 0 {
		return nil, fmt.Errorf("NewRandomO2M: nodeCount=%d: %w", nodeCount, ErrNegativeNodeCount)
	}
	if density < densityMin || density > densityMax {
		return nil, fmt.Errorf("NewRandomO2M: density=%.6f: %w", density, ErrInvalidDensity)
	}

	rng := rand.New(rand.NewSource(rand.Int63()))
	if len(seed) > 0 {
		rng = rand.New(rand.NewSource(seed[0]))
	}

	rows := make([][]int, elementCount)
	for e := 0; e < elementCount; e++ {
		var row []int
		for n := 0; n < nodeCount; n++ {
			if density >= densityMax || rng.Float64() < density {
				row = append(row, n)
			}
		}
		rows[e] = row
	}

	return o2m.New(o2m.WithAdjacency(rows)), nil
}
