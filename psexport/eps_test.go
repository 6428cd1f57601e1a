package psexport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlrel/o2m"
	"github.com/katalvlaran/lvlrel/psexport"
)

func TestToEpsString_HeaderAndFooter(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{0, 1}}))
	out := psexport.ToEpsString(a)

	assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n"))
	assert.Contains(t, out, "%%BoundingBox:")
	assert.True(t, strings.HasSuffix(out, "%%EOF\n"))
}

func TestToEpsString_OneLinePerAdjacencyEntry(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{0, 1}, {1}}))
	out := psexport.ToEpsString(a)

	assert.Equal(t, 3, strings.Count(out, "lineto stroke"))
}

func TestToEpsString_OneDotPerElementAndNode(t *testing.T) {
	a := o2m.New(o2m.WithAdjacency([][]int{{0}, {1}, {2}}))
	out := psexport.ToEpsString(a)

	// 3 elements + 3 nodes = 6 dots, one "arc fill" each.
	assert.Equal(t, 6, strings.Count(out, "arc fill"))
}

func TestToEpsString_EmptyRelation(t *testing.T) {
	a := o2m.New()
	out := psexport.ToEpsString(a)

	assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n"))
	assert.Equal(t, 0, strings.Count(out, "lineto stroke"))
}

func TestToEpsString_OutOfRangeNodeSkipped(t *testing.T) {
	// A negative node id lies outside [0, MaxNode()]; ToEpsString must
	// skip it without panicking and draw only the in-range entry.
	a := o2m.New(o2m.WithAdjacency([][]int{{0, -1}}))
	out := psexport.ToEpsString(a)
	assert.Equal(t, 1, strings.Count(out, "lineto stroke"))
}
