package psexport

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlrel/o2m"
)

const (
	margin       = 40.0
	rowSpacing   = 24.0
	colSpacing   = 24.0
	dotRadius    = 3.0
	elementLabel = "e"
	nodeLabel    = "n"
)

// ToEpsString renders a as an Encapsulated PostScript document: one dot
// per element down the left column, one dot per node along the bottom
// row, and one straight line per (element, node) adjacency entry. The
// canvas is sized for a.Count() elements and a.MaxNode()+1 nodes; entries
// outside [0, a.MaxNode()] (negative node ids) are skipped and not drawn.
// Complexity: O(total row length).
func ToEpsString(a *o2m.O2M) string {
	rowCount := a.Count()
	nodeWidth := a.MaxNode() + 1

	height := margin*2 + float64(rowCount)*rowSpacing
	width := margin*2 + float64(nodeWidth)*colSpacing

	var b strings.Builder
	fmt.Fprintf(&b, "%%!PS-Adobe-3.0 EPSF-3.0\n")
	fmt.Fprintf(&b, "%%%%BoundingBox: 0 0 %d %d\n", int(width)+1, int(height)+1)
	fmt.Fprintf(&b, "%%%%Creator: lvlrel/psexport\n")
	fmt.Fprintf(&b, "%%%%EndComments\n")
	fmt.Fprintf(&b, "/Helvetica findfont 8 scalefont setfont\n")

	elementY := func(e int) float64 { return height - margin - float64(e)*rowSpacing }
	nodeX := func(n int) float64 { return margin + float64(n)*colSpacing }

	fmt.Fprintf(&b, "%% element column\n")
	for e := 0; e < rowCount; e++ {
		x, y := margin, elementY(e)
		fmt.Fprintf(&b, "newpath %g %g %g 0 360 arc fill\n", x, y, dotRadius)
		fmt.Fprintf(&b, "%g %g moveto (%s%d) show\n", x+dotRadius*2, y-dotRadius, elementLabel, e)
	}

	fmt.Fprintf(&b, "%% node row\n")
	for n := 0; n < nodeWidth; n++ {
		x, y := nodeX(n), margin
		fmt.Fprintf(&b, "newpath %g %g %g 0 360 arc fill\n", x, y, dotRadius)
		fmt.Fprintf(&b, "%g %g moveto (%s%d) show\n", x-dotRadius, y-dotRadius*3, nodeLabel, n)
	}

	fmt.Fprintf(&b, "%% element-node edges\n")
	fmt.Fprintf(&b, "0.4 setlinewidth\n")
	for e := 0; e < rowCount; e++ {
		row, _ := a.Row(e)
		ey := elementY(e)
		for _, n := range row {
			if n < 0 || n >= nodeWidth {
				continue
			}
			fmt.Fprintf(&b, "newpath %g %g moveto %g %g lineto stroke\n", margin, ey, nodeX(n), margin)
		}
	}

	fmt.Fprintf(&b, "showpage\n")
	fmt.Fprintf(&b, "%%%%EOF\n")

	return b.String()
}
