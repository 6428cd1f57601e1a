// Package psexport renders an O2M adjacency as a minimal PostScript
// (EPSF) document for visual debugging: elements laid out in a vertical
// column, nodes laid out in a horizontal row, and a straight line per
// (element, node) pair. The output has no correctness properties beyond
// being well-formed PostScript; it exists purely as a debugging aid.
package psexport
