// Package mm2m implements TypedMatrix (MM2M): a fixed T×T grid of m2m.M2M
// cells, where cell (i,j) models "elements of type i are made of nodes
// of type j", plus a cascading mark-and-sweep deletion protocol across
// types.
//
// When i == j, the diagonal cell carries the canonical self-list of
// entities of type i; its Count is the number of entities of that type.
// All T² cells exist for the lifetime of a TypedMatrix; type indices are
// validated on every call.
//
// MarkToErase flags a node for deletion and transitively marks every
// element, of any type, that references it (a DFS over cross-type
// relations via an explicit stack). Compress then renumbers every
// surviving id densely in one pass across all cells, so no dangling
// references remain.
//
// Type-level DAG analysis (AreTypesAcyclic, GetTypeTopOrder) is built on
// gonum.org/v1/gonum/graph/simple and graph/topo: the type graph has at
// most T nodes, so it is expressed directly against a graph.Directed
// rather than duplicating o2m's own (performance-oriented, larger-scale)
// topological sort.
package mm2m
