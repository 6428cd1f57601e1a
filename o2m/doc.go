// Package o2m implements OneToMany (O2M): a sparse, row-indexed relation
// from element ids to node ids, together with the sorted-sequence set
// primitives and matrix-algebra operations defined over it.
//
// An O2M is a slice of rows indexed 0..Count-1 ("element ids"); each row
// is an ordered sequence of non-negative integers ("node ids") drawn from
// an implicit domain [0, MaxNode()]. Order within a row is preserved
// across all operations unless a method explicitly sorts it.
//
// O2M supports boolean-matrix algebra over relations (Multiply, Union,
// Intersect, Difference, SymmetricDifference), structural transforms
// (Transpose, CompressElements, PermuteElements, PermuteNodes), graph
// analysis over the node space (GetTopOrder, IsAcyclic), and round-trips
// to/from CSR and dense boolean matrix form.
//
// O2M is not internally synchronized; callers sharing an O2M across
// goroutines must serialize access themselves. See package m2m for a
// synchronized inverse view and package mm2m for an N×N grid of such
// relations with cascading deletion.
package o2m
