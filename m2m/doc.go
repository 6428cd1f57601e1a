// Package m2m implements ManyToMany (M2M): an o2m.O2M augmented with a
// synchronized inverse view (node→elements) and cached reciprocal
// position indices, exposing neighborhood and clique queries with
// coherent invalidation.
//
// M2M composes an o2m.O2M (the forward element→node relation) rather
// than embedding it, so that every public method — including those the
// embedded O2M would otherwise promote unguarded — goes through M2M's
// mutex and dirty-flag bookkeeping.
//
// Any mutation clears an internal "in sync" flag. Reads that need the
// inverse (GetElementsWithNodes, neighborhood queries, GetCliques,
// algebraic products that traverse both directions) synchronize first:
// rebuild the inverse via Transpose, then the elemeloc/nodeloc
// reciprocal-position tables. BeginBatch suppresses this automatic
// resync across a run of mutations; EndBatch resyncs once if dirty.
package m2m
