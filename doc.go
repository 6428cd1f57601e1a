// Package lvlrel implements typed multi-relational sparse graphs: a
// small tower of row-indexed integer relations, from the sorted-sequence
// set primitives up through a typed grid of cross-relations with
// cascading deletion.
//
// The tower is organized under five subpackages:
//
//	o2m/      — OneToMany: a sparse element→node relation, its
//	            sorted-sequence algebra, boolean-matrix operations, and
//	            CSR/dense interop.
//	m2m/      — ManyToMany: an O2M plus a lazily synchronized inverse
//	            and reciprocal position tables.
//	mm2m/     — TypedMatrix: a T×T grid of M2M cells modeling
//	            cross-type relations, with cascading mark-and-sweep
//	            deletion and type-level dependency analysis.
//	randrel/  — A Bernoulli-trial random O2M generator.
//	psexport/ — A PostScript (EPSF) debug exporter for O2M.
//
// Each relation type is not internally synchronized unless documented
// otherwise (m2m and mm2m guard every public method with a mutex);
// callers sharing an O2M across goroutines must serialize access
// themselves.
package lvlrel
