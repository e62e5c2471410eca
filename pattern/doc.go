// Package pattern defines Pattern, an immutable finite set of lattice
// cells with a cached bounding box and cell count, and MultiPattern, an
// ordered sequence of Patterns produced by decomposition algorithms.
//
// Pattern supports set algebra (union/difference/intersection), affine
// transforms (translate/reflect/rotate/enlarge), topology queries
// (edge/interior_hull), and domain-aware helpers (filter, perlin). A
// Builder mutates during construction; once returned from Build,
// a Pattern is never mutated in place — every other operation returns a
// fresh value.
package pattern
