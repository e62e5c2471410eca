// Package forma is a small toolkit for building and analysing finite
// patterns of cells on the unbounded 2D integer lattice.
//
// A Pattern (see the pattern subpackage) is an immutable finite set of
// cell.Cell values. Every other package operates on Patterns:
//
//	cell/           — the Cell value type and distance measures
//	neighbourhood/  — named offset sets (von Neumann, Moore, knight, ...)
//	pattern/        — the Pattern and MultiPattern types, set algebra,
//	                  affine transforms, topology, and Perlin bucketing
//	primitives/     — square, circle, line, and quadratic Bezier rasterisers
//	automata/       — conjunctive birth/survival cellular automaton rules
//	decomposition/  — flood fill, connected components, enclosed voids,
//	                  BSP, max rectangle, convex hull, neighbourhood
//	                  categorisation, and stable component labelling
//	sampling/       — uniform, Poisson-disc, and Mitchell best-candidate
//	                  point sampling over a Pattern domain
//	voronoi/        — nearest-seed tessellation and Lloyd relaxation
//	raycast/        — Bresenham ray casting and 360-degree sweeps
//
// forma itself exports nothing beyond this documentation; import the
// subpackage you need.
//
//	go get github.com/tessellate-go/forma
package forma
