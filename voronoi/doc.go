// Package voronoi assigns every cell of a domain Pattern to its nearest
// seed under a cell.Measure, producing one segment per seed, and offers a
// Lloyd-style relaxation pass that recenters seeds on their segment
// centroids.
package voronoi
