// Package decomposition spatially decomposes Patterns: flood-fill
// connected components, enclosed-void detection, binary space
// partitioning, maximum inscribed axis-aligned rectangle, convex hull,
// and neighbourhood-category partitioning.
//
// What:
//   - ConnectedComponents / FloodFill split a pattern into its maximal
//     connected sub-patterns under a configurable Neighbourhood.
//   - EnclosedVoids finds pockets of absent cells fully surrounded by
//     the pattern.
//   - BSP recursively splits a pattern's bounding box into leaves no
//     larger than a configured size.
//   - MaxRectangle finds the largest axis-aligned all-present rectangle.
//   - ConvexHullPoints / ConvexHull compute the integer convex hull.
//   - NeighbourhoodCategories buckets cells by their categorisation.
//
// Complexity: ConnectedComponents and EnclosedVoids are O(bbox area × d);
// MaxRectangle is O(W·H); ConvexHullPoints is O(n log n); BSP makes
// O(size / maxSize) splits, and each step rescans every cell of the input
// pattern to count and extract its box.
package decomposition
