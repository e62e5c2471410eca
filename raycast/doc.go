// Package raycast traces Bresenham rays over a Pattern domain: a single
// point-to-point cast, and a 360-degree sweep that unions every
// successful ray cast at the perimeter of a bounding square.
package raycast
