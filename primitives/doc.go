// Package primitives rasterises basic shapes — squares, circles, lines
// and quadratic Béziers — into Patterns. Every rasteriser is domain-free:
// it returns a Pattern anchored at or passing through caller-supplied
// coordinates, with no notion of an enclosing canvas.
package primitives
