package decomposition

import (
	"github.com/tessellate-go/forma/pattern"
)

// MaxRectangle finds the largest axis-aligned all-present sub-rectangle
// of p. It builds, per row, a histogram of consecutive filled rows above
// each column, then runs the O(W) largest-rectangle-in-histogram stack
// algorithm per row, tracking the global best. Overall O(W·H). Ties are
// broken by (smallest y, then smallest x). Returns ErrEmptyPattern for
// the empty pattern.
func MaxRectangle(p pattern.Pattern) (pattern.Pattern, error) {
	min, max, ok := p.BBox()
	if !ok {
		return pattern.Pattern{}, ErrEmptyPattern
	}

	width := max.X - min.X + 1
	heights := make([]int, width)

	var bestArea, bestX0, bestY0, bestX1, bestY1 int
	bestArea = -1

	for y := min.Y; y <= max.Y; y++ {
		for x := 0; x < width; x++ {
			if p.HasCell(min.X+x, y) {
				heights[x]++
			} else {
				heights[x] = 0
			}
		}

		area, x0, x1, h := largestRectangleInHistogram(heights)
		if area > bestArea {
			bestArea = area
			bestX0, bestX1 = x0, x1
			bestY1 = y
			bestY0 = y - h + 1
		}
	}

	if bestArea <= 0 {
		return pattern.Pattern{}, ErrEmptyPattern
	}

	b := pattern.NewBuilder()
	for x := min.X + bestX0; x <= min.X+bestX1; x++ {
		for y := bestY0; y <= bestY1; y++ {
			b.Insert(x, y)
		}
	}
	return b.Build(), nil
}

// largestRectangleInHistogram returns the area, the inclusive [x0, x1]
// column range, and the height of the largest rectangle in heights,
// using the standard monotonic-stack algorithm.
func largestRectangleInHistogram(heights []int) (area, x0, x1, height int) {
	type frame struct{ start, h int }
	var stack []frame
	bestArea := -1

	// flush pops every frame taller than heights[atIndex] and returns the
	// leftmost start among them, where a frame of the new height begins.
	flush := func(atIndex int) int {
		leftmost := atIndex
		for len(stack) > 0 && stack[len(stack)-1].h > heightAt(heights, atIndex) {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			start := top.start
			leftmost = start
			w := atIndex - start
			a := w * top.h
			if a > bestArea {
				bestArea = a
				x0, x1, height = start, atIndex-1, top.h
			}
		}
		return leftmost
	}

	for i := 0; i <= len(heights); i++ {
		h := heightAt(heights, i)
		start := flush(i)
		if i < len(heights) {
			if len(stack) > 0 && stack[len(stack)-1].h == h {
				start = stack[len(stack)-1].start
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, frame{start: start, h: h})
		}
	}
	return bestArea, x0, x1, height
}

func heightAt(heights []int, i int) int {
	if i >= len(heights) {
		return 0
	}
	return heights[i]
}
