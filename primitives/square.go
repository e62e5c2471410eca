package primitives

import "github.com/tessellate-go/forma/pattern"

// Square returns a filled w×h rectangle anchored at (0,0). h defaults to
// w when 0 is passed, so Square(n, 0) behaves as a filled n×n square.
// Complexity: O(w·h).
func Square(w, h int) (pattern.Pattern, error) {
	if h == 0 {
		h = w
	}
	if w <= 0 || h <= 0 {
		return pattern.Pattern{}, ErrInvalidArgument
	}
	b := pattern.NewBuilder()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			b.Insert(x, y)
		}
	}
	return b.Build(), nil
}
