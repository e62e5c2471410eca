package pattern_test

import (
	"fmt"

	"github.com/tessellate-go/forma/pattern"
)

// ExamplePattern_Union demonstrates combining two adjacent, disjoint shapes.
func ExamplePattern_Union() {
	a := pattern.FromMatrix([][]int{
		{1, 1},
		{0, 0},
	})
	b := pattern.FromMatrix([][]int{
		{0, 0},
		{1, 1},
	})

	u := a.Union(b)
	fmt.Println("size:", u.Size())
	// Output:
	// size: 4
}
