package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/planegraph/matrix"
)

// ExampleTriangle builds a path 0–1–2 and prints its text artifact.
func ExampleTriangle() {
	m, _ := matrix.NewTriangleSized(3)
	_ = m.Set(0, 1, true)
	_ = m.Set(2, 1, true)

	fmt.Println(m.Has(1, 2), m.Has(0, 2))
	_, _ = m.WriteTo(os.Stdout)

	// Output:
	// true false
	// 3
	// 1
	// 0 1
}
