package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/bnbtsp/matrix"
)

// ExampleNewDenseFromRows builds a cost table and reads one edge.
func ExampleNewDenseFromRows() {
	d, err := matrix.NewDenseFromRows([][]float64{
		{0, 10, 15},
		{10, 0, 35},
		{15, 35, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := d.At(1, 2)
	fmt.Println(d.Rows(), c)
	// Output:
	// 3 35
}
