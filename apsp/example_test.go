package apsp_test

import (
	"fmt"

	"github.com/katalvlaran/cpkit/apsp"
)

// ExampleFloydWarshall shows the CLRS graph: negative edges, no negative cycle.
func ExampleFloydWarshall() {
	d, _ := apsp.NewDense(5)
	edges := [][3]int64{
		{0, 1, 3}, {0, 2, 8}, {0, 4, -4},
		{1, 3, 1}, {1, 4, 7},
		{2, 1, 4},
		{3, 0, 2}, {3, 2, -5},
		{4, 3, 6},
	}
	for _, e := range edges {
		_ = d.AddEdge(int(e[0]), int(e[1]), e[2])
	}

	if err := apsp.FloydWarshall(d); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(d)
	// Output:
	// [0, 1, -3, 2, -4]
	// [3, 0, -4, 1, -1]
	// [7, 4, 0, 5, 3]
	// [2, -1, -5, 0, -2]
	// [8, 5, 1, 6, 0]
}

// ExampleFloydWarshall_negativeCycle runs on a plain [][]int64.
// Node 3 is isolated from the cycle 0→1→2→0 (total weight -1).
func ExampleFloydWarshall_negativeCycle() {
	inf := apsp.Inf
	m := [][]int64{
		{0, 1, inf, inf},
		{inf, 0, -1, inf},
		{-1, inf, 0, inf},
		{inf, inf, inf, 0},
	}

	_ = apsp.FloydWarshall(apsp.Grid(m))
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Print(apsp.FormatDistance(v))
		}
		fmt.Println()
	}
	// Output:
	// -inf -inf -inf inf
	// -inf -inf -inf inf
	// -inf -inf -inf inf
	// inf inf inf 0
}
