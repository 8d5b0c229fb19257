package euler_test

import (
	"fmt"

	"github.com/cetrei/relationutils/euler"
	"github.com/cetrei/relationutils/graph"
)

// ExampleEulerPath traces the open house: five rooms, every doorway
// crossed exactly once.
func ExampleEulerPath() {
	g := graph.NewGraph()
	for _, e := range [][2]string{
		{"1", "2"}, {"1", "3"}, {"2", "3"}, {"2", "4"}, {"3", "4"},
	} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	start, end, _ := euler.Endpoints(g)
	path, _ := euler.EulerPath(g)
	fmt.Printf("walk %s to %s: %v\n", start, end, path)
	// Output:
	// walk 2 to 3: [2 1 3 2 4 3]
}
