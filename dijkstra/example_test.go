package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/dijkstra"
)

// ExampleShortestPathTree routes across a small network where the obvious
// two-hop corridor loses to a longer chain of cheap links.
func ExampleShortestPathTree() {
	g := core.NewGraph()
	links := []struct {
		u, v string
		ms   float64
	}{
		{"A", "B", 1}, {"A", "D", 1}, {"B", "C", 1},
		{"C", "F", 10}, {"D", "E", 1}, {"E", "F", 1},
	}
	for _, l := range links {
		e, _ := g.AddEdge(l.u, l.v)
		e.SetProperty("ms", l.ms)
	}

	spt := dijkstra.New(
		dijkstra.Source("A"),
		dijkstra.WithLengthLabel("ms"),
	)
	_ = spt.Bind(g)
	if err := spt.Compute(); err != nil {
		fmt.Println("compute:", err)

		return
	}

	fmt.Printf("distance to F: %v\n", spt.DistanceTo("F"))

	// Walk the path backwards from the target.
	it := spt.PathTo("F")
	for {
		node, _, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(node)
	}

	// Output:
	// distance to F: 3
	// F
	// E
	// D
	// A
}
