package digraph_test

import (
	"fmt"

	"github.com/gregorio-gerardi/circuitry/pkg/digraph"
)

func ExampleDigraph_basic() {
	// Edges create their endpoints; duplicates are no-ops.
	g := digraph.New[string]()
	g.AddEdge("app", "lib")
	g.AddEdge("lib", "core")
	g.AddEdge("app", "lib")

	fmt.Println("Vertices:", g.Len())
	fmt.Println("Edges:", g.EdgeCount())
	// Output:
	// Vertices: 3
	// Edges: 2
}

func ExampleDigraph_traversal() {
	g := digraph.New[string]()
	g.AddEdge("app", "auth")
	g.AddEdge("app", "cache")
	g.AddEdge("auth", "app") // circular dependency

	fmt.Println("Neighbors of app:", g.Neighbors("app"))
	fmt.Println("Sorted vertices:", g.Vertices())
	// Output:
	// Neighbors of app: [auth cache]
	// Sorted vertices: [app auth cache]
}

func ExampleDigraph_Min() {
	g := digraph.New[int]()
	g.AddEdge(4, 2)
	g.AddEdge(2, 7)

	min, _ := g.Min()
	fmt.Println("Smallest vertex:", min)
	// Output:
	// Smallest vertex: 2
}
