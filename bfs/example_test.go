package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/colexnet/bfs"
	"github.com/katalvlaran/colexnet/core"
)

// ExampleBFS_hopCutoff counts the concepts within two hops of "tree".
func ExampleBFS_hopCutoff() {
	g := core.NewGraph()
	g.AddEdge("tree", "wood", 12, nil)
	g.AddEdge("wood", "forest", 9, nil)
	g.AddEdge("forest", "jungle", 3, nil)
	g.AddEdge("tree", "bark", 2, nil)

	res, err := bfs.BFS(g, "tree", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Reached())
	// Output:
	// [tree bark wood forest] 4
}
