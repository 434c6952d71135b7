package optbst_test

import (
	"fmt"

	"github.com/npat-efault/treedp/optbst"
)

func Example() {
	s, err := optbst.New(3, []int{34, 8, 50})
	if err != nil {
		fmt.Println(err)
		return
	}
	count, _ := s.CountDistinctShapes(optbst.Recursive)
	fmt.Println("distinct trees:", count)
	for _, tree := range s.EnumerateShapes() {
		fmt.Println(s.ExportGraph(tree).ByKey())
	}
	cost, _ := s.OptimalCost(optbst.Iterative)
	fmt.Println("optimal cost:", cost)
	tree, _ := s.OptimalTree(optbst.Iterative)
	fmt.Println("optimal tree:", s.ExportGraph(tree).ByKey())
	// Output:
	// distinct trees: 5
	// map[0:[1] 1:[2]]
	// map[0:[2] 2:[1]]
	// map[1:[0 2]]
	// map[0:[1] 2:[0]]
	// map[1:[0] 2:[1]]
	// optimal cost: 142
	// optimal tree: map[0:[1] 2:[0]]
}
