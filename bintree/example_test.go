package bintree_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bintree"
)

// ExampleInOrder shows the three traversal orders side by side.
func ExampleInOrder() {
	//       1
	//      / \
	//     2   3
	//    / \
	//   4   5
	root := bintree.NewNode(1)
	root.Left = bintree.NewNode(2)
	root.Right = bintree.NewNode(3)
	root.Left.Left = bintree.NewNode(4)
	root.Left.Right = bintree.NewNode(5)

	fmt.Println("in:  ", bintree.InOrder(root))
	fmt.Println("pre: ", bintree.PreOrder(root))
	fmt.Println("post:", bintree.PostOrder(root))
	// Output:
	// in:   [4 2 5 1 3]
	// pre:  [1 2 4 5 3]
	// post: [4 5 2 3 1]
}

// ExampleInsertBST sorts values by inserting into a BST and walking it
// in-order.
func ExampleInsertBST() {
	var root *bintree.Node[int]
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		root = bintree.InsertBST(root, v)
	}
	fmt.Println(bintree.InOrder(root))
	// Output:
	// [20 30 40 50 60 70 80]
}
