// Package bintree node type and construction helpers.
package bintree

import "cmp"

// Node is a binary tree node holding a value and exclusive ownership of
// its children. A nil *Node is the empty tree.
type Node[T any] struct {
	// Value is the payload stored at this node.
	Value T

	// Left and Right are the child subtrees; nil means absent.
	Left, Right *Node[T]
}

// NewNode returns a leaf holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// InsertBST inserts v into the binary search tree rooted at root and
// returns the (possibly new) root. Duplicates go to the right subtree, so
// repeated insertion keeps an in-order walk non-decreasing.
func InsertBST[T cmp.Ordered](root *Node[T], v T) *Node[T] {
	if root == nil {
		return NewNode(v)
	}
	cur := root
	for {
		if v < cur.Value {
			if cur.Left == nil {
				cur.Left = NewNode(v)

				return root
			}
			cur = cur.Left
		} else {
			if cur.Right == nil {
				cur.Right = NewNode(v)

				return root
			}
			cur = cur.Right
		}
	}
}
