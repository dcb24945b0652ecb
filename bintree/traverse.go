package bintree

// frame is one work-list entry: a node plus whether its children have
// already been expanded. expanded=true means the node itself is next.
type frame[T any] struct {
	node     *Node[T]
	expanded bool
}

// InOrder returns the values of the tree rooted at root in
// left-self-right order. A nil root yields an empty slice.
func InOrder[T any](root *Node[T]) []T {
	out := []T{}
	stack := []frame[T]{}
	cur := root
	for cur != nil || len(stack) > 0 {
		// Slide down the left spine, deferring each node.
		for cur != nil {
			stack = append(stack, frame[T]{node: cur})
			cur = cur.Left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, top.node.Value)
		cur = top.node.Right
	}

	return out
}

// PreOrder returns the values of the tree rooted at root in
// self-left-right order. A nil root yields an empty slice.
func PreOrder[T any](root *Node[T]) []T {
	out := []T{}
	if root == nil {
		return out
	}
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Value)
		// Right first so Left is processed first.
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}

	return out
}

// PostOrder returns the values of the tree rooted at root in
// left-right-self order. A nil root yields an empty slice.
func PostOrder[T any](root *Node[T]) []T {
	out := []T{}
	if root == nil {
		return out
	}
	stack := []frame[T]{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.expanded {
			out = append(out, top.node.Value)

			continue
		}
		// Re-queue self behind both children: children drain first.
		stack = append(stack, frame[T]{node: top.node, expanded: true})
		if top.node.Right != nil {
			stack = append(stack, frame[T]{node: top.node.Right})
		}
		if top.node.Left != nil {
			stack = append(stack, frame[T]{node: top.node.Left})
		}
	}

	return out
}
