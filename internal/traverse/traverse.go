// Package traverse builds synthetic n-ary trees and searches them by
// node value. The benchmark uses it as a pointer-chasing counterpoint
// to the file-scanning strategies.
package traverse

import "fmt"

// Node is one vertex of the generated tree.
type Node struct {
	Value    string
	Children []*Node
}

// NodeValue returns the value assigned to the index-th node of a level.
// Indexes run left to right within the level, starting at zero.
func NodeValue(level, index int) string {
	return fmt.Sprintf("node-%d-%d", level, index)
}

// Build returns a complete tree with the given number of levels, every
// interior node having width children. depth 10 / width 3 yields the
// 29,524 nodes the suite measures against. Returns nil when either
// dimension is less than one.
func Build(depth, width int) *Node {
	if depth < 1 || width < 1 {
		return nil
	}
	root := &Node{Value: NodeValue(0, 0)}
	level := []*Node{root}
	for d := 1; d < depth; d++ {
		next := make([]*Node, 0, len(level)*width)
		for i, parent := range level {
			parent.Children = make([]*Node, width)
			for j := range width {
				child := &Node{Value: NodeValue(d, i*width+j)}
				parent.Children[j] = child
				next = append(next, child)
			}
		}
		level = next
	}
	return root
}

// DFS searches depth-first in preorder and returns the first node whose
// value matches, or nil.
func DFS(n *Node, value string) *Node {
	if n == nil {
		return nil
	}
	if n.Value == value {
		return n
	}
	for _, c := range n.Children {
		if found := DFS(c, value); found != nil {
			return found
		}
	}
	return nil
}

// BFS searches breadth-first, level by level, and returns the first
// node whose value matches, or nil.
func BFS(n *Node, value string) *Node {
	if n == nil {
		return nil
	}
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.Value == value {
			return cur
		}
		queue = append(queue, cur.Children...)
	}
	return nil
}

// Size returns the node count of a complete (depth, width) tree
// without building it.
func Size(depth, width int) int {
	if depth < 1 || width < 1 {
		return 0
	}
	if width == 1 {
		return depth
	}
	n := 1
	for range depth {
		n *= width
	}
	return (n - 1) / (width - 1)
}

// Count returns the number of nodes in the tree.
func Count(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}
