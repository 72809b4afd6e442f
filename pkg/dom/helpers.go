package dom

import "fmt"

// Text creates a text node. The content is escaped on render.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *Node {
	return &Node{Kind: KindText, Text: fmt.Sprintf(format, args...)}
}

// Raw creates a raw HTML node. The content is NOT escaped on render;
// callers are responsible for sanitizing untrusted input.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element. Nil children
// are dropped.
func Fragment(children ...*Node) *Node {
	node := &Node{Kind: KindFragment}
	for _, child := range children {
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// Nothing returns nil, the absent node. Render skips nil nodes.
func Nothing() *Node {
	return nil
}

// If returns node when condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	nodes := make([]*Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(item, i))
	}
	return nodes
}
