package outline

import (
	"fmt"
	"strings"
)

// Node is a heading together with the headings nested beneath it.
type Node struct {
	Heading
	Children []*Node
}

// BuildTree nests headings by level. A heading becomes the child of the
// closest preceding heading with a lower level.
func BuildTree(headings []Heading) []*Node {
	if len(headings) == 0 {
		return nil
	}

	var stack []*Node
	var roots []*Node

	for _, h := range headings {
		node := &Node{Heading: h}

		// Pop stack until we find parent
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}

		stack = append(stack, node)
	}

	return roots
}

// FormatTOC renders nodes as an indented table of contents, one heading per
// line with its 1-based line number.
func FormatTOC(nodes []*Node, indent int) string {
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(strings.Repeat("  ", indent))
		fmt.Fprintf(&sb, "%s (line %d)\n", node.Title, node.Position+1)
		if len(node.Children) > 0 {
			sb.WriteString(FormatTOC(node.Children, indent+1))
		}
	}
	return sb.String()
}
