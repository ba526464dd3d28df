package cli

import (
	"fmt"
	"strings"

	"github.com/pagesmith/pagesmith/pkg/block"
)

// outlineItem is one visible line of a document outline: a node, its depth,
// and its position in the tree.
type outlineItem struct {
	node  *block.Node
	depth int
}

// flattenOutline lists every node of the tree in document order with depths,
// for rendering as an indented outline.
func flattenOutline(tree []*block.Node) []outlineItem {
	var items []outlineItem
	var walk func(n *block.Node, depth int)
	walk = func(n *block.Node, depth int) {
		items = append(items, outlineItem{node: n, depth: depth})
		for _, c := range n.Children {
			walk(c, depth+1)
		}
		for _, c := range n.Columns {
			walk(c, depth+1)
		}
	}
	for _, n := range tree {
		walk(n, 0)
	}
	return items
}

// outlineLabel renders a one-line description of a node.
func outlineLabel(n *block.Node) string {
	switch {
	case n.IsSection():
		title := n.Title
		if title == "" {
			title = "untitled"
		}
		return styleSection.Render(fmt.Sprintf("section %q", title))
	case n.IsRow():
		return styleRow.Render(fmt.Sprintf("row (%d columns)", len(n.Columns)))
	case n.IsColumn():
		return styleColumn.Render(fmt.Sprintf("column %s", n.Width))
	default:
		return styleLeaf.Render(string(n.Kind)) + " " + StyleDim.Render(excerpt(n.Text, 40))
	}
}

// excerpt returns the first line of s, truncated to max runes.
func excerpt(s string, max int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-1]) + "…"
	}
	return s
}
