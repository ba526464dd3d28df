package viz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pagesmith/pagesmith/pkg/block"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes class names and text excerpts in node labels.
	// When false, only the structural shape is shown.
	Detailed bool
}

// ToDOT converts a block tree to Graphviz DOT format. The resulting DOT
// string can be rendered using [RenderSVG] or [RenderPNG].
//
// Sections, rows, columns, and leaves each get a distinct fill color so the
// containment structure is readable at a glance.
func ToDOT(tree []*block.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges bytes.Buffer
	for _, n := range tree {
		writeNode(&buf, &edges, n, opts)
	}

	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(nodes, edges *bytes.Buffer, n *block.Node, opts Options) {
	label := fmtLabel(n, opts.Detailed)
	fmt.Fprintf(nodes, "  %q [label=%q, fillcolor=%q];\n", n.ID, label, fillColor(n))

	for _, c := range append(n.Children, n.Columns...) {
		fmt.Fprintf(edges, "  %q -> %q;\n", n.ID, c.ID)
		writeNode(nodes, edges, c, opts)
	}
}

func fmtLabel(n *block.Node, detailed bool) string {
	var head string
	switch {
	case n.IsSection():
		head = "section"
		if n.Title != "" {
			head += " " + n.Title
		}
	case n.IsRow():
		head = "row"
	case n.IsColumn():
		head = fmt.Sprintf("column %s", n.Width)
	default:
		head = string(n.Kind)
	}
	if !detailed {
		return head
	}

	var parts []string
	if n.ClassName != "" {
		parts = append(parts, "class: "+n.ClassName)
	}
	if n.IsLeaf() && n.Text != "" {
		text := n.Text
		if len(text) > 30 {
			text = text[:30] + "..."
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return head
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func fillColor(n *block.Node) string {
	switch {
	case n.IsSection():
		return "#bfdbfe"
	case n.IsRow():
		return "#bbf7d0"
	case n.IsColumn():
		return "#fef08a"
	default:
		return "white"
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
