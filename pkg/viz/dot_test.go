package viz

import (
	"strings"
	"testing"

	"github.com/pagesmith/pagesmith/pkg/block"
)

func samplePage() []*block.Node {
	leaf := block.NewLeaf(block.KindHeading1)
	leaf.Text = "Welcome to the site"
	col := block.NewColumn(block.WidthHalf)
	col.Children = []*block.Node{leaf}
	row := block.NewRow()
	row.Columns = []*block.Node{col}
	section := block.NewSection("Hero")
	section.ClassName = "bg-slate-900"
	section.Children = []*block.Node{row}
	return []*block.Node{section}
}

func TestToDOT(t *testing.T) {
	tree := samplePage()
	dot := ToDOT(tree, Options{})

	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("malformed DOT output:\n%s", dot)
	}

	// One graph node per block node.
	block.Walk(tree, func(n *block.Node) {
		if !strings.Contains(dot, `"`+n.ID+`"`) {
			t.Errorf("DOT output missing node %s", n.ID)
		}
	})

	// One edge per containment link.
	section := tree[0]
	row := section.Children[0]
	col := row.Columns[0]
	leaf := col.Children[0]
	for _, edge := range []string{
		`"` + section.ID + `" -> "` + row.ID + `"`,
		`"` + row.ID + `" -> "` + col.ID + `"`,
		`"` + col.ID + `" -> "` + leaf.ID + `"`,
	} {
		if !strings.Contains(dot, edge) {
			t.Errorf("DOT output missing edge %s", edge)
		}
	}

	if !strings.Contains(dot, "section Hero") {
		t.Error("section label should carry the title")
	}
	if !strings.Contains(dot, "column 1/2") {
		t.Error("column label should carry the width")
	}
}

func TestToDOTDetailed(t *testing.T) {
	tree := samplePage()

	plain := ToDOT(tree, Options{})
	if strings.Contains(plain, "bg-slate-900") {
		t.Error("plain output should omit class names")
	}

	detailed := ToDOT(tree, Options{Detailed: true})
	if !strings.Contains(detailed, "class: bg-slate-900") {
		t.Error("detailed output should include class names")
	}
	if !strings.Contains(detailed, "Welcome to the site") {
		t.Error("detailed output should include leaf text")
	}
}

func TestToDOTEmptyTree(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if !strings.Contains(dot, "digraph G {") {
		t.Errorf("empty tree should still produce a valid graph:\n%s", dot)
	}
}
