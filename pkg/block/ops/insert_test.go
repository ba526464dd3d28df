package ops

import (
	"testing"

	"github.com/pagesmith/pagesmith/pkg/block"
)

func TestInsertLeaf(t *testing.T) {
	f := buildPage()

	next := InsertLeaf(f.tree, f.colBC1.ID, block.KindParagraph)
	mustValidate(t, next)

	col := block.Find(next, f.colBC1.ID)
	if len(col.Children) != 1 {
		t.Fatalf("column children = %d, want 1", len(col.Children))
	}
	leaf := col.Children[0]
	if leaf.Kind != block.KindParagraph {
		t.Errorf("kind = %q, want paragraph", leaf.Kind)
	}
	if leaf.Text == "" {
		t.Error("inserted leaf should carry placeholder text")
	}
	// The original column is untouched.
	if len(f.colBC1.Children) != 0 {
		t.Error("insert mutated the input tree")
	}
}

func TestInsertLeafAppends(t *testing.T) {
	f := buildPage()
	next := InsertLeaf(f.tree, f.colAC.ID, block.KindImage)
	col := block.Find(next, f.colAC.ID)
	if len(col.Children) != 3 || col.Children[2].Kind != block.KindImage {
		t.Error("new leaf should append after existing children")
	}
}

func TestInsertLeafRejections(t *testing.T) {
	f := buildPage()

	tests := []struct {
		name   string
		target string
		kind   block.Kind
	}{
		{"NonLeafKind", f.colAC.ID, block.KindRow},
		{"UnknownKind", f.colAC.ID, block.Kind("video")},
		{"MissingColumn", "missing", block.KindParagraph},
		{"TargetNotColumn", f.rowA1.ID, block.KindParagraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if next := InsertLeaf(f.tree, tt.target, tt.kind); !sameRoot(next, f.tree) {
				t.Error("rejected insert should return the tree unchanged")
			}
		})
	}
}

func TestInsertRow(t *testing.T) {
	f := buildPage()

	next := InsertRow(f.tree, f.sectionA.ID, block.WidthThird, block.WidthTwoThirds)
	mustValidate(t, next)

	section := block.Find(next, f.sectionA.ID)
	if len(section.Children) != 2 {
		t.Fatalf("section rows = %d, want 2", len(section.Children))
	}
	row := section.Children[1]
	if len(row.Columns) != 2 {
		t.Fatalf("row columns = %d, want 2", len(row.Columns))
	}
	if row.Columns[0].Width != block.WidthThird || row.Columns[1].Width != block.WidthTwoThirds {
		t.Errorf("widths = [%s %s], want [1/3 2/3]", row.Columns[0].Width, row.Columns[1].Width)
	}
}

func TestInsertRowDefaultColumn(t *testing.T) {
	f := buildPage()
	next := InsertRow(f.tree, f.sectionB.ID)
	section := block.Find(next, f.sectionB.ID)
	row := section.Children[len(section.Children)-1]
	if len(row.Columns) != 1 || row.Columns[0].Width != block.WidthFull {
		t.Error("a row without widths should get one full-width column")
	}
}

func TestInsertRowRejections(t *testing.T) {
	f := buildPage()

	if next := InsertRow(f.tree, "missing"); !sameRoot(next, f.tree) {
		t.Error("unknown section should be a no-op")
	}
	if next := InsertRow(f.tree, f.rowA1.ID); !sameRoot(next, f.tree) {
		t.Error("a non-section target should be a no-op")
	}
	if next := InsertRow(f.tree, f.sectionA.ID, block.ColumnWidth("1/5")); !sameRoot(next, f.tree) {
		t.Error("an invalid width should reject the whole insert")
	}
}

func TestInsertSection(t *testing.T) {
	f := buildPage()

	next := InsertSection(f.tree, TemplateBlank)
	mustValidate(t, next)
	if len(next) != 3 {
		t.Fatalf("root sections = %d, want 3", len(next))
	}
	if !next[2].IsSection() {
		t.Errorf("appended node is a %s, want a section", next[2].Kind)
	}

	if got := InsertSection(f.tree, Template("sidebar")); !sameRoot(got, f.tree) {
		t.Error("unknown template should be a no-op")
	}
}

func TestInsertSectionIntoEmptyTree(t *testing.T) {
	next := InsertSection(nil, TemplateHero)
	mustValidate(t, next)
	if len(next) != 1 {
		t.Fatalf("root sections = %d, want 1", len(next))
	}
}
