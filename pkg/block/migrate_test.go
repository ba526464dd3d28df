package block

import "testing"

func TestMigrateFlatDocument(t *testing.T) {
	h := NewLeaf(KindHeading1)
	p := NewLeaf(KindParagraph)
	img := NewLeaf(KindImage)
	legacy := []*Node{h, p, img}

	got := Migrate(legacy)
	if err := Validate(got); err != nil {
		t.Fatalf("migrated tree invalid: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("root sections = %d, want 1", len(got))
	}

	section := got[0]
	if len(section.Children) != 1 {
		t.Fatalf("section rows = %d, want 1", len(section.Children))
	}
	row := section.Children[0]
	if len(row.Columns) != 1 {
		t.Fatalf("row columns = %d, want 1", len(row.Columns))
	}
	column := row.Columns[0]
	if column.Width != WidthFull {
		t.Errorf("column width = %q, want %q", column.Width, WidthFull)
	}

	// Leaf order and identity are preserved.
	if len(column.Children) != 3 {
		t.Fatalf("column leaves = %d, want 3", len(column.Children))
	}
	for i, want := range []*Node{h, p, img} {
		if column.Children[i] != want {
			t.Errorf("leaf %d = %v, want the original node", i, column.Children[i])
		}
	}
}

func TestMigrateLeavesNestedAlone(t *testing.T) {
	tree := page(NewLeaf(KindHeading1))
	got := Migrate(tree)
	if len(got) != 1 || got[0] != tree[0] {
		t.Error("a nested document should pass through untouched")
	}
}

func TestMigrateEmpty(t *testing.T) {
	if got := Migrate(nil); got != nil {
		t.Errorf("Migrate(nil) = %v, want nil", got)
	}
}

func TestMigrateMixedStructural(t *testing.T) {
	// Any structural node anywhere disables migration, even beside leaves.
	tree := []*Node{NewSection("s"), NewLeaf(KindParagraph)}
	got := Migrate(tree)
	if len(got) != 2 || got[0] != tree[0] || got[1] != tree[1] {
		t.Error("a tree containing a structural node should pass through untouched")
	}
}

func TestMigrateIdempotent(t *testing.T) {
	legacy := []*Node{NewLeaf(KindHeading1), NewLeaf(KindParagraph)}
	once := Migrate(legacy)
	twice := Migrate(once)
	if len(twice) != 1 || twice[0] != once[0] {
		t.Error("migrating twice should be a no-op the second time")
	}
}
