package editor

import (
	"testing"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/block/ops"
)

// loadedEditor returns an editor holding a one-section page with two leaves,
// plus the nodes tests address by ID.
func loadedEditor() (*Editor, *block.Node, *block.Node, *block.Node) {
	heading := block.NewLeaf(block.KindHeading1)
	para := block.NewLeaf(block.KindParagraph)
	col := block.NewColumn(block.WidthFull)
	col.Children = []*block.Node{heading, para}
	row := block.NewRow()
	row.Columns = []*block.Node{col}
	section := block.NewSection("Home")
	section.Children = []*block.Node{row}

	e := New()
	e.Load([]*block.Node{section})
	return e, section, heading, para
}

func TestLoadRunsMigration(t *testing.T) {
	e := New()
	e.Load([]*block.Node{block.NewLeaf(block.KindParagraph)})

	tree := e.Tree()
	if err := block.Validate(tree); err != nil {
		t.Fatalf("loaded tree invalid: %v", err)
	}
	if len(tree) != 1 || !tree[0].IsSection() {
		t.Error("legacy leaves should be wrapped into a section on load")
	}
	if e.CanUndo() {
		t.Error("migration must not enter history")
	}
}

func TestLoadResetsHistoryAndSelection(t *testing.T) {
	e, section, _, _ := loadedEditor()
	e.Select(section.ID, false)
	e.Remove(section.ID)
	if !e.CanUndo() {
		t.Fatal("remove should be undoable")
	}

	e.Load([]*block.Node{block.NewSection("Fresh")})
	if e.CanUndo() || e.CanRedo() {
		t.Error("load should reset both history stacks")
	}
	if len(e.Selection()) != 0 {
		t.Error("load should clear the selection")
	}
}

func TestUndoRedoInverse(t *testing.T) {
	e, _, heading, _ := loadedEditor()
	before := e.Tree()

	e.UpdateText(heading.ID, "New headline")
	after := e.Tree()
	if block.Find(after, heading.ID).Text != "New headline" {
		t.Fatal("update did not apply")
	}

	e.Undo()
	if got := e.Tree(); !sameTree(got, before) {
		t.Error("undo should restore the exact prior snapshot")
	}
	if !e.CanRedo() {
		t.Fatal("undo should arm redo")
	}

	e.Redo()
	if got := e.Tree(); !sameTree(got, after) {
		t.Error("redo should restore the exact undone snapshot")
	}
}

func TestUndoDepth(t *testing.T) {
	e, section, _, _ := loadedEditor()
	initial := e.Tree()

	e.InsertRow(section.ID, block.WidthHalf, block.WidthHalf)
	e.InsertSection(ops.TemplateFooter)
	e.Remove(section.ID)

	e.Undo()
	e.Undo()
	e.Undo()
	if !sameTree(e.Tree(), initial) {
		t.Error("three undos should walk back to the initial snapshot")
	}
	if e.CanUndo() {
		t.Error("past stack should be exhausted")
	}

	// Undo past the stack bottom is a no-op.
	e.Undo()
	if !sameTree(e.Tree(), initial) {
		t.Error("undo on an empty past stack should not change the tree")
	}
}

func TestNewCommandClearsRedo(t *testing.T) {
	e, _, heading, _ := loadedEditor()

	e.UpdateText(heading.ID, "one")
	e.Undo()
	if !e.CanRedo() {
		t.Fatal("redo should be armed after undo")
	}

	e.UpdateText(heading.ID, "two")
	if e.CanRedo() {
		t.Error("a fresh commit should clear the redo stack")
	}
}

func TestNoopCommandRecordsNoHistory(t *testing.T) {
	e, _, _, _ := loadedEditor()

	e.Remove("missing")
	e.UpdateText("missing", "x")
	e.Reorder("missing", 1)
	if e.CanUndo() {
		t.Error("no-op commands must not enter history")
	}
}

func TestSelection(t *testing.T) {
	e, _, heading, para := loadedEditor()

	e.Select(heading.ID, false)
	if got := e.Selection(); len(got) != 1 || got[0] != heading.ID {
		t.Fatalf("selection = %v, want [heading]", got)
	}

	// Additive select appends; primary stays first.
	e.Select(para.ID, true)
	if got := e.Selection(); len(got) != 2 || got[0] != heading.ID || got[1] != para.ID {
		t.Fatalf("selection = %v, want [heading para]", got)
	}
	if id, ok := e.Primary(); !ok || id != heading.ID {
		t.Errorf("primary = %q, want the heading", id)
	}

	// Additive toggle removes an existing member.
	e.Select(heading.ID, true)
	if got := e.Selection(); len(got) != 1 || got[0] != para.ID {
		t.Fatalf("selection = %v, want [para]", got)
	}

	// Non-additive replaces.
	e.Select(heading.ID, false)
	if got := e.Selection(); len(got) != 1 || got[0] != heading.ID {
		t.Fatalf("selection = %v, want [heading]", got)
	}

	// Unknown IDs are ignored.
	e.Select("missing", true)
	if got := e.Selection(); len(got) != 1 {
		t.Errorf("selection = %v, unknown ID should be ignored", got)
	}
}

func TestSelectionPrunedOnRemove(t *testing.T) {
	e, section, heading, para := loadedEditor()

	e.Select(heading.ID, false)
	e.Select(para.ID, true)
	e.Remove(section.ID)
	if got := e.Selection(); len(got) != 0 {
		t.Errorf("selection = %v, removed descendants should be pruned", got)
	}
}

func TestSelectionPrunedOnUndo(t *testing.T) {
	e, _, _, _ := loadedEditor()

	e.InsertSection(ops.TemplateBlank)
	added := e.Tree()[1]
	e.Select(added.ID, false)

	e.Undo()
	if got := e.Selection(); len(got) != 0 {
		t.Errorf("selection = %v, undone node should be pruned", got)
	}
}

func TestApplyBulkStyleTargetsSelection(t *testing.T) {
	e, _, heading, para := loadedEditor()

	e.Select(heading.ID, false)
	e.Select(para.ID, true)
	e.ApplyBulkStyle("text-center")

	for _, id := range []string{heading.ID, para.ID} {
		n := block.Find(e.Tree(), id)
		if n.Responsive == nil || n.Responsive.Mobile != "text-center" {
			t.Errorf("node %s mobile slot not set", id)
		}
	}

	// Empty selection: nothing to style, nothing committed.
	e2, _, _, _ := loadedEditor()
	e2.ApplyBulkStyle("text-center")
	if e2.CanUndo() {
		t.Error("bulk style with no selection should be a no-op")
	}
}

func TestMoveCommand(t *testing.T) {
	e, _, heading, para := loadedEditor()

	e.Move(para.ID, heading.ID)
	col := e.Tree()[0].Children[0].Columns[0]
	if col.Children[0].ID != para.ID {
		t.Error("paragraph should now precede the heading")
	}

	e.Undo()
	col = e.Tree()[0].Children[0].Columns[0]
	if col.Children[0].ID != heading.ID {
		t.Error("undo should restore the original order")
	}
}

func TestDuplicateCommandKeepsTreeValid(t *testing.T) {
	e, section, _, _ := loadedEditor()
	e.Duplicate(section.ID)
	if err := block.Validate(e.Tree()); err != nil {
		t.Fatalf("tree invalid after duplicate: %v", err)
	}
	if len(e.Tree()) != 2 {
		t.Errorf("sections = %d, want 2", len(e.Tree()))
	}
}
