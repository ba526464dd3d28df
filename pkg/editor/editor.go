package editor

import (
	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/block/ops"
	"github.com/pagesmith/pagesmith/pkg/observability"
)

// Editor is an editing session for one open document. It owns the current
// tree, the undo/redo history, the selection, and the clipboards; a host
// constructs one per open document and tears it down on close. The zero
// value is not usable — use [New].
//
// An Editor is not safe for concurrent use. Hosts serialize commands from
// their event handlers onto a single logical thread; trees handed out by
// [Editor.Tree] are immutable snapshots and may be read concurrently.
type Editor struct {
	current []*block.Node
	hist    history
	sel     selection

	clip      *block.Node            // node clipboard: deep copy, IDs refreshed at paste
	styleClip *block.ResponsiveClass // style clipboard: one breakpoint triple
}

// New creates an editor session with an empty document.
func New() *Editor {
	return &Editor{}
}

// Load installs a freshly loaded tree as the document, applying legacy
// migration, and resets history and selection. The clipboards survive loads
// so content can be carried across documents.
func (e *Editor) Load(tree []*block.Node) {
	e.current = block.Migrate(tree)
	e.hist.reset()
	e.sel = nil
}

// Tree returns the current tree snapshot. The snapshot is immutable: later
// commits install new trees instead of modifying it.
func (e *Editor) Tree() []*block.Node { return e.current }

// Selection returns the selected identifiers in selection order. The
// returned slice is the editor's own; treat it as read-only.
func (e *Editor) Selection() []string { return e.sel }

// Primary returns the primary selection — the first selected identifier.
func (e *Editor) Primary() (string, bool) { return e.sel.primary() }

// Select updates the selection. Non-additive replaces it with {id}; additive
// toggles id's membership (shift-click semantics), appending it as the last
// member when newly added. Selection changes are not commits: they are not
// undoable.
func (e *Editor) Select(id string, additive bool) {
	if block.Find(e.current, id) == nil {
		return
	}
	e.sel = e.sel.toggle(id, additive)
}

// ClearSelection empties the selection.
func (e *Editor) ClearSelection() { e.sel = nil }

// CanUndo reports whether an undo step is available.
func (e *Editor) CanUndo() bool { return len(e.hist.past) > 0 }

// CanRedo reports whether a redo step is available.
func (e *Editor) CanRedo() bool { return len(e.hist.future) > 0 }

// Undo restores the most recent past tree, pushing the pre-undo tree onto
// the redo stack. No-op on an empty past stack.
func (e *Editor) Undo() {
	restored, ok := e.hist.undo(e.current)
	if !ok {
		return
	}
	e.install(restored)
	observability.Editor().OnUndo(len(e.hist.past), len(e.hist.future))
}

// Redo restores the most recently undone tree. No-op on an empty future
// stack.
func (e *Editor) Redo() {
	restored, ok := e.hist.redo(e.current)
	if !ok {
		return
	}
	e.install(restored)
	observability.Editor().OnRedo(len(e.hist.past), len(e.hist.future))
}

// install swaps in a tree and prunes the selection against it.
func (e *Editor) install(tree []*block.Node) {
	e.current = tree
	e.sel = e.sel.prune(block.IDs(tree))
}

// commit records the pre-mutation tree and installs next. Commits nothing
// when the operation was a no-op, so history never accumulates identical
// snapshots. Reports whether a mutation actually happened.
func (e *Editor) commit(op string, next []*block.Node) bool {
	if sameTree(e.current, next) {
		return false
	}
	e.hist.record(e.current)
	e.install(next)
	observability.Editor().OnCommit(op, block.Count(next))
	return true
}

// sameTree reports whether two trees are the same value. Operations return
// their input unchanged on a no-op and a fresh root otherwise, so pointer
// identity over the root collection is sufficient.
func sameTree(a, b []*block.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// InsertLeaf appends a new content leaf of the given kind to a column.
func (e *Editor) InsertLeaf(columnID string, kind block.Kind) {
	e.commit("insertLeaf", ops.InsertLeaf(e.current, columnID, kind))
}

// InsertRow appends a row with one column per width to a section.
func (e *Editor) InsertRow(sectionID string, widths ...block.ColumnWidth) {
	e.commit("insertRow", ops.InsertRow(e.current, sectionID, widths...))
}

// InsertSection appends a template-built section at the root.
func (e *Editor) InsertSection(template ops.Template) {
	e.commit("insertSection", ops.InsertSection(e.current, template))
}

// Remove deletes a node and its subtree. The identifier — and those of its
// descendants — are pruned from the selection.
func (e *Editor) Remove(id string) {
	e.commit("remove", ops.Remove(e.current, id))
}

// Duplicate deep-clones a node with fresh identifiers and inserts the clone
// immediately after the original.
func (e *Editor) Duplicate(id string) {
	e.commit("duplicate", ops.Duplicate(e.current, id))
}

// Move relocates source into target's collection at target's slot, subject
// to the containment grammar.
func (e *Editor) Move(sourceID, targetID string) {
	e.commit("move", ops.Move(e.current, sourceID, targetID))
}

// DropInto relocates source to an explicit location and index, for drops
// onto empty-container drop-zones.
func (e *Editor) DropInto(sourceID string, dest block.Location, index int) {
	e.commit("dropInto", ops.DropInto(e.current, sourceID, dest, index))
}

// Reorder swaps a node with its previous (-1) or next (+1) sibling.
func (e *Editor) Reorder(id string, direction int) {
	e.commit("reorder", ops.Reorder(e.current, id, direction))
}

// ApplyBulkStyle sets the mobile responsive-class slot on every currently
// selected node, skipping any identifier that no longer resolves.
func (e *Editor) ApplyBulkStyle(mobileClasses string) {
	e.commit("applyBulkStyle", ops.ApplyBulkStyle(e.current, e.sel, mobileClasses))
}

// UpdateText replaces a content leaf's text.
func (e *Editor) UpdateText(id, text string) {
	e.commit("updateText", ops.UpdateText(e.current, id, text))
}

// UpdateAltText replaces a content leaf's alternative text.
func (e *Editor) UpdateAltText(id, alt string) {
	e.commit("updateAltText", ops.UpdateAltText(e.current, id, alt))
}

// UpdateClassName replaces a node's legacy single-string class.
func (e *Editor) UpdateClassName(id, className string) {
	e.commit("updateClassName", ops.UpdateClassName(e.current, id, className))
}

// UpdateResponsive replaces a node's responsive class triple.
func (e *Editor) UpdateResponsive(id string, rc block.ResponsiveClass) {
	e.commit("updateResponsive", ops.UpdateResponsive(e.current, id, rc))
}

// SetColumnWidth changes a column's width.
func (e *Editor) SetColumnWidth(id string, width block.ColumnWidth) {
	e.commit("setColumnWidth", ops.SetColumnWidth(e.current, id, width))
}

// UpdateSection replaces a section's title, background image, and overlay.
func (e *Editor) UpdateSection(id string, attrs ops.SectionAttrs) {
	e.commit("updateSection", ops.UpdateSection(e.current, id, attrs))
}
