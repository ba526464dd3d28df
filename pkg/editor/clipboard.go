package editor

import (
	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/block/ops"
)

// CopyNode captures a structural deep copy of the primary selection on the
// node clipboard. Identifiers are preserved in the captured copy and
// refreshed at paste time instead, so repeated pastes of one capture never
// collide. Reports whether anything was captured.
func (e *Editor) CopyNode() bool {
	id, ok := e.sel.primary()
	if !ok {
		return false
	}
	n := block.Find(e.current, id)
	if n == nil {
		return false
	}
	e.clip = n.Clone()
	return true
}

// HasNodeClipboard reports whether the node clipboard holds a capture.
func (e *Editor) HasNodeClipboard() bool { return e.clip != nil }

// PasteNode clones the clipboard capture with fresh identifiers at every
// level and inserts it immediately after the primary selection, in the
// primary selection's own collection. No-op when the clipboard is empty, the
// primary selection is unresolved, or the destination collection does not
// accept the captured kind.
func (e *Editor) PasteNode() {
	if e.clip == nil {
		return
	}
	id, ok := e.sel.primary()
	if !ok {
		return
	}
	e.commit("pasteNode", ops.InsertAfter(e.current, id, e.clip.CloneFresh()))
}

// CopyStyle captures the primary selection's responsive class triple on the
// style clipboard. A node without a triple captures an empty one, so pasting
// can clear styles. Reports whether anything was captured.
func (e *Editor) CopyStyle() bool {
	id, ok := e.sel.primary()
	if !ok {
		return false
	}
	n := block.Find(e.current, id)
	if n == nil {
		return false
	}
	rc := block.ResponsiveClass{}
	if n.Responsive != nil {
		rc = *n.Responsive
	}
	e.styleClip = &rc
	return true
}

// HasStyleClipboard reports whether the style clipboard holds a triple.
func (e *Editor) HasStyleClipboard() bool { return e.styleClip != nil }

// PasteStyle applies the captured responsive triple to the primary
// selection, replacing its presentation only. No-op when the clipboard is
// empty or the primary selection is unresolved.
func (e *Editor) PasteStyle() {
	if e.styleClip == nil {
		return
	}
	id, ok := e.sel.primary()
	if !ok {
		return
	}
	e.commit("pasteStyle", ops.UpdateResponsive(e.current, id, *e.styleClip))
}
