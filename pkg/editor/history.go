package editor

import (
	"github.com/pagesmith/pagesmith/pkg/block"
)

// history holds the undo/redo stacks: past grows with every commit, future
// holds states that were undone. Snapshots are plain references to previous
// tree roots — cheap to keep because mutations share untouched subtrees.
type history struct {
	past   [][]*block.Node
	future [][]*block.Node
}

// record pushes the pre-mutation tree onto past and clears future. Any
// committed mutation invalidates the redo chain.
func (h *history) record(prev []*block.Node) {
	h.past = append(h.past, prev)
	h.future = nil
}

// undo pops the most recent past state and pushes current onto the front of
// future. The boolean is false when there is nothing to undo.
func (h *history) undo(current []*block.Node) ([]*block.Node, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	restored := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([][]*block.Node{current}, h.future...)
	return restored, true
}

// redo pops the front of future and pushes current onto past. The boolean is
// false when there is nothing to redo.
func (h *history) redo(current []*block.Node) ([]*block.Node, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	restored := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current)
	return restored, true
}

// reset empties both stacks. Called when a new document is loaded — undo
// never crosses document boundaries.
func (h *history) reset() {
	h.past = nil
	h.future = nil
}
