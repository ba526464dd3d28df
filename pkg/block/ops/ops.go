package ops

import (
	"github.com/pagesmith/pagesmith/pkg/block"
)

// insertAt returns a copy of coll with n inserted at index i.
// i is clamped into [0, len(coll)]; a negative i appends.
func insertAt(coll []*block.Node, i int, n *block.Node) []*block.Node {
	if i < 0 || i > len(coll) {
		i = len(coll)
	}
	out := make([]*block.Node, 0, len(coll)+1)
	out = append(out, coll[:i]...)
	out = append(out, n)
	out = append(out, coll[i:]...)
	return out
}

// removeAt returns a copy of coll without index i.
func removeAt(coll []*block.Node, i int) []*block.Node {
	out := make([]*block.Node, 0, len(coll)-1)
	out = append(out, coll[:i]...)
	out = append(out, coll[i+1:]...)
	return out
}

// replaceAt returns a copy of coll with index i swapped for n.
func replaceAt(coll []*block.Node, i int, n *block.Node) []*block.Node {
	out := make([]*block.Node, len(coll))
	copy(out, coll)
	out[i] = n
	return out
}

// patch replaces the node with the given ID by a shallow copy that fn has
// edited, rebuilding the ancestor chain. The copy's Responsive pointer is
// unshared before fn runs so edits never leak into older tree snapshots. fn
// must only touch scalar fields and Responsive, never Children or Columns.
// No-op if the ID does not resolve.
func patch(tree []*block.Node, id string, fn func(n *block.Node)) []*block.Node {
	loc, ok := block.Locate(tree, id)
	if !ok {
		return tree
	}
	coll := block.CollectionAt(tree, loc)
	c := *coll[loc.Index]
	if c.Responsive != nil {
		rc := *c.Responsive
		c.Responsive = &rc
	}
	fn(&c)
	return block.WithCollection(tree, loc, replaceAt(coll, loc.Index, &c))
}

// Remove deletes the node with the given ID and its entire subtree from
// wherever it lives. Pruning the ID from any live selection is the caller's
// responsibility. No-op if the ID does not resolve.
func Remove(tree []*block.Node, id string) []*block.Node {
	loc, ok := block.Locate(tree, id)
	if !ok {
		return tree
	}
	coll := block.CollectionAt(tree, loc)
	return block.WithCollection(tree, loc, removeAt(coll, loc.Index))
}

// Duplicate deep-clones the node with the given ID — fresh identifiers at
// every level — and inserts the clone immediately after the original in the
// same collection. No-op if the ID does not resolve.
func Duplicate(tree []*block.Node, id string) []*block.Node {
	loc, ok := block.Locate(tree, id)
	if !ok {
		return tree
	}
	coll := block.CollectionAt(tree, loc)
	clone := coll[loc.Index].CloneFresh()
	return block.WithCollection(tree, loc, insertAt(coll, loc.Index+1, clone))
}

// InsertAfter inserts n immediately after the node with the given ID, in
// that node's own collection. The collection must accept n's kind, otherwise
// no-op. Shared by duplicate-like flows and clipboard paste. No-op if the ID
// does not resolve.
func InsertAfter(tree []*block.Node, id string, n *block.Node) []*block.Node {
	if n == nil {
		return tree
	}
	loc, ok := block.Locate(tree, id)
	if !ok || !loc.Collection.Accepts(n.Kind) {
		return tree
	}
	coll := block.CollectionAt(tree, loc)
	return block.WithCollection(tree, loc, insertAt(coll, loc.Index+1, n))
}

// Move relocates the source node into the target node's collection, placing
// it in the target's slot (the target shifts forward). The move is rejected
// — whole tree unchanged — when either ID is unresolvable or the target's
// collection does not accept the source's kind.
//
// For a reorder within one collection the source is removed first, so a
// target that sat after the source has already shifted down by one when the
// insertion index is resolved; re-locating the target after removal applies
// that correction uniformly to forward and backward moves, and the moved
// node always lands adjacent to the intended neighbor.
func Move(tree []*block.Node, sourceID, targetID string) []*block.Node {
	if sourceID == targetID {
		return tree
	}
	srcLoc, ok := block.Locate(tree, sourceID)
	if !ok {
		return tree
	}
	tgtLoc, ok := block.Locate(tree, targetID)
	if !ok {
		return tree
	}
	src := block.CollectionAt(tree, srcLoc)[srcLoc.Index]
	if !tgtLoc.Collection.Accepts(src.Kind) {
		return tree
	}

	removed := block.WithCollection(tree, srcLoc, removeAt(block.CollectionAt(tree, srcLoc), srcLoc.Index))

	// The grammar is acyclic (sections never nest under rows, rows never
	// under columns), so the target cannot live inside the removed subtree.
	newTgt, ok := block.Locate(removed, targetID)
	if !ok {
		return tree
	}
	coll := block.CollectionAt(removed, newTgt)
	return block.WithCollection(removed, newTgt, insertAt(coll, newTgt.Index, src))
}

// DropInto relocates the source node to an explicitly addressed collection,
// at the given index. A negative index appends; an out-of-range index clamps
// into [0, length]. Used for drop-zones over empty containers, where there
// is no sibling to target. The drop is rejected — whole tree unchanged —
// when the source is unresolvable, the destination parent is gone, or the
// destination collection does not accept the source's kind.
func DropInto(tree []*block.Node, sourceID string, dest block.Location, index int) []*block.Node {
	srcLoc, ok := block.Locate(tree, sourceID)
	if !ok {
		return tree
	}
	src := block.CollectionAt(tree, srcLoc)[srcLoc.Index]
	if !dest.Collection.Accepts(src.Kind) {
		return tree
	}
	if !destParentOK(tree, dest) {
		return tree
	}

	removed := block.WithCollection(tree, srcLoc, removeAt(block.CollectionAt(tree, srcLoc), srcLoc.Index))
	coll := block.CollectionAt(removed, dest)
	if index < 0 || index > len(coll) {
		index = len(coll)
	}
	return block.WithCollection(removed, dest, insertAt(coll, index, src))
}

// destParentOK reports whether the destination parent exists and has the
// shape its collection kind implies.
func destParentOK(tree []*block.Node, dest block.Location) bool {
	if dest.Collection == block.CollectionRoot {
		return true
	}
	parent := block.Find(tree, dest.ParentID)
	if parent == nil {
		return false
	}
	switch dest.Collection {
	case block.CollectionSectionChildren:
		return parent.IsSection()
	case block.CollectionRowColumns:
		return parent.IsRow()
	case block.CollectionColumnChildren:
		return parent.IsColumn()
	default:
		return false
	}
}

// Reorder swaps the node with its immediate previous (direction -1) or next
// (direction +1) sibling in its own collection. No-op at a collection
// boundary, for any other direction value, or when the ID does not resolve.
func Reorder(tree []*block.Node, id string, direction int) []*block.Node {
	if direction != -1 && direction != 1 {
		return tree
	}
	loc, ok := block.Locate(tree, id)
	if !ok {
		return tree
	}
	coll := block.CollectionAt(tree, loc)
	j := loc.Index + direction
	if j < 0 || j >= len(coll) {
		return tree
	}
	out := make([]*block.Node, len(coll))
	copy(out, coll)
	out[loc.Index], out[j] = out[j], out[loc.Index]
	return block.WithCollection(tree, loc, out)
}

// ApplyBulkStyle sets the mobile responsive-class slot on every resolvable
// ID in the batch, leaving tablet and desktop slots untouched. IDs that fail
// to resolve are skipped without aborting the rest of the batch.
func ApplyBulkStyle(tree []*block.Node, ids []string, mobileClasses string) []*block.Node {
	for _, id := range ids {
		tree = patch(tree, id, func(n *block.Node) {
			if n.Responsive == nil {
				n.Responsive = &block.ResponsiveClass{}
			}
			n.Responsive.Mobile = mobileClasses
		})
	}
	return tree
}
