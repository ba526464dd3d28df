// Package ops implements the pure mutation operations of the pagesmith
// editor engine: insertion, removal, relocation, duplication, reordering,
// and bulk restyling of document tree nodes.
//
// Every operation takes the current tree and returns a new one; inputs are
// never mutated. Invalid commands — an identifier that no longer resolves, a
// relocation the containment grammar forbids, a reorder at a collection
// boundary — return the input tree unchanged. No operation panics or returns
// an error: a target deleted by an earlier command in the same batch is
// simply skipped, which lets hosts replay command streams without guarding
// each step.
//
// Operations rebuild only the ancestor chain of the touched collection (via
// [block.WithCollection]); everything else is shared with the input tree, so
// history snapshots are cheap and comparing trees by pointer identity tells
// whether an operation did anything.
package ops
