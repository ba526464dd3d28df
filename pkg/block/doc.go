// Package block defines the document tree at the heart of the pagesmith
// editor engine: a fixed four-shape hierarchy of sections, rows, columns,
// and content leaves, plus the addressing primitives every mutation is built
// on.
//
// # Structural grammar
//
// The tree obeys a closed containment grammar:
//
//	root    := section*
//	section := row*
//	row     := column+
//	column  := leaf*
//
// [CollectionKind.Accepts] encodes the grammar for insert/move checks and
// [Validate] enforces it (together with tree-wide identifier uniqueness)
// over whole documents.
//
// # Immutability
//
// Trees are persistent values: [WithCollection] returns a new tree with one
// collection replaced and every ancestor up to the root rebuilt, sharing
// untouched subtrees by pointer. Holding onto an old tree version is always
// safe — history snapshots in package editor are plain references to
// previous roots.
//
// # Addressing
//
// [Find] resolves a node by ID anywhere in the tree; [Locate] additionally
// returns its [Location] — which collection holds it, under which parent, at
// which index. An absent ID is reported via the ok boolean, and callers
// degrade to a no-op rather than an error: a target deleted earlier in the
// same command batch is simply skipped.
//
// # Persistence
//
// [Document] is the storage shape ({"blocks": [...]}), with [Marshal],
// [Unmarshal], [Read], [Write], and file variants mirroring each other.
// [Migrate] upgrades legacy flat leaf lists into the canonical hierarchy at
// load time.
package block
