// Package editor wires the pure tree operations into an editing session: one
// [Editor] per open document owning the current tree, the undo/redo stacks,
// the selection, and the two clipboards.
//
// Every command method resolves addresses, produces a new tree through
// package ops, and commits it: the pre-mutation tree is pushed onto the past
// stack, the future stack is cleared, and the selection is pruned against
// the new tree. Commands that change nothing — unresolvable targets,
// containment violations, boundary reorders — commit nothing, so undo never
// replays a no-op.
//
// The editor is single-threaded and synchronous: no command suspends,
// blocks, or performs I/O, and every mutation returns a brand-new tree
// value, so a renderer holding a previous snapshot never observes a torn
// state. Persistence is the host's problem; hand [Editor.Tree] to package
// store and [Editor.Load] the result back.
package editor
