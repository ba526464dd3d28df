// Package observability provides hooks for activity logging and metrics.
//
// The editor engine itself carries no logging or event channel; hosts that
// want an activity trail (edit counters, "document saved" records) register
// hooks at startup. Defaults are no-ops, so libraries can emit events
// unconditionally without pulling in any observability backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditorHooks(&myEditorHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Editor().OnCommit("move", nodeCount)
//	observability.Store().OnSave(ctx, key, size, err)
package observability

import (
	"context"
	"sync"
)

// EditorHooks receives events from editing sessions. Editor commands are
// synchronous and context-free, so these hooks are too.
type EditorHooks interface {
	// OnCommit records a committed mutation: the operation name and the
	// node count of the new tree. No-op commands never reach this hook.
	OnCommit(op string, nodeCount int)

	// OnUndo records an undo, with the resulting stack depths.
	OnUndo(pastDepth, futureDepth int)

	// OnRedo records a redo, with the resulting stack depths.
	OnRedo(pastDepth, futureDepth int)
}

// StoreHooks receives events from document store operations. The key is the
// store's own "owner/kind" form.
type StoreHooks interface {
	// OnLoad records a document load. size is the payload byte count.
	OnLoad(ctx context.Context, key string, size int, err error)

	// OnSave records a document save.
	OnSave(ctx context.Context, key string, size int, err error)

	// OnDelete records a document deletion.
	OnDelete(ctx context.Context, key string, err error)
}

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnCommit(string, int) {}
func (NoopEditorHooks) OnUndo(int, int)      {}
func (NoopEditorHooks) OnRedo(int, int)      {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, int, error) {}
func (NoopStoreHooks) OnSave(context.Context, string, int, error) {}
func (NoopStoreHooks) OnDelete(context.Context, string, error)    {}

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	hooksMu     sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before any editing.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store use.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
	storeHooks = NoopStoreHooks{}
}
