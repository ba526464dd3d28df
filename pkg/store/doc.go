// Package store persists pagesmith documents, keyed by owner and document
// kind.
//
// The engine never touches storage; hosts load a tree from a [Store], hand
// it to an editor session, and save the session's tree back. A Store wraps a
// [Backend] — the raw byte-level keyed storage — and owns the canonical JSON
// encoding, so every backend round-trips the exact persisted document shape.
//
// # Backends
//
//   - [Memory]: in-process map, for tests and ephemeral hosts
//   - [File]: one JSON file per owner/kind under a base directory, for CLI use
//   - [Redis]: redis-backed, for serving multi-instance hosts
//   - [Mongo]: mongo-backed, one record per owner/kind
//
// # Usage
//
//	backend, err := store.NewFile("")     // ~/.config/pagesmith/documents/
//	if err != nil {
//	    return err
//	}
//	s := store.New(backend)
//	defer s.Close()
//
//	tree, err := s.Load(ctx, store.Key{Owner: "ada", Kind: "landing-page"})
//	if errors.Is(err, store.ErrNotFound) {
//	    tree = nil // start from an empty document
//	}
package store
