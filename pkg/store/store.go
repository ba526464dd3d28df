package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/observability"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned by [Store.Load] when no document exists for
	// the key.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidKey is returned when a key has an empty owner or kind, or
	// when either part contains the key separator.
	ErrInvalidKey = errors.New("invalid document key")
)

// Key identifies one stored document: the owner (supplied by the host's
// identity provider) and the document kind (e.g. "landing-page").
type Key struct {
	Owner string
	Kind  string
}

// String returns the canonical owner/kind form used by backends and hooks.
func (k Key) String() string { return k.Owner + "/" + k.Kind }

// Validate checks that both parts are non-empty and separator-free.
func (k Key) Validate() error {
	if k.Owner == "" || k.Kind == "" {
		return fmt.Errorf("%w: owner and kind must be non-empty", ErrInvalidKey)
	}
	if strings.ContainsAny(k.Owner, "/") || strings.ContainsAny(k.Kind, "/") {
		return fmt.Errorf("%w: owner and kind must not contain '/'", ErrInvalidKey)
	}
	return nil
}

// Backend is raw keyed byte storage for document payloads. Get reports a
// miss via the boolean, not an error. Implementations must be safe for
// concurrent use.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store persists document trees through a [Backend], owning the canonical
// JSON encoding so every backend round-trips the same bytes.
type Store struct {
	backend Backend
}

// New creates a store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads and decodes the document for the key. Returns [ErrNotFound]
// when no document exists.
func (s *Store) Load(ctx context.Context, key Key) ([]*block.Node, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	data, found, err := s.backend.Get(ctx, key.String())
	if err != nil {
		err = fmt.Errorf("load %s: %w", key, err)
		observability.Store().OnLoad(ctx, key.String(), 0, err)
		return nil, err
	}
	if !found {
		observability.Store().OnLoad(ctx, key.String(), 0, ErrNotFound)
		return nil, fmt.Errorf("load %s: %w", key, ErrNotFound)
	}
	tree, err := block.Unmarshal(data)
	if err != nil {
		err = fmt.Errorf("load %s: %w", key, err)
		observability.Store().OnLoad(ctx, key.String(), len(data), err)
		return nil, err
	}
	observability.Store().OnLoad(ctx, key.String(), len(data), nil)
	return tree, nil
}

// Save encodes and writes the document for the key.
func (s *Store) Save(ctx context.Context, key Key, tree []*block.Node) error {
	if err := key.Validate(); err != nil {
		return err
	}
	data, err := block.Marshal(tree)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key.String(), data); err != nil {
		err = fmt.Errorf("save %s: %w", key, err)
		observability.Store().OnSave(ctx, key.String(), len(data), err)
		return err
	}
	observability.Store().OnSave(ctx, key.String(), len(data), nil)
	return nil
}

// Delete removes the document for the key. Deleting an absent document is
// not an error.
func (s *Store) Delete(ctx context.Context, key Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	err := s.backend.Delete(ctx, key.String())
	if err != nil {
		err = fmt.Errorf("delete %s: %w", key, err)
	}
	observability.Store().OnDelete(ctx, key.String(), err)
	return err
}

// Close releases the backend's resources.
func (s *Store) Close() error {
	return s.backend.Close()
}
