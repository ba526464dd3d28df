package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// File is a file-based backend for CLI use. Each document is one JSON file
// at <base>/<owner>/<kind>.json.
type File struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFile creates a file-based backend rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/pagesmith/documents/
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "pagesmith", "documents")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create document dir: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

// path maps an owner/kind key onto the backing file. Key parts are
// separator-free by [Key.Validate], so the mapping cannot escape baseDir.
func (f *File) path(key string) string {
	owner, kind, _ := strings.Cut(key, "/")
	return filepath.Join(f.baseDir, owner, kind+".json")
}

// Get retrieves a payload.
func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read document file: %w", err)
	}
	return data, true, nil
}

// Set stores a payload, creating the owner directory as needed.
func (f *File) Set(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create owner dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write document file: %w", err)
	}
	return nil
}

// Delete removes a payload. Removing an absent key is not an error.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove document file: %w", err)
	}
	return nil
}

// Close is a no-op.
func (f *File) Close() error { return nil }
