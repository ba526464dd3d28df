package block

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the persisted document shape: the ordered sequence of root
// sections, wrapped for storage. It is the sole artifact exchanged with a
// host's storage collaborator, and round-tripping through JSON reproduces an
// isomorphic tree — identifiers, ordering, and all fields preserved.
type Document struct {
	Blocks []*Node `json:"blocks"`
}

// Marshal encodes a tree as an indented JSON document.
func Marshal(tree []*Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(tree, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a JSON document into a tree. The decode is strict about
// shape (unknown fields are rejected) so malformed payloads surface at the
// loading boundary instead of corrupting the engine's model; callers that
// want best-effort loading should fall back to an empty tree on error.
func Unmarshal(data []byte) ([]*Node, error) {
	return Read(bytes.NewReader(data))
}

// Write encodes a tree as an indented JSON document to w.
func Write(tree []*Node, w io.Writer) error {
	doc := Document{Blocks: tree}
	if doc.Blocks == nil {
		doc.Blocks = []*Node{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// Read decodes a JSON document from r. Unknown fields are rejected.
func Read(r io.Reader) ([]*Node, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc.Blocks, nil
}

// WriteFile writes a tree to a JSON document file with 0644 permissions.
func WriteFile(tree []*Node, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(tree, f)
}

// ReadFile reads a JSON document file and returns the decoded tree.
func ReadFile(path string) ([]*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
