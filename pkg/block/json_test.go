package block

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalRoundTrip(t *testing.T) {
	leaf := NewLeaf(KindImage)
	leaf.AltText = "a sunset"
	tree := page(leaf)
	tree[0].BackgroundImageURL = "https://example.com/bg.png"
	tree[0].Responsive = &ResponsiveClass{Mobile: "p-4", Desktop: "p-12"}

	data, err := Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if Count(got) != Count(tree) {
		t.Fatalf("round trip count = %d, want %d", Count(got), Count(tree))
	}
	s := got[0]
	if s.ID != tree[0].ID || s.Title != "Test" || s.BackgroundImageURL != tree[0].BackgroundImageURL {
		t.Errorf("section fields lost in round trip: %+v", s)
	}
	if s.Responsive == nil || s.Responsive.Mobile != "p-4" || s.Responsive.Desktop != "p-12" {
		t.Errorf("responsive triple lost in round trip: %+v", s.Responsive)
	}
	l := s.Children[0].Columns[0].Children[0]
	if l.Kind != KindImage || l.AltText != "a sunset" {
		t.Errorf("leaf fields lost in round trip: %+v", l)
	}

	// The canonical encoding is stable: re-marshaling reproduces the bytes.
	again, err := Marshal(got)
	if err != nil {
		t.Fatalf("Marshal again: %v", err)
	}
	if string(again) != string(data) {
		t.Error("re-marshaling produced different bytes")
	}
}

func TestMarshalEmptyTree(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"blocks": []`) {
		t.Errorf("empty tree should encode an empty blocks array, got %s", data)
	}
}

func TestUnmarshalRejectsUnknownFields(t *testing.T) {
	_, err := Unmarshal([]byte(`{"blocks": [], "version": 2}`))
	if err == nil {
		t.Error("unknown top-level field should be rejected")
	}

	_, err = Unmarshal([]byte(`{"blocks": [{"id": "a", "kind": "section", "color": "red"}]}`))
	if err == nil {
		t.Error("unknown node field should be rejected")
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	for _, input := range []string{"", "{", `[]`, `"blocks"`} {
		if _, err := Unmarshal([]byte(input)); err == nil {
			t.Errorf("Unmarshal(%q) should fail", input)
		}
	}
}

func TestWriteFileReadFile(t *testing.T) {
	tree := page(NewLeaf(KindHeading1), NewLeaf(KindParagraph))
	path := filepath.Join(t.TempDir(), "page.json")

	if err := WriteFile(tree, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if Count(got) != Count(tree) {
		t.Errorf("file round trip count = %d, want %d", Count(got), Count(tree))
	}
	if err := Validate(got); err != nil {
		t.Errorf("file round trip broke validation: %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("reading a missing file should fail")
	}
}
