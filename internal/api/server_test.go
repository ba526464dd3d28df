package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pagesmith/pagesmith/pkg/block"
	"github.com/pagesmith/pagesmith/pkg/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := store.New(store.NewMemory())
	srv := NewServer(st, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url string, body []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func samplePayload(t *testing.T) []byte {
	t.Helper()
	leaf := block.NewLeaf(block.KindHeading1)
	col := block.NewColumn(block.WidthFull)
	col.Children = []*block.Node{leaf}
	row := block.NewRow()
	row.Columns = []*block.Node{col}
	section := block.NewSection("Home")
	section.Children = []*block.Node{row}

	data, err := block.Marshal([]*block.Node{section})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := do(t, http.MethodGet, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !bytes.Contains(body, []byte(`"ok"`)) {
		t.Errorf("body = %s, want status ok", body)
	}
}

func TestPutGetDeleteDocument(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"
	payload := samplePayload(t)

	resp, body := do(t, http.MethodPut, url, payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", resp.StatusCode, body)
	}

	resp, body = do(t, http.MethodGet, url, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d", resp.StatusCode)
	}
	tree, err := block.Unmarshal(body)
	if err != nil {
		t.Fatalf("returned document invalid: %v", err)
	}
	if len(tree) != 1 || tree[0].Title != "Home" {
		t.Errorf("document lost in round trip: %+v", tree)
	}

	resp, _ = do(t, http.MethodDelete, url, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", resp.StatusCode)
	}

	resp, body = do(t, http.MethodGet, url, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET after delete status = %d, want 404, body %s", resp.StatusCode, body)
	}
	var errResp errorBody
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("error body not JSON: %s", body)
	}
	if errResp.Error.Code == "" {
		t.Error("error body should carry a machine-readable code")
	}
}

func TestPutMigratesLegacyDocument(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"

	legacy := []byte(`{"blocks": [{"id": "l1", "kind": "paragraph", "text": "hi"}]}`)
	resp, body := do(t, http.MethodPut, url, legacy)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d, body %s", resp.StatusCode, body)
	}

	tree, err := block.Unmarshal(body)
	if err != nil {
		t.Fatalf("returned document invalid: %v", err)
	}
	if len(tree) != 1 || !tree[0].IsSection() {
		t.Error("legacy payload should be migrated into a section")
	}
}

func TestPutRejectsInvalidDocument(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"

	tests := []struct {
		name    string
		payload string
	}{
		{"MalformedJSON", `{`},
		{"RowAtRoot", `{"blocks": [{"id": "r1", "kind": "row"}]}`},
		{"DuplicateIDs", `{"blocks": [{"id": "s", "kind": "section"}, {"id": "s", "kind": "section"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPut, url, []byte(tt.payload))
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", resp.StatusCode, body)
			}
		})
	}
}

func TestCommandInsertSection(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"
	do(t, http.MethodPut, url, samplePayload(t))

	cmd := []byte(`{"op": "insertSection", "template": "footer"}`)
	resp, body := do(t, http.MethodPost, url+"/commands", cmd)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}

	tree, err := block.Unmarshal(body)
	if err != nil {
		t.Fatalf("returned document invalid: %v", err)
	}
	if len(tree) != 2 || tree[1].Title != "Footer" {
		t.Errorf("sections = %d, want the footer appended", len(tree))
	}

	// The change is persisted, not just echoed.
	_, body = do(t, http.MethodGet, url, nil)
	tree, _ = block.Unmarshal(body)
	if len(tree) != 2 {
		t.Error("command result was not saved")
	}
}

func TestCommandUpdateText(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"
	_, body := do(t, http.MethodPut, url, samplePayload(t))
	tree, _ := block.Unmarshal(body)
	leafID := tree[0].Children[0].Columns[0].Children[0].ID

	cmd, _ := json.Marshal(map[string]any{"op": "setText", "nodeId": leafID, "text": "Hello"})
	resp, body := do(t, http.MethodPost, url+"/commands", cmd)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	got, _ := block.Unmarshal(body)
	if block.Find(got, leafID).Text != "Hello" {
		t.Error("setText did not apply")
	}
}

func TestCommandErrors(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"
	do(t, http.MethodPut, url, samplePayload(t))

	tests := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{"UnknownOp", `{"op": "explode"}`, http.StatusBadRequest},
		{"UnknownField", `{"op": "remove", "bogus": true}`, http.StatusBadRequest},
		{"BadTemplate", `{"op": "insertSection", "template": "gallery"}`, http.StatusBadRequest},
		{"BadCollection", `{"op": "drop", "nodeId": "x", "collection": "middle"}`, http.StatusBadRequest},
		{"BadDelta", `{"op": "reorder", "nodeId": "x", "delta": 5}`, http.StatusBadRequest},
		{"MissingText", `{"op": "setText", "nodeId": "x"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, url+"/commands", []byte(tt.payload))
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d, body %s", resp.StatusCode, tt.wantStatus, body)
			}
		})
	}
}

func TestCommandOnMissingDocument(t *testing.T) {
	ts := newTestServer(t)
	cmd := []byte(`{"op": "insertSection", "template": "blank"}`)
	resp, _ := do(t, http.MethodPost, ts.URL+"/v1/documents/alice/absent/commands", cmd)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCommandNoopStillSucceeds(t *testing.T) {
	ts := newTestServer(t)
	url := ts.URL + "/v1/documents/alice/landing-page"
	do(t, http.MethodPut, url, samplePayload(t))

	// A structurally valid command for a missing node degrades to no change.
	cmd := []byte(`{"op": "remove", "nodeId": "does-not-exist"}`)
	resp, body := do(t, http.MethodPost, url+"/commands", cmd)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	tree, _ := block.Unmarshal(body)
	if len(tree) != 1 {
		t.Error("no-op command should return the document unchanged")
	}
}
