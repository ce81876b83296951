package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pagepad/internal/store"
	"pagepad/internal/textenc"
)

func newTestServer(t *testing.T, path string) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	if path != "" {
		path = filepath.Join(dir, path)
	}
	srv := httptest.NewServer(New(store.New(path, dir, textenc.UTF8)).Handler())
	t.Cleanup(srv.Close)
	return srv, dir
}

func getDoc(t *testing.T, url string) store.Document {
	t.Helper()
	resp, err := http.Get(url + "/api/content")
	if err != nil {
		t.Fatalf("GET content: %v", err)
	}
	defer resp.Body.Close()
	var doc store.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return doc
}

func TestStatusProbe(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/api/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestFreshServerServesEmptyUnsavedDocument(t *testing.T) {
	srv, _ := newTestServer(t, "")
	doc := getDoc(t, srv.URL)
	if doc.Content != "" || doc.Title != store.DefaultTitle || doc.Saved {
		t.Fatalf("fresh doc = %+v", doc)
	}
}

func TestPostPersistsAndEchoes(t *testing.T) {
	srv, dir := newTestServer(t, "notes.txt")
	body, _ := json.Marshal(store.Document{Content: "hello", Title: "whatever", Saved: true})
	resp, err := http.Post(srv.URL+"/api/content", "application/json", strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var echo store.Document
	if err := json.NewDecoder(resp.Body).Decode(&echo); err != nil {
		t.Fatalf("decode echo: %v", err)
	}
	if !echo.Saved || echo.Title != "notes.txt" || echo.Content != "hello" {
		t.Fatalf("echo = %+v", echo)
	}
	b, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	if err != nil || string(b) != "hello" {
		t.Fatalf("on disk: %q err=%v", string(b), err)
	}

	// A later GET serves what was written.
	if doc := getDoc(t, srv.URL); doc.Content != "hello" || !doc.Saved {
		t.Fatalf("reload = %+v", doc)
	}
}

func TestPostBadBodyIsRejected(t *testing.T) {
	srv, _ := newTestServer(t, "notes.txt")
	resp, err := http.Post(srv.URL+"/api/content", "application/json", strings.NewReader("{nope"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestUnsupportedMethod(t *testing.T) {
	srv, _ := newTestServer(t, "")
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/content", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", resp.StatusCode)
	}
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
