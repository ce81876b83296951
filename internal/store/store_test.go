package store

import (
	"os"
	"path/filepath"
	"testing"

	"pagepad/internal/textenc"
)

func TestLoadWithoutPath(t *testing.T) {
	s := New("", t.TempDir(), textenc.UTF8)
	doc := s.Load()
	if doc.Content != "" || doc.Title != DefaultTitle || doc.Saved {
		t.Fatalf("first open = %+v, want empty Untitled unsaved", doc)
	}
}

func TestLoadReadsBoundFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	doc := New(path, dir, textenc.UTF8).Load()
	if doc.Content != "hello" || doc.Title != "notes.txt" || !doc.Saved {
		t.Fatalf("Load = %+v", doc)
	}
}

func TestLoadMissingFileIsUnsavedErrorDoc(t *testing.T) {
	doc := New(filepath.Join(t.TempDir(), "gone.txt"), "", textenc.UTF8).Load()
	if doc.Saved {
		t.Fatalf("unreadable file must not report Saved")
	}
	if doc.Title != "Error" {
		t.Fatalf("title = %q, want Error", doc.Title)
	}
}

func TestSaveEchoesAuthoritativeView(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	s := New(path, dir, textenc.UTF8)
	doc := s.Save("content here", "ignored title")
	if !doc.Saved || doc.Title != "doc.txt" || doc.Content != "content here" {
		t.Fatalf("Save echo = %+v", doc)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "content here" {
		t.Fatalf("file = %q err=%v", string(b), err)
	}
}

func TestSaveBindsPathLazilyFromTitle(t *testing.T) {
	dir := t.TempDir()
	s := New("", dir, textenc.UTF8)
	doc := s.Save("x", "my/draft")
	if !doc.Saved {
		t.Fatalf("save = %+v", doc)
	}
	if s.Path() != filepath.Join(dir, "mydraft.txt") {
		t.Fatalf("bound path = %q", s.Path())
	}
	if doc.Title != "mydraft.txt" {
		t.Fatalf("echoed title = %q", doc.Title)
	}
	// Subsequent loads come from the bound file.
	if got := s.Load(); got.Content != "x" || !got.Saved {
		t.Fatalf("Load after bind = %+v", got)
	}
}

func TestSaveEncodeFailureIsUnsavedEcho(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "doc.txt"), dir, textenc.GBK)
	doc := s.Save("emoji \U0001F600", "doc")
	if doc.Saved {
		t.Fatalf("unencodable content must echo Saved=false")
	}
	if doc.Content != "emoji \U0001F600" {
		t.Fatalf("echo lost content: %+v", doc)
	}
}

func TestSaveGBKWritesGBKBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cn.txt")
	s := New(path, dir, textenc.GBK)
	if doc := s.Save("你好", "cn"); !doc.Saved {
		t.Fatalf("save = %+v", doc)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) == "你好" {
		t.Fatalf("expected GBK bytes on disk, got utf-8")
	}
	if got := s.Load(); got.Content != "你好" {
		t.Fatalf("decode back = %q", got.Content)
	}
}
