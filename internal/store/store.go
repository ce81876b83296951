// Package store is the file-backed document store behind the pagepad
// server. One store serves exactly one file; the path may be bound
// lazily by the first save when the server was started without one.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pagepad/internal/export"
	"pagepad/internal/textenc"
)

// DefaultTitle names a document that has no backing file yet.
const DefaultTitle = "Untitled"

// Document is the wire shape shared by the server and the sync client.
// Saved reports whether the content is durably on disk, not merely
// held in memory.
type Document struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Saved   bool   `json:"saved"`
}

type Store struct {
	mu   sync.Mutex
	path string
	dir  string
	enc  textenc.Encoding
}

// New builds a store over path, which may be empty. dir is where a
// late-bound file is created on first save (usually the working
// directory).
func New(path, dir string, enc textenc.Encoding) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{path: path, dir: dir, enc: enc}
}

// Path returns the currently bound file path, empty if none yet.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Load reads the backing file. A store with no path yet reports an
// empty unsaved document; a read failure reports an error document
// with Saved=false, since content that cannot be read back is not
// durable from the client's point of view.
func (s *Store) Load() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return Document{Content: "", Title: DefaultTitle, Saved: false}
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return Document{
			Content: fmt.Sprintf("Error reading file: %v", err),
			Title:   "Error",
			Saved:   false,
		}
	}
	return Document{
		Content: s.enc.Decode(b),
		Title:   filepath.Base(s.path),
		Saved:   true,
	}
}

// Save writes content to the backing file and echoes the store's
// authoritative view. With no path bound yet, the sanitized title
// names the new file; an unusable title falls back to "Untitled".
func (s *Store) Save(content, title string) Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		s.path = filepath.Join(s.dir, export.SanitizeFilename(title)+".txt")
	}

	doc := Document{Content: content, Title: filepath.Base(s.path)}
	b, err := s.enc.Encode(content)
	if err != nil {
		return doc
	}
	if err := os.WriteFile(s.path, b, 0644); err != nil {
		return doc
	}
	doc.Saved = true
	return doc
}
