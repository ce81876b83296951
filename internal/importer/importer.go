// Package importer ingests an existing text file into a session:
// decode with a chosen encoding, derive a default title from the
// filename. Decode problems stay here; they never reach the link
// state machine.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pagepad/internal/textenc"
)

// DefaultTitle derives a document title from a file name: the base
// name minus its extension.
func DefaultTitle(name string) string {
	base := filepath.Base(name)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	if title == "" {
		return base
	}
	return title
}

// Read decodes a file-like input with the chosen encoding and derives
// the default title from name.
func Read(r io.Reader, name string, enc textenc.Encoding) (content, title string, err error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", name, err)
	}
	return enc.Decode(b), DefaultTitle(name), nil
}

// ReadFile is Read over a path on disk.
func ReadFile(path string, enc textenc.Encoding) (content, title string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()
	return Read(f, path, enc)
}
