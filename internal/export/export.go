// Package export turns the current document into local artifacts:
// a plain-text file named after the sanitized title, or a PNG render
// of the page surface.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// reserved covers path separators plus the characters no mainstream
// filesystem accepts in a name.
const reserved = `/\:*?"<>|`

// SanitizeFilename strips path-separator and reserved filesystem
// characters from a title so it is safe as a file name. A title that
// sanitizes to nothing falls back to "Untitled".
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		if r < 0x20 || strings.ContainsRune(reserved, r) {
			continue
		}
		b.WriteRune(r)
	}
	name := strings.Trim(b.String(), " .")
	if name == "" {
		return "Untitled"
	}
	return name
}

// WriteTXT writes content to <sanitized-title>.txt under dir and
// returns the path written.
func WriteTXT(dir, title, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, SanitizeFilename(title)+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := fmt.Fprint(f, content); err != nil {
		return "", err
	}
	return path, nil
}

// PNGName returns the artifact name used by WritePNG for a title.
func PNGName(title string) string {
	return SanitizeFilename(title) + ".png"
}
