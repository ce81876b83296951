package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pagepad/internal/textenc"
)

func TestDefaultTitle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"notes.txt", "notes"},
		{"/some/dir/report.md", "report"},
		{"noext", "noext"},
		{"archive.tar.gz", "archive.tar"},
		{".hidden", ".hidden"},
	}
	for _, tc := range cases {
		if got := DefaultTitle(tc.in); got != tc.want {
			t.Fatalf("DefaultTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReadDecodesWithChosenEncoding(t *testing.T) {
	gbk, err := textenc.GBK.Encode("你好")
	if err != nil {
		t.Fatal(err)
	}
	content, title, err := Read(strings.NewReader(string(gbk)), "cn.txt", textenc.GBK)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if content != "你好" || title != "cn" {
		t.Fatalf("got content=%q title=%q", content, title)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	if err := os.WriteFile(path, []byte("plain"), 0644); err != nil {
		t.Fatal(err)
	}
	content, title, err := ReadFile(path, textenc.UTF8)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if content != "plain" || title != "draft" {
		t.Fatalf("got content=%q title=%q", content, title)
	}
}
