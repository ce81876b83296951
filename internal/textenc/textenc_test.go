package textenc

import (
	"bytes"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Encoding
		ok   bool
	}{
		{"utf-8", UTF8, true},
		{"UTF-8", UTF8, true},
		{"utf8", UTF8, true},
		{"", UTF8, true},
		{"gbk", GBK, true},
		{"GBK", GBK, true},
		{"latin-1", UTF8, false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("Parse(%q) err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGBKRoundTrip(t *testing.T) {
	const content = "第一页 hello"
	b, err := GBK.Encode(content)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if bytes.Equal(b, []byte(content)) {
		t.Fatalf("gbk bytes should differ from utf-8 bytes")
	}
	if got := GBK.Decode(b); got != content {
		t.Fatalf("round trip = %q, want %q", got, content)
	}
}

func TestGBKEncodeRejectsUnmappable(t *testing.T) {
	// U+1F600 has no GBK mapping.
	if _, err := GBK.Encode("ok \U0001F600"); err == nil {
		t.Fatalf("expected strict encode error for unmappable rune")
	}
}

func TestDecodeIsLossyNotFatal(t *testing.T) {
	// Invalid UTF-8 bytes must decode to something, never fail,
	// so a wrong selector cannot blank out a file on the next save.
	got := UTF8.Decode([]byte{0x68, 0x69, 0xff, 0xfe})
	if !strings.HasPrefix(got, "hi") {
		t.Fatalf("decode lost valid prefix: %q", got)
	}
	if got == "hi" {
		t.Fatalf("invalid bytes should surface as replacement runes, not vanish")
	}
}

func TestUTF8PassThrough(t *testing.T) {
	const content = "plain text\nwith lines"
	b, err := UTF8.Encode(content)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != content {
		t.Fatalf("utf-8 encode must be identity")
	}
}
