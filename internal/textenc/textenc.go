// Package textenc selects the text encoding used to read and write
// document files: UTF-8 or GBK. Decoding is tolerant (malformed bytes
// become replacement runes, so a wrong selector yields garbled text
// rather than an empty buffer); encoding is strict, since silently
// dropping characters on save would lose content.
package textenc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

type Encoding int

const (
	UTF8 Encoding = iota
	GBK
)

// Parse maps a CLI selector value to an Encoding.
func Parse(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "gbk":
		return GBK, nil
	default:
		return UTF8, fmt.Errorf("unknown encoding %q (want utf-8 or gbk)", name)
	}
}

func (e Encoding) String() string {
	if e == GBK {
		return "gbk"
	}
	return "utf-8"
}

// Decode converts file bytes to a string. Never fails: undecodable
// sequences are replaced, not rejected.
func (e Encoding) Decode(b []byte) string {
	switch e {
	case GBK:
		s, err := simplifiedchinese.GBK.NewDecoder().Bytes(b)
		if err != nil {
			// The decoder substitutes by default; an error here means
			// a truncated trailing sequence. Keep what decoded.
			return strings.ToValidUTF8(string(s), string(utf8.RuneError))
		}
		return string(s)
	default:
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
}

// Encode converts content to file bytes, failing if the content has
// characters the encoding cannot represent.
func (e Encoding) Encode(s string) ([]byte, error) {
	switch e {
	case GBK:
		b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("content contains characters that cannot be encoded in gbk: %w", err)
		}
		return b, nil
	default:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("content is not valid utf-8")
		}
		return []byte(s), nil
	}
}
