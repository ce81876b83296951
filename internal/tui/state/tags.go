package state

// TagKind enumerates the status chips shown for the document.
type TagKind int

const (
	// Stable ordering for display: link status first, then counters.
	SAVED TagKind = iota
	UNSAVED
	UNLINKED
	ZOOM
	PAGES
	CHARS
	WORDS
)

// Tag is a single status chip. Value carries the numeric counters
// (zoom percent, page/char/word counts); link-status tags use 0.
type Tag struct {
	Kind  TagKind
	Value int
}
