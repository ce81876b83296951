// Package link tracks whether the editor's content is bound to a
// remote-persisted document and whether it has diverged from the last
// content the server confirmed as durable.
package link

// State is the link classification of the current buffer.
type State int

const (
	// Unlinked means no remote document is authoritatively bound;
	// edits are ephemeral until a save re-establishes the link.
	Unlinked State = iota
	// Linked means content is bound to a remote persisted document.
	Linked
)

// Machine holds the link state plus the dirty flag. The dirty flag is
// meaningful only while Linked; leaving Linked discards it.
type Machine struct {
	State State
	dirty bool
}

// MarkLinked binds the machine to a remote document unconditionally.
// Callers decide dirty from the server-reported persistence status.
func MarkLinked(m Machine, dirty bool) Machine {
	m.State = Linked
	m.dirty = dirty
	return m
}

// MarkUnlinked drops the remote binding unconditionally. Used on any
// remote failure or when the server reports the document is not
// durably saved.
func MarkUnlinked(m Machine) Machine {
	m.State = Unlinked
	m.dirty = false
	return m
}

// MarkDirty records a divergence from the last saved content.
// No-op while Unlinked.
func MarkDirty(m Machine) Machine {
	if m.State == Linked {
		m.dirty = true
	}
	return m
}

// MarkSaved records that content again equals the last saved content,
// including the case of an edit reverted by hand. No-op while Unlinked.
func MarkSaved(m Machine) Machine {
	if m.State == Linked {
		m.dirty = false
	}
	return m
}

// IsLinked reports whether a remote document is bound.
func (m Machine) IsLinked() bool { return m.State == Linked }

// IsDirty reports whether linked content has diverged from the last
// saved snapshot. Always false while Unlinked.
func (m Machine) IsDirty() bool { return m.State == Linked && m.dirty }

// ShouldWarnBeforeDiscard reports whether in-memory content is not
// guaranteed durable: any Unlinked state, or Linked with unsaved edits.
func (m Machine) ShouldWarnBeforeDiscard() bool {
	return m.State == Unlinked || m.dirty
}
