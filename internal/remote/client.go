// Package remote mediates all communication with the pagepad server
// and translates operation outcomes into link-state transitions.
//
// Every ambiguous remote outcome downgrades the link to Unlinked
// rather than guessing at transient-vs-permanent failure: any doubt
// about durability is surfaced to the user, never silently assumed
// safe. There is no retry.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"pagepad/internal/httpx"
	"pagepad/internal/link"
	"pagepad/internal/store"
)

// Outcome is what one remote operation produced. Err is informational:
// the link state has already been downgraded before the outcome is
// returned, and no failure escapes as a fault.
type Outcome struct {
	// Applied means Content and Title carry the server's authoritative
	// view and the session must adopt them.
	Applied bool
	// Skipped means the in-flight guard dropped the call; a valid
	// result, not an error.
	Skipped bool
	Content string
	Title   string
	// Notice is a user-visible failure message, set only for failed
	// saves (the one case where silent loss would be costly).
	Notice string
	Err    error
}

// Client talks to one server and owns the link machine plus the
// last-saved snapshot used for dirty/clean classification. At most one
// load or save is in flight at a time; extra calls are skipped, not
// queued.
type Client struct {
	base string
	http *http.Client

	mu        sync.Mutex
	machine   link.Machine
	lastSaved string
	inFlight  bool
}

func NewClient(base string) *Client {
	return &Client{base: strings.TrimRight(base, "/")}
}

// SetHTTPClient overrides the transport, mainly for tests.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// State returns the current link machine value.
func (c *Client) State() link.Machine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.machine
}

// LastSaved returns the snapshot of content as of the most recent
// successful load or save.
func (c *Client) LastSaved() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved
}

// Reclassify compares the buffer against the last-saved snapshot and
// drives the dirty/clean transition. Called on every content change,
// including edits that revert content back to the saved value.
func (c *Client) Reclassify(content string) link.Machine {
	c.mu.Lock()
	defer c.mu.Unlock()
	if content == c.lastSaved {
		c.machine = link.MarkSaved(c.machine)
	} else {
		c.machine = link.MarkDirty(c.machine)
	}
	return c.machine
}

// Load fetches the server's current document. On success the outcome
// carries content and title to adopt; on failure the link is dropped
// and the buffer is left untouched. Safe as the first call of a
// session.
func (c *Client) Load(ctx context.Context) Outcome {
	if !c.begin() {
		return Outcome{Skipped: true}
	}
	defer c.end()
	return c.load(ctx)
}

// Save sends content and title requesting persistence. The server's
// echo is authoritative, since it may rebind the title or refuse
// durability. Failures drop the link and raise a notice.
func (c *Client) Save(ctx context.Context, content, title string) Outcome {
	if !c.begin() {
		return Outcome{Skipped: true}
	}
	defer c.end()

	body, err := json.Marshal(store.Document{Content: content, Title: title, Saved: true})
	if err != nil {
		c.setUnlinked()
		return Outcome{Err: err, Notice: fmt.Sprintf("Save failed: %v", err)}
	}
	raw, err := httpx.PostJSON(ctx, c.http, c.base+"/api/content", body)
	if err != nil {
		c.setUnlinked()
		return Outcome{Err: err, Notice: fmt.Sprintf("Save failed: %v", err)}
	}
	out := c.adopt(raw)
	if out.Err != nil {
		// An unreadable echo is still a failed save: the notice must
		// surface like any other save failure.
		out.Notice = fmt.Sprintf("Save failed: %v", out.Err)
	}
	return out
}

// PollStatus probes server liveness. On failure the link is dropped.
// On success it reloads the document only when the link is clean,
// never while dirty, so unsaved edits cannot be clobbered by an
// out-of-band remote change.
func (c *Client) PollStatus(ctx context.Context) Outcome {
	if err := httpx.Probe(ctx, c.http, c.base+"/api/status"); err != nil {
		c.setUnlinked()
		return Outcome{Err: err}
	}
	st := c.State()
	if st.IsLinked() && !st.IsDirty() {
		return c.Load(ctx)
	}
	return Outcome{}
}

func (c *Client) load(ctx context.Context) Outcome {
	raw, err := httpx.GetJSON(ctx, c.http, c.base+"/api/content")
	if err != nil {
		c.setUnlinked()
		return Outcome{Err: err}
	}
	return c.adopt(raw)
}

// adopt applies a server-reported document: snapshot and link state
// from its Saved flag, content and title for the session to take.
func (c *Client) adopt(raw []byte) Outcome {
	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		c.setUnlinked()
		return Outcome{Err: fmt.Errorf("bad server response: %w", err)}
	}
	c.mu.Lock()
	c.lastSaved = doc.Content
	if doc.Saved {
		c.machine = link.MarkLinked(c.machine, false)
	} else {
		c.machine = link.MarkUnlinked(c.machine)
	}
	c.mu.Unlock()
	return Outcome{Applied: true, Content: doc.Content, Title: doc.Title}
}

func (c *Client) setUnlinked() {
	c.mu.Lock()
	c.machine = link.MarkUnlinked(c.machine)
	c.mu.Unlock()
}

func (c *Client) begin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return false
	}
	c.inFlight = true
	return true
}

func (c *Client) end() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}
