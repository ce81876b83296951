// Package tui hosts the interactive editor session. The model owns the
// text buffer, the page geometry and (when networked) the sync client;
// all remote work happens in commands so the update loop never blocks.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pagepad/internal/export"
	"pagepad/internal/geom"
	"pagepad/internal/link"
	"pagepad/internal/remote"
	"pagepad/internal/tui/state"
	"pagepad/internal/tui/util"
	"pagepad/internal/tui/widgets/helpoverlay"
	"pagepad/internal/tui/widgets/pageframe"
	"pagepad/internal/tui/widgets/statusbar"
)

const defaultPollEvery = 30 * time.Second

// The textarea folds literal tabs into spaces, so tabs live in the
// buffer as a visible marker rune. Translation happens at the session
// boundary: Content() and everything derived from it carry real tabs.
const tabMarker = "␉" // ␉

func toBuffer(s string) string   { return strings.ReplaceAll(s, "\t", tabMarker) }
func fromBuffer(s string) string { return strings.ReplaceAll(s, tabMarker, "\t") }

/* ---------- options ---------- */

// Options configure a session. ServerURL empty means standalone: the
// buffer never links and ctrl+s exports to a text file instead.
type Options struct {
	ServerURL string
	Content   string
	Title     string
	ExportDir string
	PollEvery time.Duration
	NoColor   bool
}

/* ---------- messages ---------- */

type loadDoneMsg remote.Outcome
type saveDoneMsg remote.Outcome
type pollDoneMsg remote.Outcome

// pollTickMsg fires the next status probe. A fresh tick is scheduled
// only after the previous probe reports back, so probes never stack.
type pollTickMsg struct{}

// layoutMsg re-measures the page after the buffer settled.
type layoutMsg struct{}

/* ---------- model ---------- */

type Model struct {
	ta     textarea.Model
	title  string
	client *remote.Client // nil in standalone mode
	page   geom.Page
	scroll int // viewport offset in page pixels, follows the caret
	ui     state.UIState
	km     keyMap

	exportDir string
	pollEvery time.Duration
	noColor   bool

	status statusbar.StatusBar
	help   helpoverlay.HelpOverlay
}

func New(opts Options) Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(geom.TextColumns)
	ta.SetHeight(20)
	ta.SetValue(toBuffer(opts.Content))
	ta.Focus()

	title := opts.Title
	if title == "" {
		title = "Untitled"
	}
	every := opts.PollEvery
	if every <= 0 {
		every = defaultPollEvery
	}

	m := Model{
		ta:        ta,
		title:     title,
		page:      geom.NewPage(),
		km:        defaultKeyMap(),
		exportDir: opts.ExportDir,
		pollEvery: every,
		noColor:   util.NoColor(opts.NoColor),
		status:    statusbar.NewStatusBar(),
		help:      helpoverlay.NewHelpOverlay(),
	}
	if opts.ServerURL != "" {
		m.client = remote.NewClient(opts.ServerURL)
	}
	m.page = m.page.SyncHeight(geom.NaturalHeight(opts.Content))
	return m
}

func (m Model) networked() bool { return m.client != nil }

func (m Model) machine() link.Machine {
	if m.client == nil {
		return link.Machine{}
	}
	return m.client.State()
}

// Title reports the document title currently shown in the status bar.
func (m Model) Title() string { return m.title }

// Content reports the current buffer with tab markers translated back
// to literal tabs.
func (m Model) Content() string { return fromBuffer(m.ta.Value()) }

/* ---------- commands ---------- */

func (m Model) loadCmd() tea.Cmd {
	c := m.client
	return func() tea.Msg { return loadDoneMsg(c.Load(context.Background())) }
}

func (m Model) saveCmd() tea.Cmd {
	c, content, title := m.client, m.Content(), m.title
	return func() tea.Msg { return saveDoneMsg(c.Save(context.Background(), content, title)) }
}

func (m Model) pollCmd() tea.Cmd {
	c := m.client
	return func() tea.Msg { return pollDoneMsg(c.PollStatus(context.Background())) }
}

func (m Model) schedulePoll() tea.Cmd {
	return tea.Tick(m.pollEvery, func(time.Time) tea.Msg { return pollTickMsg{} })
}

func layoutCmd() tea.Cmd {
	return func() tea.Msg { return layoutMsg{} }
}

/* ---------- bubbletea plumbing ---------- */

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, layoutCmd()}
	if m.networked() {
		cmds = append(cmds, m.loadCmd(), m.schedulePoll())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.ui = state.Resize(m.ui, msg.Width, msg.Height)
		w := geom.TextColumns
		if msg.Width-6 < w {
			w = msg.Width - 6
		}
		if w < 10 {
			w = 10
		}
		m.ta.SetWidth(w)
		h := msg.Height - 4
		if h < 3 {
			h = 3
		}
		m.ta.SetHeight(h)
		return m, nil

	case layoutMsg:
		m.page = m.page.SyncHeight(geom.NaturalHeight(m.Content()))
		m.scroll = m.page.ClampScroll(m.scroll)
		return m, nil

	case pollTickMsg:
		if !m.networked() {
			return m, nil
		}
		return m, m.pollCmd()

	case pollDoneMsg:
		m = m.absorb(remote.Outcome(msg))
		// Re-arm regardless of outcome so the loop survives failures.
		return m, tea.Batch(m.schedulePoll(), layoutCmd())

	case loadDoneMsg:
		m = m.absorb(remote.Outcome(msg))
		return m, layoutCmd()

	case saveDoneMsg:
		out := remote.Outcome(msg)
		m = m.absorb(out)
		if out.Applied && out.Notice == "" {
			// Announce durability only when the echo confirmed it; a
			// saved:false echo means the server refused to persist.
			if m.machine().IsLinked() {
				m.ui = state.Notify(m.ui, "Saved")
			} else {
				m.ui = state.Notify(m.ui, "Save not confirmed by server")
			}
		}
		return m, layoutCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// absorb folds a sync outcome into the model: adopted documents replace
// the buffer and title, notices surface in the status bar.
func (m Model) absorb(out remote.Outcome) Model {
	if out.Applied {
		if m.Content() != out.Content {
			m.ta.SetValue(toBuffer(out.Content))
		}
		if out.Title != "" {
			m.title = out.Title
		}
	}
	if out.Notice != "" {
		m.ui = state.Notify(m.ui, out.Notice)
	}
	return m
}

/* ---------- key handling ---------- */

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// A quit warning stands until the next keypress answers it.
	if m.ui.QuitArmed {
		if key.Matches(msg, m.km.Quit) {
			return m, tea.Quit
		}
		m.ui = state.DisarmQuit(m.ui)
	}

	if m.ui.ShowHelp {
		switch {
		case key.Matches(msg, m.km.Help), msg.String() == "esc":
			m.ui = state.ToggleHelp(m.ui)
			return m, nil
		case key.Matches(msg, m.km.Quit):
			// fall through to quit handling below
		default:
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.km.Quit):
		if m.machine().ShouldWarnBeforeDiscard() {
			reason := "Not saved remotely"
			if m.machine().IsDirty() {
				reason = "Unsaved changes"
			}
			m.ui = state.ArmQuit(m.ui, reason+", press again to quit")
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.km.Help):
		m.ui = state.ToggleHelp(m.ui)
		return m, nil

	case key.Matches(msg, m.km.Diff):
		m.ui = state.ToggleDiff(m.ui)
		return m, nil

	case key.Matches(msg, m.km.Save):
		if m.networked() {
			return m, m.saveCmd()
		}
		path, err := export.WriteTXT(m.exportDir, m.title, m.Content())
		if err != nil {
			m.ui = state.Notify(m.ui, fmt.Sprintf("Export failed: %v", err))
		} else {
			m.ui = state.Notify(m.ui, "Exported "+path)
		}
		return m, nil

	case key.Matches(msg, m.km.ExportPNG):
		name := export.PNGName(m.title)
		path := name
		if m.exportDir != "" {
			path = m.exportDir + "/" + name
		}
		if err := export.WritePNG(path, m.Content(), m.page); err != nil {
			m.ui = state.Notify(m.ui, fmt.Sprintf("PNG export failed: %v", err))
		} else {
			m.ui = state.Notify(m.ui, "Exported "+path)
		}
		return m, nil

	case key.Matches(msg, m.km.Copy):
		if err := clipboard.WriteAll(m.Content()); err != nil {
			m.ui = state.Notify(m.ui, fmt.Sprintf("Copy failed: %v", err))
		} else {
			m.ui = state.Notify(m.ui, "Copied buffer to clipboard")
		}
		return m, nil

	case key.Matches(msg, m.km.ZoomIn):
		m.page = m.page.ChangeZoom(geom.ZoomStep)
		return m, nil

	case key.Matches(msg, m.km.ZoomOut):
		m.page = m.page.ChangeZoom(-geom.ZoomStep)
		return m, nil

	case key.Matches(msg, m.km.ZoomReset):
		m.page = m.page.ResetZoom()
		return m, nil

	case key.Matches(msg, m.km.Tab):
		m.ta.InsertString(tabMarker)
		return m.afterEdit()
	}

	before := m.ta.Value()
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	if m.ta.Value() != before {
		var edited Model
		var layout tea.Cmd
		edited, layout = m.afterEdit()
		return edited, tea.Batch(cmd, layout)
	}
	return m, cmd
}

// afterEdit reclassifies the buffer against the last-saved snapshot,
// moves the viewport offset to the caret and schedules a geometry
// re-measure.
func (m Model) afterEdit() (Model, tea.Cmd) {
	if m.networked() {
		m.client.Reclassify(m.Content())
	}
	m.scroll = m.page.ClampScroll(m.ta.Line() * geom.LineHeight)
	return m, layoutCmd()
}

/* ---------- view ---------- */

var titleStyle = lipgloss.NewStyle().Bold(true)

func (m Model) View() string {
	if m.ui.ShowHelp {
		return m.help.View(m.networked()) + "\n" + m.statusLine()
	}

	var body string
	if m.ui.View == state.PendingChanges {
		var saved string
		if m.networked() {
			saved = m.client.LastSaved()
		}
		body = renderPendingChanges(saved, m.Content())
	} else {
		body = pageframe.View(m.ta.View(), m.page, m.ui.Width)
	}

	header := titleStyle.Render(m.title)
	if m.noColor {
		header = m.title
	}
	return header + "\n" + body + "\n" + m.pageIndicator() + "\n" + m.statusLine()
}

// pageIndicator names the page the caret is on, from the clamped
// viewport offset.
func (m Model) pageIndicator() string {
	total := pageframe.PageCount(m.page)
	on := m.scroll/geom.PageHeight + 1
	if on > total {
		on = total
	}
	s := fmt.Sprintf("page %d of %d", on, total)
	if m.noColor {
		return s
	}
	return faint.Render(s)
}

func (m Model) statusLine() string {
	tags := util.ComputeTags(m.machine(), m.Content(), m.page.Zoom, pageframe.PageCount(m.page))
	return m.status.View(m.ui, m.title, tags, m.noColor)
}
