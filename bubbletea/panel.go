// Package bubbletea provides the interactive panel for the captured list.
package bubbletea

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwalczak/linktray"
)

// pollInterval is how often the panel re-reads the store. Captures can come
// from other processes sharing the session file, so subscriptions alone are
// not enough for live updates.
const pollInterval = 500 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	urlStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

// LinksMsg delivers a fresh snapshot of the list to the panel. It is also
// how store subscriptions feed the running program from outside.
type LinksMsg []linktray.Link

type tickMsg time.Time

// Model is the panel's bubbletea model.
type Model struct {
	store  linktray.LinkStore
	clip   linktray.Clipboard
	logger *slog.Logger

	links    []linktray.Link
	checked  map[string]bool // per-link markdown toggles, keyed by URL
	cursor   int
	markdown bool // global toggle, affects bulk copy only

	confirmClear bool
	status       string
	lastHash     uint64
	width        int

	keys keyMap
	help help.Model
}

// New creates a panel over store and clip. markdown seeds the global
// markdown toggle for bulk copy actions.
func New(store linktray.LinkStore, clip linktray.Clipboard, logger *slog.Logger, markdown bool) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		store:    store,
		clip:     clip,
		logger:   logger,
		checked:  make(map[string]bool),
		markdown: markdown,
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
}

// Init loads the list and starts the poll ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), tick())
}

// Update handles panel events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.load(), tick())

	case LinksMsg:
		m.applyLinks(msg)
		return m, nil

	case tea.KeyMsg:
		if m.confirmClear {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	s := titleStyle.Render(fmt.Sprintf("linktray: %d captured", len(m.links))) +
		fmt.Sprintf("  [bulk markdown: %s]\n\n", onOff(m.markdown))

	if len(m.links) == 0 {
		s += urlStyle.Render("Nothing captured yet.") + "\n"
	}

	for i, link := range m.links {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if m.checked[link.URL] {
			check = "[x]"
		}
		s += fmt.Sprintf("%s%s %s  %s\n", cursor, check, link.Title, urlStyle.Render(link.URL))
	}

	s += "\n"
	if m.confirmClear {
		s += warnStyle.Render("Delete all captured links? (y/n)") + "\n"
	} else if m.status != "" {
		s += statusStyle.Render(m.status) + "\n"
	}

	return s + "\n" + m.help.View(m.keys)
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.links)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.links) {
			url := m.links[m.cursor].URL
			m.checked[url] = !m.checked[url]
		}

	case key.Matches(msg, m.keys.Markdown):
		m.markdown = !m.markdown

	case key.Matches(msg, m.keys.Copy):
		if m.cursor < len(m.links) {
			link := m.links[m.cursor]
			m.copyText(linktray.FormatLink(link, m.checked[link.URL]))
			m.status = "Copied " + link.URL
		}

	case key.Matches(msg, m.keys.CopyAll):
		m.copyText(linktray.FormatLinks(m.links, m.markdown))
		m.status = fmt.Sprintf("Copied %d links", len(m.links))

	case key.Matches(msg, m.keys.CopyBullets):
		m.copyText(linktray.FormatLinksBulleted(m.links, m.markdown))
		m.status = fmt.Sprintf("Copied %d links as bullets", len(m.links))

	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.links) {
			if err := m.store.RemoveAt(context.Background(), m.cursor); err != nil {
				m.logger.Error("panel remove failed", "index", m.cursor, "err", err)
			}
			return m, m.load()
		}

	case key.Matches(msg, m.keys.DeleteAll):
		if len(m.links) > 0 {
			m.confirmClear = true
		}
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmClear = false
		if err := m.store.Clear(context.Background()); err != nil {
			m.logger.Error("panel clear failed", "err", err)
		}
		m.status = "Deleted all links"
		return m, m.load()
	case "n", "N", "esc", "q":
		m.confirmClear = false
	}
	return m, nil
}

// applyLinks swaps in a snapshot, skipping redraw work when nothing changed.
// Per-link markdown toggles are keyed by URL, so they survive list updates
// and disappear with their link; they are never persisted.
func (m *Model) applyLinks(links []linktray.Link) {
	hash := hashLinks(links)
	if hash == m.lastHash {
		return
	}
	m.lastHash = hash
	m.links = links

	alive := make(map[string]bool, len(links))
	for _, l := range links {
		alive[l.URL] = true
	}
	for url := range m.checked {
		if !alive[url] {
			delete(m.checked, url)
		}
	}

	if m.cursor >= len(links) {
		m.cursor = len(links) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// copyText is best-effort: clipboard failures are logged, never shown.
func (m *Model) copyText(text string) {
	if err := m.clip.Write(text); err != nil {
		m.logger.Error("clipboard write failed", "err", err)
	}
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		links, err := m.store.Links(context.Background())
		if err != nil {
			// Keep showing the stale list until the next successful read.
			m.logger.Error("panel load failed", "err", err)
			return nil
		}
		return LinksMsg(links)
	}
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func hashLinks(links []linktray.Link) uint64 {
	d := xxhash.New()
	for _, l := range links {
		_, _ = d.WriteString(l.URL)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(l.Title)
		_, _ = d.WriteString("\x00")
	}
	return d.Sum64()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
