// Package tui implements the interactive browser over an already-built
// workspace aggregate. It performs no storage access of its own: every
// mode renders the same records the console presenters receive.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cursorview/pkg/types"
)

type mode int

const (
	modeList mode = iota
	modeSearch
	modeDetail
)

// Model is the bubbletea model for the browser.
type Model struct {
	records  []types.WorkspaceRecord
	filtered []types.WorkspaceRecord
	cursor   int
	offset   int
	width    int
	height   int
	mode     mode

	searchInput textinput.Model

	// detail view state
	detail       types.WorkspaceRecord
	detailCursor int
	detailOffset int

	// flash is a transient status message (clipboard feedback)
	flash    string
	quitting bool
}

// New builds the browser over records, which must already be sorted
// most-recent-first.
func New(records []types.WorkspaceRecord) Model {
	si := textinput.New()
	si.Placeholder = "filter..."
	si.CharLimit = 100

	m := Model{
		records:     records,
		searchInput: si,
		width:       120,
		height:      30,
	}
	m.applyFilter()
	return m
}

// applyFilter narrows the list to workspaces whose label or any prompt
// text contains the filter string, case insensitively.
func (m *Model) applyFilter() {
	m.filtered = nil
	needle := strings.ToLower(m.searchInput.Value())

	for _, rec := range m.records {
		if needle == "" || recordMatches(rec, needle) {
			m.filtered = append(m.filtered, rec)
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	m.clampOffset()
}

func recordMatches(rec types.WorkspaceRecord, needle string) bool {
	if strings.Contains(strings.ToLower(rec.Label()), needle) {
		return true
	}
	for _, p := range rec.Prompts {
		if strings.Contains(strings.ToLower(p.Text), needle) {
			return true
		}
	}
	return false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampOffset()
		m.clampDetailOffset()
		return m, nil

	case tea.KeyMsg:
		m.flash = ""
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampOffset()
		}

	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.clampOffset()
		}

	case "home", "g":
		m.cursor = 0
		m.clampOffset()

	case "end", "G":
		m.cursor = max(0, len(m.filtered)-1)
		m.clampOffset()

	case "enter":
		if len(m.filtered) > 0 {
			m.detail = m.filtered[m.cursor]
			m.detailCursor = len(m.detail.Prompts) - 1 // newest prompt
			m.detailOffset = 0
			m.mode = modeDetail
			m.clampDetailOffset()
		}

	case "/":
		m.searchInput.Focus()
		m.mode = modeSearch
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searchInput.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeList
		return m, nil

	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.detailCursor > 0 {
			m.detailCursor--
			m.clampDetailOffset()
		}

	case "down", "j":
		if m.detailCursor < len(m.detail.Prompts)-1 {
			m.detailCursor++
			m.clampDetailOffset()
		}

	case "g":
		m.detailCursor = 0
		m.clampDetailOffset()

	case "G":
		m.detailCursor = max(0, len(m.detail.Prompts)-1)
		m.clampDetailOffset()

	case "y":
		if m.detailCursor >= 0 && m.detailCursor < len(m.detail.Prompts) {
			if err := clipboard.WriteAll(m.detail.Prompts[m.detailCursor].Text); err != nil {
				m.flash = "copy failed: " + err.Error()
			} else {
				m.flash = "copied to clipboard"
			}
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	title := titleStyle.Render("cursorview")
	info := dimStyle.Render(fmt.Sprintf("  %d workspaces", len(m.filtered)))
	b.WriteString(title + info + "\n")

	b.WriteString(headerStyle.Render(m.padRow("WORKSPACE", "MODIFIED", "PROMPTS")) + "\n")

	visible := m.visibleRows()
	end := min(m.offset+visible, len(m.filtered))
	for i := m.offset; i < end; i++ {
		rec := m.filtered[i]
		row := m.padRow(
			shortenLeft(rec.Label(), m.labelWidth()),
			rec.LastModified.Format("01-02 15:04"),
			fmt.Sprintf("%d", len(rec.Prompts)),
		)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(row) + "\n")
		} else {
			b.WriteString(" " + row + "\n")
		}
	}
	for i := end - m.offset; i < visible; i++ {
		b.WriteString("\n")
	}

	if m.mode == modeSearch {
		b.WriteString(statusBarStyle.Render("Filter: ") + m.searchInput.View())
	} else {
		b.WriteString(helpStyle.Render("  j/k: move  enter: open  /: filter  q: quit"))
	}
	return b.String()
}

func (m Model) viewDetail() string {
	var b strings.Builder

	title := titleStyle.Render(shortenLeft(m.detail.Label(), m.width-20))
	b.WriteString(title + dimStyle.Render("  "+m.detail.LastModified.Format("2006-01-02 15:04")) + "\n\n")

	visible := m.visibleRows()
	end := min(m.detailOffset+visible, len(m.detail.Prompts))
	for i := m.detailOffset; i < end; i++ {
		p := m.detail.Prompts[i]
		line := promptTag(p.CommandType) + " " + firstLine(p.Text, m.width-14)
		if i == m.detailCursor {
			b.WriteString(selectedStyle.Render(fmt.Sprintf("%3d. ", i+1)+line) + "\n")
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" %3d. ", i+1)) + line + "\n")
		}
	}
	for i := end - m.detailOffset; i < visible; i++ {
		b.WriteString("\n")
	}

	if m.flash != "" {
		b.WriteString(flashStyle.Render("  " + m.flash))
	} else {
		b.WriteString(helpStyle.Render("  j/k: move  y: copy prompt  esc: back  ctrl+c: quit"))
	}
	return b.String()
}

func promptTag(c types.CommandType) string {
	label := c.Label()
	switch c {
	case types.CommandTypeTerminal:
		return terminalTag.Render(label)
	case types.CommandTypeChat:
		return chatTag.Render(label)
	case types.CommandTypeAgent:
		return agentTag.Render(label)
	default:
		return otherTag.Render(label)
	}
}

// visibleRows is the row budget between the title/header and the bottom
// bar.
func (m Model) visibleRows() int {
	return max(1, m.height-4)
}

func (m Model) labelWidth() int {
	return max(20, m.width-30)
}

func (m *Model) clampOffset() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) clampDetailOffset() {
	visible := m.visibleRows()
	if m.detailCursor < m.detailOffset {
		m.detailOffset = m.detailCursor
	}
	if m.detailCursor >= m.detailOffset+visible {
		m.detailOffset = m.detailCursor - visible + 1
	}
	if m.detailOffset < 0 {
		m.detailOffset = 0
	}
}

func (m Model) padRow(label, modified, prompts string) string {
	return fmt.Sprintf("%-*s %-12s %7s", m.labelWidth(), label, modified, prompts)
}

// shortenLeft keeps the tail of s, which for paths is the project name.
func shortenLeft(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return "..." + s[len(s)-width+3:]
}

// firstLine flattens a prompt to a single display line.
func firstLine(s string, width int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " ..."
	}
	if width > 3 && len(s) > width {
		s = s[:width-3] + "..."
	}
	return s
}

// Run starts the interactive browser and blocks until the user quits.
func Run(records []types.WorkspaceRecord) error {
	p := tea.NewProgram(New(records), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
