package tui

import (
	"fmt"

	"revu/internal/notes"
	"revu/internal/store"
	"revu/internal/tui/messages"
	"revu/internal/viewer"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

type queuesMode int

const (
	modeList queuesMode = iota
	modeSearch
)

// queueEntry pairs a note id with the queue section it renders under.
type queueEntry struct {
	ID      int
	Section string
}

// QueuesModel is the browser over the four note queues.
type QueuesModel struct {
	repo        *store.Repository
	view        *viewer.Viewer
	entries     []queueEntry
	filtered    []int // indices into entries
	selected    int
	mode        queuesMode
	textInput   textinput.Model
	searchQuery string
	width       int
	height      int
}

func NewQueuesModel(repo *store.Repository, view *viewer.Viewer) QueuesModel {
	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.CharLimit = 100
	ti.Width = 40

	m := QueuesModel{view: view, textInput: ti}
	m.SetData(repo)
	return m
}

// SetData rebuilds the entry list from a fresh repository.
func (m *QueuesModel) SetData(repo *store.Repository) {
	m.repo = repo
	m.entries = nil
	add := func(section string, ids []int) {
		for _, id := range ids {
			m.entries = append(m.entries, queueEntry{ID: id, Section: section})
		}
	}
	add("Ready to review", repo.DueQueue())
	add("Other active", repo.ActiveQueue())
	add("Completed", repo.CompletedQueue())
	add("Cancelled", repo.CancelledQueue())
	m.applyFilter()
}

// SetSize updates view dimensions.
func (m *QueuesModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// IsTyping returns true when the search input is active.
func (m QueuesModel) IsTyping() bool {
	return m.mode == modeSearch
}

// HintText returns the raw hint string for the current mode.
func (m QueuesModel) HintText() string {
	if m.mode == modeSearch {
		return "type to filter  enter:confirm  esc:cancel"
	}
	return "j/k:navigate  /:search  enter:review  r:review queue  o:open  R:rescan  q:quit"
}

func (m *QueuesModel) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = make([]int, len(m.entries))
		for i := range m.entries {
			m.filtered[i] = i
		}
	} else {
		titles := make([]string, len(m.entries))
		for i, e := range m.entries {
			titles[i] = m.repo.Note(e.ID).Title
		}
		matches := fuzzy.Find(m.searchQuery, titles)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m QueuesModel) selectedNote() *notes.Note {
	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return nil
	}
	return m.repo.Note(m.entries[m.filtered[m.selected]].ID)
}

func (m QueuesModel) Update(msg tea.Msg) (QueuesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.updateList(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
	}
	return m, nil
}

func (m QueuesModel) updateList(msg tea.KeyMsg) (QueuesModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
		}

	case "j", "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "/":
		m.mode = modeSearch
		m.textInput.SetValue(m.searchQuery)
		m.textInput.Focus()
		return m, textinput.Blink

	case "o":
		if n := m.selectedNote(); n != nil && m.view != nil {
			m.view.Open(n.Title)
		}

	case "R":
		return m, func() tea.Msg { return messages.DataRefreshMsg{} }

	case "enter":
		if n := m.selectedNote(); n != nil && n.IsActive {
			id := n.ID
			return m, func() tea.Msg { return messages.StartReviewMsg{ID: id} }
		}

	case "r":
		if len(m.repo.DueQueue()) > 0 {
			return m, func() tea.Msg { return messages.StartReviewMsg{ID: -1} }
		}
	}
	return m, nil
}

func (m QueuesModel) updateSearch(msg tea.KeyMsg) (QueuesModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.applyFilter()
		return m, nil

	case "enter":
		m.searchQuery = m.textInput.Value()
		m.mode = modeList
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchQuery = m.textInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m QueuesModel) View() string {
	var lines []string

	lines = append(lines, titleStyle.Render("Notes"))
	lines = append(lines, "")

	if m.mode == modeSearch {
		lines = append(lines, searchLabelStyle.Render("  Search: ")+m.textInput.View())
		lines = append(lines, "")
	} else if m.searchQuery != "" {
		lines = append(lines, searchLabelStyle.Render("  Filter: ")+m.searchQuery)
		lines = append(lines, "")
	}

	if len(m.filtered) == 0 {
		if len(m.entries) == 0 {
			lines = append(lines, listItemStyle.Render("  No notes found."))
		} else {
			lines = append(lines, listItemStyle.Render("  No matching notes."))
		}
		content := lipgloss.JoinVertical(lipgloss.Left, lines...)
		return content
	}

	maxVisible := m.height - 6
	if maxVisible < 3 {
		maxVisible = 3
	}
	startIdx := 0
	if m.selected >= maxVisible {
		startIdx = m.selected - maxVisible + 1
	}
	endIdx := min(startIdx+maxVisible, len(m.filtered))

	lastSection := ""
	for i := startIdx; i < endIdx; i++ {
		entry := m.entries[m.filtered[i]]
		if entry.Section != lastSection && m.searchQuery == "" {
			lines = append(lines, sectionStyle.Render(entry.Section))
			lastSection = entry.Section
		}
		lines = append(lines, m.renderEntry(entry, i == m.selected))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m QueuesModel) renderEntry(entry queueEntry, selected bool) string {
	n := m.repo.Note(entry.ID)

	prefix := "  "
	style := listItemStyle
	if selected {
		prefix = "> "
		style = selectedStyle
	}
	if n.Archived || n.IsCompleted || n.IsCancelled {
		style = mutedStyle
		if selected {
			style = selectedStyle
		}
	}

	line := prefix + style.Render(n.Title)
	switch {
	case n.IsCompleted || n.IsCancelled:
		// next review suppressed for closed notes
	case n.ToReview:
		line += dueStyle.Render("  due " + notes.DisplayDate(n.NextReview))
	case !n.NextReview.IsZero():
		line += dateStyle.Render("  next " + notes.DisplayDate(n.NextReview))
	}
	line += mutedStyle.Render(fmt.Sprintf("  %d/%d/%d",
		n.OpenCount, n.WaitingCount, n.DoneCount))
	return line
}
