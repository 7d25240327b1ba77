package tui

import (
	"fmt"

	"revu/internal/config"
	"revu/internal/notes"
	"revu/internal/review"
	"revu/internal/tui/messages"
	"revu/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ReviewModel drives one review session over the due queue.
type ReviewModel struct {
	sess    *review.Session
	cfg     *config.Config
	preview string
	status  string
	isErr   bool
	width   int
	height  int
}

func NewReviewModel(sess *review.Session, cfg *config.Config) ReviewModel {
	return ReviewModel{sess: sess, cfg: cfg}
}

// SetSize updates view dimensions.
func (m *ReviewModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// HintText returns the raw hint string for the review view.
func (m ReviewModel) HintText() string {
	return "enter:reviewed  s:skip  o:open again  esc:back"
}

// Start begins reviewing a specific note, or the due queue head when id
// is negative. Returns false when there is nothing to review.
func (m *ReviewModel) Start(id int) bool {
	var n *notes.Note
	var ok bool
	if id < 0 {
		n, ok = m.sess.Next()
	} else {
		n, ok = m.sess.Start(id)
	}
	if !ok {
		return false
	}
	m.preview = loadPreview(n.FilePath, 3)
	m.status = ""
	m.isErr = false
	return true
}

func (m ReviewModel) Update(msg tea.Msg) (ReviewModel, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		if err := m.sess.Acknowledge(); err != nil {
			m.status = fmt.Sprintf("Reviewed, but the file update failed: %v", err)
			m.isErr = true
		} else {
			m.status = "Reviewed."
			m.isErr = false
		}
		m.runPostReview()
		if !m.Start(-1) {
			return m, messages.SwitchView(messages.ViewQueues)
		}

	case "s":
		m.sess.Skip()
		if !m.Start(-1) {
			return m, messages.SwitchView(messages.ViewQueues)
		}

	case "o":
		m.sess.Reopen()

	case "esc", "q":
		m.sess.Skip()
		return m, messages.SwitchView(messages.ViewQueues)
	}
	return m, nil
}

func (m *ReviewModel) runPostReview() {
	if len(m.cfg.PostReviewCmd) == 0 {
		return
	}
	if err := viewer.RunTool(m.cfg.PostReviewCmd[0], m.cfg.PostReviewCmd[1:]); err != nil {
		m.status = fmt.Sprintf("Post-review command failed: %v", err)
		m.isErr = true
	}
}

func (m ReviewModel) View() string {
	n := m.sess.Current()
	if n == nil {
		return mutedStyle.Render("Nothing under review.")
	}

	var lines []string
	lines = append(lines, titleStyle.Render("Reviewing: "+n.Title))
	lines = append(lines, mutedStyle.Render("  "+n.FilePath))
	lines = append(lines, "")

	if n.ReviewInterval != nil {
		last := "never"
		if !n.ReviewedDate.IsZero() {
			last = notes.DisplayDate(n.ReviewedDate)
		}
		lines = append(lines, fmt.Sprintf("  Every %s, last reviewed %s", n.ReviewInterval, last))
	}
	if !n.DueDate.IsZero() {
		lines = append(lines, "  Due "+notes.DisplayDate(n.DueDate))
	}
	lines = append(lines, fmt.Sprintf("  Tasks: %d open, %d waiting, %d done",
		n.OpenCount, n.WaitingCount, n.DoneCount))

	if m.preview != "" {
		lines = append(lines, "")
		lines = append(lines, mutedStyle.Render("  "+m.preview))
	}

	if m.status != "" {
		lines = append(lines, "")
		if m.isErr {
			lines = append(lines, errorStyle.Render("  "+m.status))
		} else {
			lines = append(lines, okStyle.Render("  "+m.status))
		}
	}

	lines = append(lines, "")
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("  %d note(s) still due", len(m.sess.Remaining()))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
