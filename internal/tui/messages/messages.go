package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewQueues ViewType = iota
	ViewReview
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// StartReviewMsg requests starting a review of a specific note, or of
// the head of the due queue when ID is negative
type StartReviewMsg struct {
	ID int
}

// DataRefreshMsg signals that the note collection should be rescanned
type DataRefreshMsg struct{}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
