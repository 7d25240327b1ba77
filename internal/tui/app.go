package tui

import (
	"time"

	"revu/internal/config"
	"revu/internal/review"
	"revu/internal/store"
	"revu/internal/tui/messages"
	"revu/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Re-export for convenience
type ViewType = messages.ViewType

const (
	ViewQueues = messages.ViewQueues
	ViewReview = messages.ViewReview
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	repo        *store.Repository
	view        *viewer.Viewer
	today       time.Time
	currentView ViewType
	queuesView  QueuesModel
	reviewView  ReviewModel
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, repo *store.Repository, today time.Time) AppModel {
	v := viewer.New(cfg.ViewerCmd)
	sess := review.NewSession(repo, v, today)
	m := AppModel{
		cfg:         cfg,
		repo:        repo,
		view:        v,
		today:       today,
		currentView: ViewQueues,
		queuesView:  NewQueuesModel(repo, v),
		reviewView:  NewReviewModel(sess, cfg),
	}
	if cfg.DefaultView == "review" && m.reviewView.Start(-1) {
		m.currentView = ViewReview
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // status bar
		m.queuesView.SetSize(msg.Width, contentHeight)
		m.reviewView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewQueues {
			m.queuesView.SetData(m.repo)
		}
		return m, nil

	case messages.StartReviewMsg:
		if m.reviewView.Start(msg.ID) {
			m.currentView = ViewReview
		}
		return m, nil

	case messages.DataRefreshMsg:
		m.repo = store.Load(m.cfg.Dirs, m.cfg.Extensions, m.today)
		sess := review.NewSession(m.repo, m.view, m.today)
		m.queuesView.SetData(m.repo)
		m.reviewView = NewReviewModel(sess, m.cfg)
		m.reviewView.SetSize(m.width, m.height-3)
		m.currentView = ViewQueues
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewQueues:
		m.queuesView, cmd = m.queuesView.Update(msg)
	case ViewReview:
		m.reviewView, cmd = m.reviewView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content, hint string
	switch m.currentView {
	case ViewReview:
		content = m.reviewView.View()
		hint = m.reviewView.HintText()
	default:
		content = m.queuesView.View()
		hint = m.queuesView.HintText()
	}

	body := lipgloss.NewStyle().Height(m.height - 2).Render(content)
	status := statusBarStyle.Width(m.width).Render(hint)
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
