package review

import (
	"time"

	"revu/internal/notes"
)

// State is the review session's position in its cycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingEdit
	StateCommitting
)

// Viewer hands a note title to the external viewing application.
// Fire-and-forget; the session never depends on its result.
type Viewer interface {
	Open(title string)
}

// Repository is the slice of the note store the session needs: the due
// queue, note lookup, fuzzy title resolution, and the post-review queue
// migration.
type Repository interface {
	DueQueue() []int
	Note(id int) *notes.Note
	Find(query string) (int, bool)
	MarkReviewed(id int, today time.Time)
}

// Session walks the operator through the due queue one note at a time.
// It blocks on nothing itself; the caller supplies the operator
// acknowledgment by calling Acknowledge.
type Session struct {
	repo    Repository
	viewer  Viewer
	today   time.Time
	state   State
	current int
}

func NewSession(repo Repository, viewer Viewer, today time.Time) *Session {
	return &Session{repo: repo, viewer: viewer, today: today, current: -1}
}

func (s *Session) State() State { return s.state }

// Remaining is the current due queue.
func (s *Session) Remaining() []int { return s.repo.DueQueue() }

// Current returns the note under review, nil when idle.
func (s *Session) Current() *notes.Note {
	if s.current < 0 {
		return nil
	}
	return s.repo.Note(s.current)
}

// Next pops the head of the due queue and hands it to the viewer.
// Returns false when the session is mid-review or nothing is due.
func (s *Session) Next() (*notes.Note, bool) {
	if s.state != StateIdle {
		return nil, false
	}
	due := s.repo.DueQueue()
	if len(due) == 0 {
		return nil, false
	}
	return s.begin(due[0])
}

// Select starts a review of the note best matching the query instead of
// the queue head.
func (s *Session) Select(query string) (*notes.Note, bool) {
	if s.state != StateIdle {
		return nil, false
	}
	id, ok := s.repo.Find(query)
	if !ok {
		return nil, false
	}
	return s.begin(id)
}

// Start begins a review of a specific note by id.
func (s *Session) Start(id int) (*notes.Note, bool) {
	if s.state != StateIdle || s.repo.Note(id) == nil {
		return nil, false
	}
	return s.begin(id)
}

func (s *Session) begin(id int) (*notes.Note, bool) {
	s.current = id
	s.state = StateAwaitingEdit
	n := s.repo.Note(id)
	if s.viewer != nil {
		s.viewer.Open(n.Title)
	}
	return n, true
}

// Acknowledge commits the pending review: the reviewed date is
// rewritten on disk, the next review date recomputed from today, and
// the note migrated from the due queue to the active queue. The
// in-memory migration proceeds even when the file write fails; the
// write error is returned for the operator to see.
func (s *Session) Acknowledge() error {
	if s.state != StateAwaitingEdit {
		return nil
	}
	s.state = StateCommitting
	n := s.repo.Note(s.current)
	err := notes.RewriteReviewedDate(n.FilePath, s.today)
	s.repo.MarkReviewed(s.current, s.today)
	s.current = -1
	s.state = StateIdle
	return err
}

// Skip abandons the pending review and returns to idle without
// committing anything.
func (s *Session) Skip() {
	if s.state != StateAwaitingEdit {
		return
	}
	s.current = -1
	s.state = StateIdle
}

// Reopen hands the current note to the viewer again.
func (s *Session) Reopen() {
	if s.state != StateAwaitingEdit || s.viewer == nil {
		return
	}
	s.viewer.Open(s.repo.Note(s.current).Title)
}
