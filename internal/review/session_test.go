package review

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"revu/internal/notes"
)

type fakeRepo struct {
	byID     map[int]*notes.Note
	due      []int
	reviewed []int
}

func (f *fakeRepo) DueQueue() []int { return f.due }

func (f *fakeRepo) Note(id int) *notes.Note { return f.byID[id] }

func (f *fakeRepo) Find(query string) (int, bool) {
	for id, n := range f.byID {
		if strings.Contains(strings.ToLower(n.Title), strings.ToLower(query)) {
			return id, true
		}
	}
	return 0, false
}

func (f *fakeRepo) MarkReviewed(id int, today time.Time) {
	f.reviewed = append(f.reviewed, id)
	for i, d := range f.due {
		if d == id {
			f.due = append(f.due[:i], f.due[i+1:]...)
			break
		}
	}
}

type fakeViewer struct {
	opened []string
}

func (v *fakeViewer) Open(title string) { v.opened = append(v.opened, title) }

func writeNoteFile(t *testing.T, dir, name, raw string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	return path
}

func newFixture(t *testing.T) (*fakeRepo, *fakeViewer, *Session) {
	dir := t.TempDir()
	a := &notes.Note{ID: 0, Title: "Website Refresh",
		FilePath: writeNoteFile(t, dir, "a.txt", "# Website Refresh\n#active @review(2w)\n")}
	b := &notes.Note{ID: 1, Title: "Quarterly Goals",
		FilePath: writeNoteFile(t, dir, "b.txt", "# Quarterly Goals\n#goal @review(1q)\n")}

	repo := &fakeRepo{byID: map[int]*notes.Note{0: a, 1: b}, due: []int{0, 1}}
	view := &fakeViewer{}
	sess := NewSession(repo, view, date(2021, 9, 20))
	return repo, view, sess
}

func TestSession_NextOpensViewerAndWaits(t *testing.T) {
	_, view, sess := newFixture(t)

	require.Equal(t, StateIdle, sess.State())
	n, ok := sess.Next()
	require.True(t, ok)
	require.Equal(t, "Website Refresh", n.Title)
	require.Equal(t, StateAwaitingEdit, sess.State())
	require.Equal(t, []string{"Website Refresh"}, view.opened)

	// a second pop is refused until the pending review resolves
	_, ok = sess.Next()
	require.False(t, ok)
}

func TestSession_AcknowledgeCommits(t *testing.T) {
	repo, _, sess := newFixture(t)

	n, ok := sess.Next()
	require.True(t, ok)
	require.NoError(t, sess.Acknowledge())
	require.Equal(t, StateIdle, sess.State())
	require.Nil(t, sess.Current())
	require.Equal(t, []int{0}, repo.reviewed)

	content, err := os.ReadFile(n.FilePath)
	require.NoError(t, err)
	require.Contains(t, string(content), "@reviewed(2021-09-20)")

	// next pop serves the new queue head
	n, ok = sess.Next()
	require.True(t, ok)
	require.Equal(t, "Quarterly Goals", n.Title)
}

func TestSession_WriteFailureStillAdvances(t *testing.T) {
	repo, _, sess := newFixture(t)
	repo.byID[0].FilePath = filepath.Join(t.TempDir(), "gone", "missing.txt")

	_, ok := sess.Next()
	require.True(t, ok)
	err := sess.Acknowledge()
	require.Error(t, err)

	// the review still happened in memory
	require.Equal(t, []int{0}, repo.reviewed)
	require.Equal(t, StateIdle, sess.State())
	require.Equal(t, []int{1}, repo.due)
}

func TestSession_Skip(t *testing.T) {
	repo, _, sess := newFixture(t)

	_, ok := sess.Next()
	require.True(t, ok)
	sess.Skip()
	require.Equal(t, StateIdle, sess.State())
	require.Empty(t, repo.reviewed)
	require.Equal(t, []int{0, 1}, repo.due, "skipping must not touch the queue")
}

func TestSession_SelectByQuery(t *testing.T) {
	_, view, sess := newFixture(t)

	n, ok := sess.Select("quarterly")
	require.True(t, ok)
	require.Equal(t, "Quarterly Goals", n.Title)
	require.Equal(t, []string{"Quarterly Goals"}, view.opened)
}

func TestSession_SelectNoMatch(t *testing.T) {
	_, _, sess := newFixture(t)

	_, ok := sess.Select("zzzz")
	require.False(t, ok)
	require.Equal(t, StateIdle, sess.State())
}

func TestSession_AcknowledgeWhenIdleIsNoop(t *testing.T) {
	repo, _, sess := newFixture(t)
	require.NoError(t, sess.Acknowledge())
	require.Empty(t, repo.reviewed)
}

func TestSession_EmptyQueue(t *testing.T) {
	repo, _, sess := newFixture(t)
	repo.due = nil
	_, ok := sess.Next()
	require.False(t, ok)
}
