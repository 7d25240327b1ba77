package store

import (
	"sort"
	"time"

	"revu/internal/logs"
	"revu/internal/match"
	"revu/internal/notes"
	"revu/internal/review"
)

// Repository owns the full parsed note collection and the queue views
// over it. Queues hold note ids into the arena, never copies, so every
// view observes the same mutable state. Rebuilt from scratch on every
// rescan.
type Repository struct {
	notes []*notes.Note // arena; index == Note.ID
	today time.Time

	all       []int // by due date ascending, missing dates sort as today
	due       []int // to-review notes by next review date ascending
	active    []int // remaining active notes by title
	completed []int // scan order
	cancelled []int // scan order
}

// Load scans, classifies and partitions in one shot.
func Load(dirs []string, exts []string, today time.Time) *Repository {
	return Build(ScanDirs(dirs, exts), today)
}

// Build classifies a freshly scanned collection and partitions it into
// queues. Classification runs once, from the snapshot read at scan
// time.
func Build(scanned []*notes.Note, today time.Time) *Repository {
	r := &Repository{notes: scanned, today: today}
	for _, n := range scanned {
		if err := review.Classify(n, today); err != nil {
			logs.Logger.Printf("Warning: %s: %v", n.FilePath, err)
		}
	}
	r.partition()
	return r
}

func (r *Repository) partition() {
	r.all = r.all[:0]
	r.due = r.due[:0]
	r.active = r.active[:0]
	r.completed = r.completed[:0]
	r.cancelled = r.cancelled[:0]

	for _, n := range r.notes {
		r.all = append(r.all, n.ID)
		if n.IsCompleted {
			r.completed = append(r.completed, n.ID)
		}
		if n.IsCancelled {
			r.cancelled = append(r.cancelled, n.ID)
		}
		switch {
		case n.ToReview:
			r.due = append(r.due, n.ID)
		case n.IsActive:
			r.active = append(r.active, n.ID)
		}
	}

	r.sortByDate(r.all, func(n *notes.Note) time.Time { return n.DueDate })
	r.sortByDate(r.due, func(n *notes.Note) time.Time { return n.NextReview })
	sort.SliceStable(r.active, func(i, j int) bool {
		return r.notes[r.active[i]].Title < r.notes[r.active[j]].Title
	})
}

// sortByDate orders ids by the keyed date ascending with title as the
// tiebreak. Absent dates interleave as if they were today.
func (r *Repository) sortByDate(ids []int, key func(*notes.Note) time.Time) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := r.notes[ids[i]], r.notes[ids[j]]
		da, db := orToday(key(a), r.today), orToday(key(b), r.today)
		if !da.Equal(db) {
			return da.Before(db)
		}
		return a.Title < b.Title
	})
}

func orToday(t, today time.Time) time.Time {
	if t.IsZero() {
		return today
	}
	return t
}

// Note returns the note for an id, nil when out of range.
func (r *Repository) Note(id int) *notes.Note {
	if id < 0 || id >= len(r.notes) {
		return nil
	}
	return r.notes[id]
}

func (r *Repository) Len() int             { return len(r.notes) }
func (r *Repository) All() []int           { return r.all }
func (r *Repository) DueQueue() []int      { return r.due }
func (r *Repository) ActiveQueue() []int   { return r.active }
func (r *Repository) CompletedQueue() []int { return r.completed }
func (r *Repository) CancelledQueue() []int { return r.cancelled }

// Find resolves a search fragment to a note id by bigram similarity
// over all titles. ok is false when nothing matches at all.
func (r *Repository) Find(query string) (int, bool) {
	titles := make([]string, len(r.notes))
	for i, n := range r.notes {
		titles[i] = n.Title
	}
	id := match.BestIndex(query, titles)
	if id < 0 {
		return 0, false
	}
	return id, true
}

// MarkReviewed records a review of the note as of today: the reviewed
// date is set, the next review date recomputed, and the id moved from
// the due queue to the end of the active queue. The destination is not
// resorted mid-session; the next full rebuild restores order.
func (r *Repository) MarkReviewed(id int, today time.Time) {
	n := r.Note(id)
	if n == nil {
		return
	}
	n.ReviewedDate = today
	n.NextReview = time.Time{}
	if n.IsActive && n.ReviewInterval != nil {
		next, err := review.NextReview(today, *n.ReviewInterval, today)
		if err != nil {
			logs.Logger.Printf("Warning: %s: %v", n.FilePath, err)
		} else {
			n.NextReview = next
		}
	}
	n.ToReview = n.IsActive && !n.NextReview.IsZero() && !n.NextReview.After(today)

	for i, d := range r.due {
		if d == id {
			r.due = append(r.due[:i], r.due[i+1:]...)
			break
		}
	}
	if n.IsActive && !contains(r.active, id) {
		r.active = append(r.active, id)
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
