package review

import (
	"time"

	"revu/internal/notes"
)

// Classify derives the lifecycle flags and the next review date for a
// parsed note. Pure: no I/O, no logging; an invalid interval comes back
// as an error for the caller to report.
//
// Precedence: a completed date or a cancelled/someday tag always wins
// over #active and any review cadence.
func Classify(n *notes.Note, today time.Time) error {
	n.IsCompleted = !n.CompletedDate.IsZero()
	n.IsCancelled = n.CancelledTag
	n.IsActive = (n.ActiveTag || n.ReviewInterval != nil) &&
		!n.IsCancelled && !n.IsCompleted

	n.NextReview = time.Time{}
	n.ToReview = false
	if !n.IsActive || n.ReviewInterval == nil {
		return nil
	}

	next, err := NextReview(n.ReviewedDate, *n.ReviewInterval, today)
	if err != nil {
		return err
	}
	n.NextReview = next
	n.ToReview = !next.After(today)
	return nil
}
