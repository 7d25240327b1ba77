// Package export emits the summary rows consumed by external reporting
// tools: one comma-separated row per note with quoted title and
// filename, task counts, the four date fields and the interval.
package export

import (
	"fmt"
	"io"

	"revu/internal/notes"
	"revu/internal/store"
)

// WriteSummary writes the full collection in due-date order.
func WriteSummary(w io.Writer, repo *store.Repository) error {
	for _, id := range repo.All() {
		if err := writeRow(w, repo.Note(id)); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, n *notes.Note) error {
	interval := ""
	if n.ReviewInterval != nil {
		interval = n.ReviewInterval.String()
	}
	_, err := fmt.Fprintf(w, "%q,%q,%d,%d,%d,%s,%s,%s,%s,%s\n",
		n.Title, n.FilePath,
		n.OpenCount, n.WaitingCount, n.DoneCount,
		notes.DisplayDate(n.StartDate),
		notes.DisplayDate(n.DueDate),
		notes.DisplayDate(n.CompletedDate),
		notes.DisplayDate(n.ReviewedDate),
		interval)
	return err
}
