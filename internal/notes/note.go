package notes

import (
	"fmt"
	"strings"
	"time"
)

// Interval is a review cadence: a count of units between reviews.
// Unit is one of "b" (business day), "d", "w", "m", "q", "y",
// lower-cased at parse time.
type Interval struct {
	Count int
	Unit  string
}

func (iv Interval) String() string {
	return fmt.Sprintf("%d%s", iv.Count, iv.Unit)
}

// Note is the parsed record for one project/goal file. Queues in the
// repository reference notes by ID; the note itself is never copied.
type Note struct {
	ID       int
	FilePath string
	Title    string

	// MetadataRaw is the unparsed second line, kept for in-place rewriting.
	MetadataRaw string

	StartDate     time.Time
	DueDate       time.Time
	CompletedDate time.Time
	ReviewedDate  time.Time

	ReviewInterval *Interval

	// NextReview is computed by the scheduler, never parsed from the file.
	NextReview time.Time

	IsActive    bool
	IsCompleted bool
	IsCancelled bool
	IsProject   bool
	IsGoal      bool
	Archived    bool
	ToReview    bool

	OpenCount    int
	WaitingCount int
	DoneCount    int

	// Raw tag state from the metadata line, inputs to classification.
	ActiveTag    bool
	CancelledTag bool
}

// DisplayDate formats a date for listings, blank when unset.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Summary returns a short one-line description used by logs and the CLI.
func (n *Note) Summary() string {
	var parts []string
	parts = append(parts, n.Title)
	if n.IsProject {
		parts = append(parts, "#project")
	}
	if n.IsGoal {
		parts = append(parts, "#goal")
	}
	if n.ReviewInterval != nil {
		parts = append(parts, "@review("+n.ReviewInterval.String()+")")
	}
	return strings.Join(parts, " ")
}
