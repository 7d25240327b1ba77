package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"revu/internal/config"
	"revu/internal/export"
	"revu/internal/notes"
	"revu/internal/review"
	"revu/internal/store"
	"revu/internal/viewer"
)

func runList(repo *store.Repository) int {
	printQueue(repo, "Ready to review", repo.DueQueue())
	printQueue(repo, "Other active", repo.ActiveQueue())
	printQueue(repo, "Completed", repo.CompletedQueue())
	printQueue(repo, "Cancelled", repo.CancelledQueue())
	fmt.Printf("%d note(s)\n", repo.Len())
	return 0
}

func printQueue(repo *store.Repository, heading string, ids []int) {
	fmt.Printf("%s (%d)\n", heading, len(ids))
	for _, id := range ids {
		printNoteLine(repo.Note(id))
	}
	fmt.Println()
}

func printNoteLine(n *notes.Note) {
	var cols []string
	switch {
	case n.ToReview:
		cols = append(cols, "due "+notes.DisplayDate(n.NextReview))
	case !n.DueDate.IsZero() && !n.IsCompleted && !n.IsCancelled:
		cols = append(cols, "due "+notes.DisplayDate(n.DueDate))
	case n.IsCompleted:
		cols = append(cols, "done "+notes.DisplayDate(n.CompletedDate))
	}
	cols = append(cols, fmt.Sprintf("%d open, %d waiting, %d done",
		n.OpenCount, n.WaitingCount, n.DoneCount))
	fmt.Printf("  %-42s %s\n", n.Title, strings.Join(cols, "  "))
}

func runReview(args []string, repo *store.Repository, cfg *config.Config) int {
	today := startOfToday()
	sess := review.NewSession(repo, viewer.New(cfg.ViewerCmd), today)

	var n *notes.Note
	var ok bool
	if len(args) > 0 {
		query := strings.Join(args, " ")
		if n, ok = sess.Select(query); !ok {
			fmt.Fprintf(os.Stderr, "No note matches %q\n", query)
			return 1
		}
	} else if n, ok = sess.Next(); !ok {
		fmt.Println("Nothing is due for review.")
		return 0
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printNoteDetail(n)
		fmt.Print("Reviewed? [enter=done  s=skip  q=quit] ")
		line, err := reader.ReadString('\n')
		if err != nil {
			sess.Skip()
			fmt.Println()
			return 0
		}
		switch strings.TrimSpace(line) {
		case "", "y":
			if err := sess.Acknowledge(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not update reviewed date: %v\n", err)
			}
			runPostReview(cfg)
		case "s":
			sess.Skip()
		case "q":
			sess.Skip()
			return 0
		default:
			continue
		}
		if n, ok = sess.Next(); !ok {
			fmt.Println("Review queue empty.")
			return 0
		}
	}
}

func runPostReview(cfg *config.Config) {
	if len(cfg.PostReviewCmd) == 0 {
		return
	}
	if err := viewer.RunTool(cfg.PostReviewCmd[0], cfg.PostReviewCmd[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: post-review command failed: %v\n", err)
	}
}

func printNoteDetail(n *notes.Note) {
	fmt.Printf("\n%s\n", n.Title)
	fmt.Printf("  %s\n", n.FilePath)
	if n.ReviewInterval != nil {
		fmt.Printf("  review every %s, last %s\n",
			n.ReviewInterval, dateOrNever(n.ReviewedDate))
	}
	fmt.Printf("  %d open, %d waiting, %d done\n",
		n.OpenCount, n.WaitingCount, n.DoneCount)
}

func dateOrNever(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02")
}

func runFind(args []string, repo *store.Repository) int {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		fmt.Fprintln(os.Stderr, "Error: search query required")
		fmt.Fprintln(os.Stderr, "Usage: revu find <query>")
		return 1
	}
	id, ok := repo.Find(query)
	if !ok {
		fmt.Println("No match.")
		return 0
	}
	n := repo.Note(id)
	fmt.Printf("%s\n  %s\n", n.Title, n.FilePath)
	return 0
}

func runExport(args []string, repo *store.Repository) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	outPath := fs.String("o", "", "Write summary to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outPath, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteSummary(out, repo); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing summary: %v\n", err)
		return 1
	}
	return 0
}

// startOfToday truncates to the local calendar day so date comparisons
// line up with parsed note dates.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
