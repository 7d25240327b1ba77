package notes

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	startRe     = regexp.MustCompile(`@start\(([^)]*)\)`)
	dueRe       = regexp.MustCompile(`@(?:due|end)\(([^)]*)\)`)
	completedRe = regexp.MustCompile(`@(?:completed|finished)\(([^)]*)\)`)
	reviewedRe  = regexp.MustCompile(`@reviewed\(([^)]*)\)`)
	intervalRe  = regexp.MustCompile(`(?i)@review\((\d+)([bdwmqy])\)`)

	taskRe = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
)

// Parse builds a Note from the raw text of a file. Returns the note and
// true when the file had at least a title line and a metadata line.
// Shorter files yield a usable placeholder note and false; the caller
// logs and moves on.
func Parse(content []byte, path string) (Note, bool) {
	n := Note{
		FilePath: path,
		Title:    titleFromFilename(path),
	}

	lines := splitLines(content)
	if len(lines) > 0 {
		if t := parseTitle(lines[0]); t != "" {
			n.Title = t
		}
	}
	if len(lines) < 2 {
		return n, false
	}

	n.MetadataRaw = lines[1]
	parseMetadata(lines[1], &n)

	for _, line := range lines[2:] {
		countTaskLine(line, &n)
	}

	return n, true
}

// splitLines splits file content into lines without a phantom final
// line for a trailing newline.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func parseTitle(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// parseMetadata applies the independent field extractions to the
// metadata line. Every field is optional; a fragment that fails to
// parse leaves its attribute unset.
func parseMetadata(line string, n *Note) {
	if m := startRe.FindStringSubmatch(line); m != nil {
		if d, ok := parseDate(m[1]); ok {
			n.StartDate = d
		}
	}
	if m := dueRe.FindStringSubmatch(line); m != nil {
		if d, ok := parseDate(m[1]); ok {
			n.DueDate = d
		}
	}
	if m := completedRe.FindStringSubmatch(line); m != nil {
		if d, ok := parseDate(m[1]); ok {
			n.CompletedDate = d
		}
	}
	if m := reviewedRe.FindStringSubmatch(line); m != nil {
		if d, ok := parseDate(m[1]); ok {
			n.ReviewedDate = d
		}
	}
	if m := intervalRe.FindStringSubmatch(line); m != nil {
		count, err := strconv.Atoi(m[1])
		if err == nil {
			n.ReviewInterval = &Interval{Count: count, Unit: strings.ToLower(m[2])}
		}
	}

	n.ActiveTag = strings.Contains(line, "#active")
	n.Archived = strings.Contains(line, "#archive")
	n.IsProject = strings.Contains(line, "#project")
	n.IsGoal = strings.Contains(line, "#goal")
	n.CancelledTag = strings.Contains(line, "#cancelled") || strings.Contains(line, "#someday")
}

// parseDate accepts 2-4 digit groups separated by '.', '-' or '/',
// 6-10 characters in total. Year-first when the first group has four
// digits, day-first when the last one does; bare two-digit years map
// into 2000-2099.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 6 || len(s) > 10 {
		return time.Time{}, false
	}
	norm := strings.NewReplacer(".", "-", "/", "-").Replace(s)
	parts := strings.Split(norm, "-")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" {
			return time.Time{}, false
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = v
	}

	var y, m, d int
	switch {
	case len(parts[0]) == 4:
		y, m, d = nums[0], nums[1], nums[2]
	case len(parts[2]) == 4:
		d, m, y = nums[0], nums[1], nums[2]
	default:
		y, m, d = nums[0], nums[1], nums[2]
		if y < 100 {
			y += 2000
		}
	}

	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// countTaskLine increments exactly one of the done/waiting/open counts
// for a recognized task bullet. Cancelled tasks and non-bullet lines
// count toward nothing.
func countTaskLine(line string, n *Note) {
	m := taskRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	rest := m[1]
	switch {
	case strings.HasPrefix(rest, "[x]") || strings.HasPrefix(rest, "[X]") || strings.Contains(rest, "@done"):
		n.DoneCount++
	case strings.HasPrefix(rest, "[-]") || strings.Contains(rest, "@cancelled"):
		// skipped task
	case strings.Contains(rest, "#waiting"):
		n.WaitingCount++
	default:
		n.OpenCount++
	}
}

// titleFromFilename derives a placeholder title for files too short to
// carry one.
func titleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Untitled"
	}
	return name
}
