package notes

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

var multiSpaceRe = regexp.MustCompile(`  +`)

// RewriteReviewedDate replaces the @reviewed(...) tag on the metadata
// line of the file with a fresh one for today and writes the file back
// in place. Every other line is emitted unchanged. The file is re-read
// here rather than rewritten from a parsed note, so an external edit
// made since the scan is not clobbered.
func RewriteReviewedDate(path string, today time.Time) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	text := string(content)
	crlf := strings.Contains(text, "\r\n")
	if crlf {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return fmt.Errorf("rewrite %s: no metadata line", path)
	}

	lines[1] = UpdateReviewedTag(lines[1], today)

	out := strings.Join(lines, "\n")
	if crlf {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// UpdateReviewedTag strips any @reviewed(...) occurrences from a
// metadata line and appends a single tag for the given date. Removal is
// idempotent against accidental duplicate tags; space runs left behind
// by the edit collapse to one space.
func UpdateReviewedTag(line string, today time.Time) string {
	line = reviewedRe.ReplaceAllString(line, "")
	line = multiSpaceRe.ReplaceAllString(line, " ")
	line = strings.TrimRight(line, " ")
	tag := fmt.Sprintf("@reviewed(%s)", today.Format("2006-01-02"))
	if line == "" {
		return tag
	}
	return line + " " + tag
}
