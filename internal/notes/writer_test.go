package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateReviewedTag_ReplacesExisting(t *testing.T) {
	today := date(2021, 9, 20)
	line := UpdateReviewedTag("#active @review(2w) @reviewed(2021-09-01)", today)
	require.Equal(t, "#active @review(2w) @reviewed(2021-09-20)", line)
}

func TestUpdateReviewedTag_AppendsWhenMissing(t *testing.T) {
	line := UpdateReviewedTag("#active @review(2w)", date(2021, 9, 20))
	require.Equal(t, "#active @review(2w) @reviewed(2021-09-20)", line)
}

func TestUpdateReviewedTag_Idempotent(t *testing.T) {
	today := date(2021, 9, 20)
	once := UpdateReviewedTag("#active @reviewed(2021-01-01) @reviewed(2021-02-02)", today)
	twice := UpdateReviewedTag(once, today)
	require.Equal(t, once, twice)
	require.Equal(t, 1, strings.Count(twice, "@reviewed("))
}

func TestUpdateReviewedTag_EmptyLine(t *testing.T) {
	require.Equal(t, "@reviewed(2021-09-20)", UpdateReviewedTag("", date(2021, 9, 20)))
}

func TestRewriteReviewedDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	raw := "# Title\n#active @review(1w) @reviewed(2021-09-01)\n- [x] done thing\nbody text\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	today := date(2021, 9, 20)
	require.NoError(t, RewriteReviewedDate(path, today))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(content), "\n")
	require.Equal(t, "# Title", lines[0])
	require.Equal(t, "#active @review(1w) @reviewed(2021-09-20)", lines[1])
	require.Equal(t, "- [x] done thing", lines[2])
	require.Equal(t, "body text", lines[3])

	// second rewrite with the same date changes nothing
	require.NoError(t, RewriteReviewedDate(path, today))
	again, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(content), string(again))
}

func TestRewriteReviewedDate_CRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	raw := "# Title\r\n#active @review(1w) @reviewed(2021-09-01)\r\nbody\r\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	require.NoError(t, RewriteReviewedDate(path, date(2021, 9, 20)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# Title\r\n#active @review(1w) @reviewed(2021-09-20)\r\nbody\r\n",
		string(content), "line endings preserved, only the metadata line changes")
	require.NotContains(t, string(content), "\r @reviewed")
}

func TestRewriteReviewedDate_ShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.txt")
	require.NoError(t, os.WriteFile(path, []byte("just a title"), 0o644))
	require.Error(t, RewriteReviewedDate(path, date(2021, 9, 20)))
}

func TestRewriteReviewedDate_MissingFile(t *testing.T) {
	err := RewriteReviewedDate(filepath.Join(t.TempDir(), "absent.txt"), date(2021, 9, 20))
	require.Error(t, err)
}
