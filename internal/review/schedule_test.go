package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"revu/internal/notes"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestNextReview_CalendarUnits(t *testing.T) {
	ref := date(2021, 9, 1)
	today := date(2021, 9, 20)

	cases := []struct {
		iv   notes.Interval
		want time.Time
	}{
		{notes.Interval{Count: 1, Unit: "d"}, date(2021, 9, 2)},
		{notes.Interval{Count: 2, Unit: "w"}, date(2021, 9, 15)},
		{notes.Interval{Count: 1, Unit: "m"}, ref.AddDate(0, 0, 30)},
		{notes.Interval{Count: 1, Unit: "q"}, ref.AddDate(0, 0, 91)},
		{notes.Interval{Count: 1, Unit: "y"}, ref.AddDate(0, 0, 365)},
		{notes.Interval{Count: 3, Unit: "m"}, ref.AddDate(0, 0, 90)},
	}
	for _, c := range cases {
		got, err := NextReview(ref, c.iv, today)
		require.NoError(t, err, c.iv.String())
		require.True(t, got.Equal(c.want), "%s: got %v, want %v", c.iv, got, c.want)
	}
}

func TestNextReview_NeverReviewedIsDueToday(t *testing.T) {
	today := date(2021, 9, 20)
	got, err := NextReview(time.Time{}, notes.Interval{Count: 4, Unit: "w"}, today)
	require.NoError(t, err)
	require.True(t, got.Equal(today))
}

func TestNextReview_UnknownUnit(t *testing.T) {
	_, err := NextReview(date(2021, 9, 1), notes.Interval{Count: 2, Unit: "x"}, date(2021, 9, 20))
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestBusinessDays_SkipsWeekend(t *testing.T) {
	// Wednesday + 5 business days crosses exactly one weekend
	got := addBusinessDays(date(2021, 9, 1), 5)
	require.True(t, got.Equal(date(2021, 9, 8)), "got %v", got)
}

func TestBusinessDays_WeekendReferenceRollsToMonday(t *testing.T) {
	// Saturday + 1 business day resolves to the next Monday
	got := addBusinessDays(date(2021, 9, 4), 1)
	require.True(t, got.Equal(date(2021, 9, 6)), "got %v", got)

	// Sunday behaves the same
	got = addBusinessDays(date(2021, 9, 5), 1)
	require.True(t, got.Equal(date(2021, 9, 6)), "got %v", got)
}

func TestBusinessDays_Weekdays(t *testing.T) {
	cases := []struct {
		ref   time.Time
		count int
		want  time.Time
	}{
		{date(2021, 9, 6), 1, date(2021, 9, 7)},   // Mon + 1 = Tue
		{date(2021, 9, 6), 4, date(2021, 9, 10)},  // Mon + 4 = Fri
		{date(2021, 9, 6), 5, date(2021, 9, 13)},  // Mon + 5 = next Mon
		{date(2021, 9, 10), 1, date(2021, 9, 13)}, // Fri + 1 = Mon
		{date(2021, 9, 10), 10, date(2021, 9, 24)},
	}
	for _, c := range cases {
		got := addBusinessDays(c.ref, c.count)
		require.True(t, got.Equal(c.want), "%v + %db: got %v, want %v", c.ref, c.count, got, c.want)
	}
}

func TestBusinessDays_NegativeCounts(t *testing.T) {
	cases := []struct {
		ref   time.Time
		count int
		want  time.Time
	}{
		{date(2021, 9, 6), -1, date(2021, 9, 3)},  // Mon - 1 = Fri
		{date(2021, 9, 10), -1, date(2021, 9, 9)}, // Fri - 1 = Thu
		{date(2021, 9, 4), -1, date(2021, 9, 3)},  // Sat - 1 = Fri
		{date(2021, 9, 5), -1, date(2021, 9, 3)},  // Sun - 1 = Fri
		{date(2021, 9, 10), -5, date(2021, 9, 3)}, // Fri - 5 = prev Fri
	}
	for _, c := range cases {
		got := addBusinessDays(c.ref, c.count)
		require.True(t, got.Equal(c.want), "%v %+db: got %v, want %v", c.ref, c.count, got, c.want)
	}
}

func TestBusinessDays_ZeroCount(t *testing.T) {
	ref := date(2021, 9, 4)
	require.True(t, addBusinessDays(ref, 0).Equal(ref))
}

func TestNextReview_MonotonicInCount(t *testing.T) {
	today := date(2021, 9, 20)
	refs := []time.Time{
		date(2021, 9, 1), // Wed
		date(2021, 9, 4), // Sat
		date(2021, 9, 5), // Sun
		date(2021, 9, 6), // Mon
	}
	for _, unit := range []string{"b", "d", "w", "m", "q", "y"} {
		for _, ref := range refs {
			prev := time.Time{}
			for count := 0; count <= 30; count++ {
				got, err := NextReview(ref, notes.Interval{Count: count, Unit: unit}, today)
				require.NoError(t, err)
				if count > 0 {
					require.False(t, got.Before(prev),
						"unit %s ref %v: count %d gave %v, before %v", unit, ref, count, got, prev)
				}
				prev = got
			}
		}
	}
}
