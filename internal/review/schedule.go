package review

import (
	"errors"
	"fmt"
	"time"

	"revu/internal/notes"
)

// ErrInvalidInterval reports a review interval with an unknown unit.
// Scheduling fails locally; the caller logs and leaves the next review
// date unset.
var ErrInvalidInterval = errors.New("invalid review interval")

// Calendar approximations: months, quarters and years are fixed day
// counts. Due-date expectations downstream were built against these
// constants, so they stay.
var unitDays = map[string]int{
	"d": 1,
	"w": 7,
	"m": 30,
	"q": 91,
	"y": 365,
}

// NextReview computes when a note is next due from its last reviewed
// date and interval. A never-reviewed note is due today regardless of
// interval.
func NextReview(lastReviewed time.Time, iv notes.Interval, today time.Time) (time.Time, error) {
	if lastReviewed.IsZero() {
		return today, nil
	}
	if iv.Unit == "b" {
		return addBusinessDays(lastReviewed, iv.Count), nil
	}
	days, ok := unitDays[iv.Unit]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unit %q", ErrInvalidInterval, iv.Unit)
	}
	return lastReviewed.AddDate(0, 0, iv.Count*days), nil
}

// addBusinessDays shifts ref by count business days, skipping weekends
// in either direction. A weekend reference first snaps to the adjacent
// business day in the direction of travel, consuming one hop; the
// remainder is the usual two-extra-calendar-days-per-five-business-days
// closed form.
func addBusinessDays(ref time.Time, count int) time.Time {
	if count == 0 {
		return ref
	}
	snap := 0
	offset := (int(ref.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	if offset > 4 {
		switch {
		case count > 0:
			snap = 7 - offset // to Monday
			offset = 0
			count--
		case count < 0:
			snap = 4 - offset // back to Friday
			offset = 4
			count++
		}
	}
	days := count + floorDiv(count+offset, 5)*2
	return ref.AddDate(0, 0, snap+days)
}

// floorDiv rounds toward negative infinity, unlike Go's /.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
