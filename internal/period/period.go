// Package period provides the date-window arithmetic used by the reporting
// queries: civil dates, Monday-based weeks and calendar months. All functions
// are pure; callers pass a reference date and get windows back.
package period

import "time"

// DateLayout is the wire format for civil dates throughout the API.
const DateLayout = "2006-01-02"

// WeekdayLabels are the fixed Mon..Sun labels used by weekly breakdowns.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Date truncates t to a civil date in UTC. All sale dates and window
// boundaries are normalized through this so comparisons are exact.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current civil date.
func Today() time.Time {
	return Date(time.Now())
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	d = Date(d)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return d.AddDate(0, 0, -offset)
}

// WeekWindow returns the half-open window [Monday, next Monday) containing d.
// Every weekly query uses this single end-exclusive convention.
func WeekWindow(d time.Time) (start, end time.Time) {
	start = WeekStart(d)
	return start, start.AddDate(0, 0, 7)
}

// MonthOf returns the calendar year and month of d, used as filter
// parameters rather than a fixed-length date range.
func MonthOf(d time.Time) (int, time.Month) {
	return d.Year(), d.Month()
}

// WeekOfYear returns the Monday-based week number of d within its year.
// Week 1 starts on the first Monday of the year; days before that Monday
// belong to week 0. The numbering is deterministic and monotonic, so
// consecutive 7-day spans of a month always land in consecutive buckets.
func WeekOfYear(d time.Time) int {
	d = Date(d)
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	firstMonday := WeekStart(jan1)
	if firstMonday.Before(jan1) {
		firstMonday = firstMonday.AddDate(0, 0, 7)
	}
	if d.Before(firstMonday) {
		return 0
	}
	return int(d.Sub(firstMonday).Hours()/(24*7)) + 1
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}
