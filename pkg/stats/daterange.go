package stats

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the width of one bucket in a trend series.
type Granularity string

const (
	Daily  Granularity = "daily"
	Weekly Granularity = "weekly"
)

// weeklyThreshold is the largest inclusive day count still bucketed by day.
const weeklyThreshold = 7

// GranularityFor picks the bucket width for an inclusive day count.
func GranularityFor(days int) Granularity {
	if days > weeklyThreshold {
		return Weekly
	}
	return Daily
}

// DateRange is an inclusive range of calendar days. Only the date part of
// Start and End is significant, read in the location of the query.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// LastNDays returns the n calendar days ending with today, today included.
func LastNDays(today time.Time, n int) DateRange {
	if n < 1 {
		n = 1
	}
	return DateRange{Start: today.AddDate(0, 0, -(n - 1)), End: today}
}

// Days returns the inclusive number of calendar days in r, 0 when Start is
// after End.
func (r DateRange) Days(loc *time.Location) int {
	start, end := civil(r.Start, loc), civil(r.End, loc)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// civil maps t to midnight UTC of its calendar date in loc. All bucket
// arithmetic happens on these values so DST shifts never skew day counts.
func civil(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Sunday on or before a civil date.
func weekStart(day time.Time) time.Time {
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// weekOfMonth counts Sunday-started weeks within the month of day, from 1.
func weekOfMonth(day time.Time) int {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return (day.Day()-1+int(first.Weekday()))/7 + 1
}

func dayLabel(day time.Time) string {
	return day.Weekday().String()[:3]
}

func weekLabel(ws time.Time) string {
	return fmt.Sprintf("%s-week-%d", ws.Month().String()[:3], weekOfMonth(ws))
}

// ParseDay parses a YYYY-MM-DD calendar date in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// ParseTimestamp reads the timestamp formats a hosted table store hands out.
// It reports false for anything else; callers keep the record with a zero
// time so aggregation skips it.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
