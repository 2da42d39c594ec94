// Package calendar holds the period arithmetic used to bucket records:
// flooring an instant to a granularity boundary, stepping to the next
// boundary and formatting period labels. All stepping is calendar based
// (AddDate), never fixed durations, so months of different lengths and
// leap years do not drift.
package calendar

import (
	"fmt"
	"time"

	"dashboard-analytics-service/internal/timeseries/core/domain"
)

const (
	dayLayout  = "2006-01-02"
	hourLayout = "2006-01-02 15:00"
)

// Floor returns the start of the period containing t, in t's location.
func Floor(t time.Time, g domain.Granularity) time.Time {
	y, m, d := t.Date()
	loc := t.Location()

	switch g {
	case domain.GranularityHourly:
		// Floored at the instant's own offset so both passes of a repeated
		// DST hour stay distinct.
		_, off := t.Zone()
		shift := time.Duration(off) * time.Second
		return t.Add(shift).Truncate(time.Hour).Add(-shift).In(loc)
	case domain.GranularityDaily:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case domain.GranularityWeekly:
		// Monday=0 ... Sunday=6
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, loc)
	case domain.GranularityMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case domain.GranularityQuarterly:
		return time.Date(y, quarterStart(m), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
}

// Next returns the boundary one granularity unit after the aligned instant t.
func Next(t time.Time, g domain.Granularity) time.Time {
	switch g {
	case domain.GranularityHourly:
		return t.Add(time.Hour)
	case domain.GranularityDaily:
		return t.AddDate(0, 0, 1)
	case domain.GranularityWeekly:
		return t.AddDate(0, 0, 7)
	case domain.GranularityMonthly:
		return t.AddDate(0, 1, 0)
	case domain.GranularityQuarterly:
		return t.AddDate(0, 3, 0)
	default:
		return t.AddDate(1, 0, 0)
	}
}

// Label formats the display label of the period starting at t.
func Label(t time.Time, g domain.Granularity) string {
	switch g {
	case domain.GranularityHourly:
		return t.Format(hourLayout)
	case domain.GranularityDaily:
		return t.Format(dayLayout)
	case domain.GranularityWeekly:
		return t.Format(dayLayout) + " to " + t.AddDate(0, 0, 6).Format(dayLayout)
	case domain.GranularityMonthly:
		return t.Format("Jan 2006")
	case domain.GranularityQuarterly:
		return fmt.Sprintf("Q%d %d", Quarter(t.Month()), t.Year())
	default:
		return fmt.Sprintf("%d", t.Year())
	}
}

// Grid returns every aligned boundary from Floor(start) to Floor(end),
// both inclusive, in increasing order. It is empty when start is after end.
func Grid(start, end time.Time, g domain.Granularity) []time.Time {
	if start.After(end) {
		return nil
	}

	first := Floor(start, g)
	last := Floor(end.In(start.Location()), g)

	var grid []time.Time
	for t := first; !t.After(last); t = Next(t, g) {
		grid = append(grid, t)
	}
	return grid
}

// Quarter returns 1..4 for the given month.
func Quarter(m time.Month) int {
	return (int(m)-1)/3 + 1
}

func quarterStart(m time.Month) time.Month {
	return time.Month((Quarter(m)-1)*3 + 1)
}

// Subtract moves t back by the calendar offset. Months and years are
// shifted on the calendar and the day is clamped to the end of the target
// month, so 31 March minus one month is 28/29 February rather than 3 March.
func Subtract(t time.Time, o domain.Offset) time.Time {
	if o.Years != 0 || o.Months != 0 {
		t = addMonths(t, -(o.Years*12 + o.Months))
	}
	if o.Days != 0 {
		t = t.AddDate(0, 0, -o.Days)
	}
	return t
}

func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
